package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type ownerAction int

const (
	ownerActionNone ownerAction = iota
	ownerActionTransfer
	ownerActionClaim
)

type charactersModel struct {
	items  []models.Character
	owners map[string]string
	idx    int

	viewer     *models.User
	system     models.GameSystem
	active     models.Session
	hasActive  bool
	generating bool
	spinner    spinner.Model
	status     string
}

func newCharactersModel() charactersModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return charactersModel{spinner: s, owners: map[string]string{}}
}

func (m charactersModel) current() (models.Character, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Character{}, false
	}
	return m.items[m.idx], true
}

func isOwner(viewer *models.User, c models.Character) bool {
	return viewer != nil && c.OwnerID == viewer.ID
}

func canDeleteCharacter(viewer *models.User, c models.Character) bool {
	return viewer != nil && (viewer.IsGM() || isOwner(viewer, c))
}

// canToggleType is granted to players on their own sheets.
func canToggleType(viewer *models.User, c models.Character) bool {
	return viewer != nil && !viewer.IsGM() && isOwner(viewer, c)
}

// ownerActionFor tells what the owner key does: a GM hands own sheets over
// to a player or claims someone else's.
func ownerActionFor(viewer *models.User, c models.Character) ownerAction {
	if viewer == nil || !viewer.IsGM() {
		return ownerActionNone
	}
	if isOwner(viewer, c) {
		return ownerActionTransfer
	}
	return ownerActionClaim
}

func canAddToSession(viewer *models.User, c models.Character, active models.Session, hasActive bool) bool {
	if viewer == nil || !hasActive || active.HasCharacter(c.ID) {
		return false
	}
	return viewer.IsGM() || isOwner(viewer, c)
}

func (m charactersModel) View() string {
	var b strings.Builder

	if m.viewer != nil {
		fmt.Fprintf(&b, "%s (%s)  •  Sistema: %s\n", m.viewer.Name, roleLabel(m.viewer.Role), m.system.Name)
	}
	if m.hasActive {
		fmt.Fprintf(&b, "Sessão ativa: %s\n", m.active.Name)
	}
	if m.generating {
		b.WriteString(m.spinner.View() + " Gerando NPC...\n")
	}
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString("Nenhum personagem encontrado.\n")
	}
	for i, c := range m.items {
		owner := "Seu personagem"
		if !isOwner(m.viewer, c) {
			owner = "Dono: " + m.owners[c.OwnerID]
		}
		inSession := ""
		if m.hasActive && m.active.HasCharacter(c.ID) {
			inSession = " *"
		}
		fmt.Fprintf(&b, "%s%s %-22s Vida %-7s Sanidade %-7s %s%s\n",
			cursor(i == m.idx), typeBadge(c.Type), fitText(c.Name, 22),
			vitalText(c.HP), vitalText(c.San), owner, inSession)
	}

	if c, ok := m.current(); ok {
		b.WriteString("\n" + systemMsgStyle.Render(fitText(c.Description, 120)) + "\n")
		attrs := make([]string, 0, len(c.Attributes))
		for _, a := range c.Attributes {
			attrs = append(attrs, fmt.Sprintf("%s %d", a.Name, a.Value))
		}
		b.WriteString(strings.Join(attrs, "  ") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("PERSONAGENS", b.String(), m.hotKeys())
}

func (m charactersModel) hotKeys() string {
	parts := []string{"n novo"}
	c, ok := m.current()
	if ok && canDeleteCharacter(m.viewer, c) {
		parts = append(parts, "d excluir")
	}
	if ok && canToggleType(m.viewer, c) {
		parts = append(parts, "t PC/NPC")
	}
	if ok {
		switch ownerActionFor(m.viewer, c) {
		case ownerActionTransfer:
			parts = append(parts, "o transferir")
		case ownerActionClaim:
			parts = append(parts, "o reivindicar")
		}
	}
	if ok && canAddToSession(m.viewer, c, m.active, m.hasActive) {
		parts = append(parts, "a adicionar à sessão")
	}
	if m.viewer != nil && m.viewer.IsGM() {
		parts = append(parts, "g gerar NPC", "m ferramentas do mestre")
	}
	if m.hasActive {
		parts = append(parts, "s sessão")
	}
	parts = append(parts, "L sair da conta", "q sair")
	return strings.Join(parts, "  ")
}
