package tui

import (
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

// ownerSelectModel lists the players a character can be handed over to.
type ownerSelectModel struct {
	characterID   string
	characterName string
	players       []models.User
	idx           int
}

func playersOf(users []models.User) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RolePlayer {
			out = append(out, u)
		}
	}
	return out
}

func (m ownerSelectModel) View() string {
	var b strings.Builder
	b.WriteString("Transferir \"" + m.characterName + "\" para:\n\n")
	if len(m.players) == 0 {
		b.WriteString("Nenhum jogador registrado.\n")
	}
	for i, u := range m.players {
		b.WriteString(cursor(i == m.idx) + u.Name + "\n")
	}

	return renderPage("TRANSFERIR PERSONAGEM", b.String(), "↑/↓ escolher  enter confirmar  esc voltar")
}
