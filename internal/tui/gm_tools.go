package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

const (
	gmPaneSystems = iota
	gmPaneSessions
)

type gmToolsModel struct {
	pane int

	systems   []models.GameSystem
	currentID string
	systemIdx int

	sessions   []models.Session
	activeID   string
	sessionIdx int

	status string
}

func (m gmToolsModel) currentSession() (models.Session, bool) {
	if len(m.sessions) == 0 || m.sessionIdx < 0 || m.sessionIdx >= len(m.sessions) {
		return models.Session{}, false
	}
	return m.sessions[m.sessionIdx], true
}

func (m gmToolsModel) currentSystem() (models.GameSystem, bool) {
	if len(m.systems) == 0 || m.systemIdx < 0 || m.systemIdx >= len(m.systems) {
		return models.GameSystem{}, false
	}
	return m.systems[m.systemIdx], true
}

func sessionDate(s models.Session) string {
	ts := s.StartedAt()
	if ts == 0 {
		return "-"
	}
	return time.UnixMilli(ts).Local().Format("02/01/2006")
}

func (m gmToolsModel) View() string {
	var b strings.Builder

	b.WriteString(selectedIf(m.pane == gmPaneSystems, "Sistema de regras") + "\n")
	for i, s := range m.systems {
		mark := "( )"
		if s.ID == m.currentID {
			mark = "(•)"
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", cursor(m.pane == gmPaneSystems && i == m.systemIdx), mark, s.Name,
			helpStyle.Render(s.Description))
	}

	b.WriteString("\n" + selectedIf(m.pane == gmPaneSessions, "Sessões") + "\n")
	if len(m.sessions) == 0 {
		b.WriteString("  Nenhuma sessão criada.\n")
	}
	for i, s := range m.sessions {
		active := ""
		if s.ID == m.activeID {
			active = "  (ativa)"
		}
		fmt.Fprintf(&b, "%s%-24s %s • %s%s\n", cursor(m.pane == gmPaneSessions && i == m.sessionIdx),
			fitText(s.Name, 24), models.SystemName(s.SystemID), sessionDate(s), active)
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hot := "tab trocar painel  n nova sessão  esc voltar"
	if m.pane == gmPaneSystems {
		hot = "enter escolher sistema  " + hot
	} else {
		hot = "enter/r retomar  d excluir  " + hot
	}
	return renderPage("FERRAMENTAS DO MESTRE", b.String(), hot)
}

func selectedIf(selected bool, s string) string {
	if selected {
		return selectedStyle.Render(s)
	}
	return s
}
