package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ordo-keeper/internal/service"
	"github.com/MKhiriev/go-ordo-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const sessionLogLines = 15

type sessionModel struct {
	session   models.Session
	hasActive bool
	roster    []models.Character
	rosterIdx int
	viewer    *models.User

	chat       textinput.Model
	chatActive bool

	status string
}

func newSessionModel() sessionModel {
	chat := newInput("mensagem", 500)
	chat.Width = 60
	return sessionModel{chat: chat}
}

func (m sessionModel) currentRoster() (models.Character, bool) {
	if len(m.roster) == 0 || m.rosterIdx < 0 || m.rosterIdx >= len(m.roster) {
		return models.Character{}, false
	}
	return m.roster[m.rosterIdx], true
}

// diceForKey maps the keys 1..7 onto the supported dice.
func diceForKey(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	i := int(k[0] - '1')
	if i >= len(service.DiceSides) {
		return 0, false
	}
	return service.DiceSides[i], true
}

func renderLogLine(msg models.ChatMessage) string {
	ts := time.UnixMilli(msg.Timestamp).Local().Format("15:04:05")
	line := fmt.Sprintf("[%s] %s: %s", ts, msg.SenderName, msg.Text)
	if msg.IsSystem {
		return systemMsgStyle.Render(line)
	}
	return line
}

func (m sessionModel) View() string {
	if !m.hasActive {
		return renderPage("SESSÃO", "Nenhuma sessão ativa.", "esc voltar")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  •  %s\n\n", m.session.Name, models.SystemName(m.session.SystemID))

	b.WriteString("Na mesa:\n")
	if len(m.roster) == 0 {
		b.WriteString("  ninguém ainda\n")
	}
	for i, c := range m.roster {
		fmt.Fprintf(&b, "%s%s %-22s Vida %-7s Sanidade %s\n", cursor(!m.chatActive && i == m.rosterIdx),
			typeBadge(c.Type), fitText(c.Name, 22), vitalText(c.HP), vitalText(c.San))
	}

	b.WriteString("\nRegistro:\n")
	logs := m.session.Logs
	if len(logs) > sessionLogLines {
		logs = logs[:sessionLogLines]
	}
	for _, msg := range logs {
		b.WriteString("  " + renderLogLine(msg) + "\n")
	}

	b.WriteString("\n" + m.chat.View() + "\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	dice := make([]string, len(service.DiceSides))
	for i, d := range service.DiceSides {
		dice[i] = fmt.Sprintf("%d d%d", i+1, d)
	}

	hot := "enter enviar  esc parar de digitar"
	if !m.chatActive {
		hot = "tab digitar  " + strings.Join(dice, " ") + "  c copiar registro  "
		if m.viewer != nil && m.viewer.IsGM() {
			hot += "x remover da mesa  p pausar  "
		}
		hot += "esc voltar"
	}

	return renderPage("SESSÃO", b.String(), hot)
}
