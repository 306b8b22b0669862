package tui

import (
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/models"
)

const (
	welcomeLogin = iota
	welcomeRegister
	welcomeReset
)

type welcomeModel struct {
	items []string
	idx   int
	users []models.User
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Entrar", "Registrar", "Apagar todos os dados"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Acesso restrito. Identifique-se.\n\n")
	for i, item := range m.items {
		b.WriteString(cursor(i == m.idx) + item + "\n")
	}

	if len(m.users) > 0 {
		b.WriteString("\nAgentes conhecidos:\n")
		for _, u := range m.users {
			b.WriteString("  • " + u.Name + " (" + roleLabel(u.Role) + ")\n")
		}
	}

	return renderPage("ORDO KEEPER", b.String(), "↑/↓ escolher  enter confirmar  v sobre  q sair")
}
