package tui

import (
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var registerRoles = []models.Role{models.RolePlayer, models.RoleGM}

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	roleIdx    int
	submitting bool
}

func newRegisterModel() registerModel {
	name := newInput("nome", 64)
	name.Focus()

	return registerModel{inputs: []textinput.Model{
		name,
		newPasswordInput("senha"),
		newPasswordInput("confirmar senha"),
	}}
}

func (m registerModel) role() models.Role {
	return registerRoles[m.roleIdx]
}

// onRole reports whether the role selector, placed after the inputs, has
// focus.
func (m registerModel) onRole() bool {
	return m.focus == len(m.inputs)
}

func (m registerModel) View() string {
	var b strings.Builder
	labels := []string{"Nome", "Senha", "Confirmar senha"}
	for i, in := range m.inputs {
		b.WriteString(labels[i] + "\n")
		b.WriteString(in.View() + "\n\n")
	}

	b.WriteString(cursor(m.onRole()) + "Papel: ")
	for i, r := range registerRoles {
		label := roleLabel(r)
		if i == m.roleIdx {
			label = selectedStyle.Render("[" + label + "]")
		} else {
			label = " " + label + " "
		}
		b.WriteString(label + " ")
	}
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nRegistrando...\n")
	}

	return renderPage("NOVO AGENTE", b.String(), "tab próximo campo  ←/→ trocar papel  enter registrar  esc voltar")
}

// move shifts focus across the inputs and the role selector, wrapping
// around.
func (m *registerModel) move(delta int) {
	n := len(m.inputs) + 1
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = ((m.focus+delta)%n + n) % n
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *registerModel) cycleRole(delta int) {
	n := len(registerRoles)
	m.roleIdx = ((m.roleIdx+delta)%n + n) % n
}

func (m *registerModel) reset() {
	resetInputs(m.inputs)
	m.focus = 0
	m.roleIdx = 0
	m.submitting = false
}
