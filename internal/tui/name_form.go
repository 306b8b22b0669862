package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// nameFormModel is the one-field form used to name new characters and
// sessions.
type nameFormModel struct {
	title      string
	label      string
	input      textinput.Model
	submitting bool
}

func newNameFormModel(title, label, placeholder string) nameFormModel {
	in := newInput(placeholder, 80)
	in.Focus()
	return nameFormModel{title: title, label: label, input: in}
}

func (m nameFormModel) View() string {
	body := m.label + "\n" + m.input.View() + "\n"
	if m.submitting {
		body += "\nSalvando...\n"
	}
	return renderPage(m.title, body, "enter salvar  esc cancelar")
}
