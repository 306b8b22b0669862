package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	name := newInput("nome", 64)
	name.Focus()

	return loginModel{inputs: []textinput.Model{name, newPasswordInput("senha")}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Nome\n")
	b.WriteString(m.inputs[0].View() + "\n\n")
	b.WriteString("Senha\n")
	b.WriteString(m.inputs[1].View() + "\n")
	if m.submitting {
		b.WriteString("\nEntrando...\n")
	}

	return renderPage("ENTRAR", b.String(), "tab próximo campo  enter entrar  esc voltar")
}
