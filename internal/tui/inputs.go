package tui

import "github.com/charmbracelet/bubbles/textinput"

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	return in
}

// moveFocus blurs the input at focus and focuses the one delta steps away,
// wrapping around. It returns the new focus index.
func moveFocus(inputs []textinput.Model, focus, delta int) int {
	if len(inputs) == 0 {
		return 0
	}
	inputs[focus].Blur()
	focus = ((focus+delta)%len(inputs) + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func resetInputs(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].Reset()
		inputs[i].Blur()
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
}
