package tui

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteCharacter
	confirmDeleteSession
	confirmResetData
)

type confirmModel struct {
	kind     confirmKind
	targetID string
	message  string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "s sim    n não"
	return overlayBoxStyle.Render(content)
}
