package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	newItem   key.Binding
	delete    key.Binding
	toggle    key.Binding
	owner     key.Binding
	addToSess key.Binding
	generate  key.Binding
	session   key.Binding
	gmTools   key.Binding
	resume    key.Binding
	pause     key.Binding
	copy      key.Binding
	remove    key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	delete:    key.NewBinding(key.WithKeys("d")),
	toggle:    key.NewBinding(key.WithKeys("t")),
	owner:     key.NewBinding(key.WithKeys("o")),
	addToSess: key.NewBinding(key.WithKeys("a")),
	generate:  key.NewBinding(key.WithKeys("g")),
	session:   key.NewBinding(key.WithKeys("s")),
	gmTools:   key.NewBinding(key.WithKeys("m")),
	resume:    key.NewBinding(key.WithKeys("r")),
	pause:     key.NewBinding(key.WithKeys("p")),
	copy:      key.NewBinding(key.WithKeys("c")),
	remove:    key.NewBinding(key.WithKeys("x")),
	info:      key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y", "s")),
	no:        key.NewBinding(key.WithKeys("n")),
}
