package tui

import (
	"github.com/MKhiriev/go-ordo-keeper/models"
)

type authDoneMsg struct {
	user models.User
	err  error
}

// intentDoneMsg reports a finished mutating intent. status is shown on
// success.
type intentDoneMsg struct {
	status string
	err    error
	next   screen
}

type sessionStartedMsg struct {
	session models.Session
	err     error
}

type npcDoneMsg struct {
	character *models.Character
	err       error
}

type diceRolledMsg struct {
	sides  int
	result int
	err    error
}

type loggedOutMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
