// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of ordo-keeper, built on Bubble Tea.
//
// Every screen is a small sub-model owned by one router model. Screens never
// touch the document directly; they call the client services from tea.Cmd
// functions and re-read the services once the result message arrives.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/service"
	"github.com/MKhiriev/go-ordo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Route is the screen the program opens on.
type Route int

const (
	RouteAuth Route = iota
	RouteCharacters
	RouteSession
)

func (r Route) screen() screen {
	switch r {
	case RouteCharacters:
		return screenCharacters
	case RouteSession:
		return screenSession
	default:
		return screenWelcome
	}
}

// TUI runs the interactive program.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New validates its dependencies and returns a ready [TUI].
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	if logger == nil {
		return nil, errors.New("tui: nil logger")
	}

	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits. It returns [ErrUserQuit] when the user
// leaves through the quit keys.
func (t *TUI) Run(ctx context.Context, route Route) error {
	model := newAppModel(ctx, t.services, t.buildInfo, t.logger, route.screen())

	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("tui program: %w", err)
	}

	result, ok := final.(appModel)
	if !ok {
		return nil
	}
	return result.err
}
