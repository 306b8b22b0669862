// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/service"
	"github.com/MKhiriev/go-ordo-keeper/internal/tui"
	"github.com/MKhiriev/go-ordo-keeper/models"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context, route tui.Route) error
}

// App owns the client lifecycle: it picks the opening screen from the
// restored document, runs the UI and releases storage on exit.
type App struct {
	services *service.ClientServices
	ui       UI
	storages io.Closer
	logger   *logger.Logger
}

// NewApp assembles an [App]. storages may be nil when nothing needs closing.
func NewApp(services *service.ClientServices, ui UI, storages io.Closer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client: nil services")
	}
	if ui == nil {
		return nil, errors.New("client: nil ui")
	}
	if logger == nil {
		return nil, errors.New("client: nil logger")
	}

	return &App{services: services, ui: ui, storages: storages, logger: logger}, nil
}

// Run blocks until the user quits or the process receives SIGINT/SIGTERM.
// Leaving through the quit keys is not an error.
func (a *App) Run() (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() {
		if a.storages == nil {
			return
		}
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("error closing storages")
			err = errors.Join(err, closeErr)
		}
	}()

	_, hasActive := a.services.SessionService.Active()
	route := initialRoute(a.services.AuthService.CurrentUser(), hasActive)
	a.logger.Info().Str("func", "App.Run").Int("route", int(route)).Msg("starting ui")

	if err = a.ui.Run(ctx, route); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Str("func", "App.Run").Msg("user quit")
			return nil
		}
		return fmt.Errorf("ui run: %w", err)
	}

	return nil
}

// initialRoute restores where the user left off: a remembered user lands on
// the open session, or on the character list when nothing is open.
func initialRoute(user *models.User, hasActive bool) tui.Route {
	switch {
	case user == nil:
		return tui.RouteAuth
	case hasActive:
		return tui.RouteSession
	default:
		return tui.RouteCharacters
	}
}
