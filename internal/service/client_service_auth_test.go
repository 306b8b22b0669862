// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ordo-keeper/internal/state"
	"github.com/MKhiriev/go-ordo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Register ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	env := newTestEnv(t, models.DefaultDocument())
	svc := env.services.AuthService

	user, err := svc.Register(context.Background(), " Carla ", "segredo", "segredo", models.RolePlayer)
	require.NoError(t, err)

	assert.Equal(t, "id-1", user.ID)
	assert.Equal(t, "Carla", user.Name)
	assert.Equal(t, models.RolePlayer, user.Role)
	require.NotNil(t, user.Password)
	assert.Equal(t, "segredo", *user.Password)

	current := svc.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	saved := env.lastSaved(t)
	require.Len(t, saved.Users, 1)
	require.NotNil(t, saved.CurrentUser)
	assert.Equal(t, "id-1", saved.CurrentUser.ID)
}

func TestClientAuthService_Register_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		uname   string
		pass    string
		confirm string
		role    models.Role
		wantErr error
	}{
		{name: "empty name", uname: "  ", pass: "a", confirm: "a", role: models.RoleGM, wantErr: state.ErrEmptyField},
		{name: "mismatch", uname: "Carla", pass: "a", confirm: "b", role: models.RoleGM, wantErr: state.ErrPasswordMismatch},
		{name: "duplicate name", uname: "bob", pass: "a", confirm: "a", role: models.RoleGM, wantErr: state.ErrUserAlreadyExists},
		{name: "unknown role", uname: "Carla", pass: "a", confirm: "a", role: "BARDO", wantErr: state.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, populated())

			user, err := env.services.AuthService.Register(context.Background(), tt.uname, tt.pass, tt.confirm, tt.role)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.User{}, user)
			assert.Nil(t, env.services.AuthService.CurrentUser())
			assert.Empty(t, env.saves(), "rejected intents must not be persisted")
		})
	}
}

// ── Login / Logout ────────────────────────────────────────────────────────────

func TestClientAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		uname    string
		password string
		wantID   string
		wantErr  error
	}{
		{name: "password match", uname: "Bob", password: "pw", wantID: "u-gm"},
		{name: "case insensitive", uname: "BOB", password: "pw", wantID: "u-gm"},
		{name: "wrong password", uname: "Bob", password: "nope", wantErr: state.ErrWrongPassword},
		{name: "legacy profile accepts anything", uname: "alice", password: "whatever", wantID: "u-pl"},
		{name: "unknown user", uname: "Zed", password: "pw", wantErr: state.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, populated())
			svc := env.services.AuthService

			user, err := svc.Login(context.Background(), tt.uname, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc.CurrentUser())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
			require.NotNil(t, svc.CurrentUser())
			assert.Equal(t, tt.wantID, svc.CurrentUser().ID)
		})
	}
}

func TestClientAuthService_Logout_KeepsActiveSession(t *testing.T) {
	env := newTestEnv(t, loggedInAs(populated(), gmUser()))
	svc := env.services.AuthService

	require.NoError(t, svc.Logout(context.Background()))

	assert.Nil(t, svc.CurrentUser())
	active, ok := env.services.SessionService.Active()
	require.True(t, ok)
	assert.Equal(t, "s-1", active.ID)

	saved := env.lastSaved(t)
	assert.Nil(t, saved.CurrentUser)
	require.NotNil(t, saved.ActiveSessionID)
}

func TestClientAuthService_CurrentUser_IsCopy(t *testing.T) {
	env := newTestEnv(t, loggedInAs(populated(), gmUser()))
	svc := env.services.AuthService

	current := svc.CurrentUser()
	require.NotNil(t, current)
	current.Name = "Mutated"

	assert.Equal(t, "Bob", svc.CurrentUser().Name)
}

func TestClientAuthService_Users(t *testing.T) {
	env := newTestEnv(t, populated())

	users := env.services.AuthService.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "Bob", users[0].Name)
	assert.Equal(t, "Alice", users[1].Name)
}
