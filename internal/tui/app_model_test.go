package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/mock"
	"github.com/MKhiriev/go-ordo-keeper/internal/service"
	"github.com/MKhiriev/go-ordo-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func tableDocument() models.Document {
	doc := models.DefaultDocument()
	doc.Users = []models.User{
		{ID: "u-gm", Name: "Bob", Role: models.RoleGM, Password: strPtr("pw")},
		{ID: "u-pl", Name: "Alice", Role: models.RolePlayer},
	}
	doc.Characters = []models.Character{
		{ID: "c-1", Name: "Arthur", Type: models.CharacterPC, OwnerID: "u-pl", SystemID: models.DefaultSystemID,
			Attributes: models.DefaultAttributes(), HP: models.NewVital(20), San: models.NewVital(20)},
	}
	doc.Sessions = []models.Session{
		{ID: "s-1", Name: "Cripta", GMID: "u-gm", SystemID: models.DefaultSystemID, IsActive: true,
			ActiveCharacterIDs: []string{"c-1"}, Logs: []models.ChatMessage{}},
	}
	doc.ActiveSessionID = strPtr("s-1")
	return doc
}

func newTestModel(t *testing.T, doc models.Document, start screen) appModel {
	t.Helper()
	ctrl := gomock.NewController(t)

	storage := mock.NewMockDocumentStorage(ctrl)
	storage.EXPECT().Load(gomock.Any()).Return(doc)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).AnyTimes()

	generator := mock.NewMockNPCGenerator(ctrl)

	services := service.NewClientServices(context.Background(), storage, generator, logger.Nop())
	return newAppModel(context.Background(), services, models.NewAppBuildInfo("v1", "", ""), logger.Nop(), start)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to m and returns the updated model with its command.
func send(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out, cmd
}

// resolve runs cmd and feeds the resulting message back into m.
func resolve(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	return m
}

func TestAppModel_LoginFlow(t *testing.T) {
	m := newTestModel(t, tableDocument(), screenWelcome)
	assert.Len(t, m.welcome.users, 2)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenLogin, m.currentScreen)

	m, _ = send(t, m, runes("Bob"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, runes("pw"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.login.submitting)

	m = resolve(t, m, cmd)
	assert.Equal(t, screenCharacters, m.currentScreen)
	require.NotNil(t, m.characters.viewer)
	assert.Equal(t, "Bob", m.characters.viewer.Name)
	assert.Len(t, m.characters.items, 1)
	assert.False(t, m.showError)
}

func TestAppModel_LoginWrongPasswordShowsOverlay(t *testing.T) {
	m := newTestModel(t, tableDocument(), screenLogin)

	m, _ = send(t, m, runes("Bob"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, runes("errada"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = resolve(t, m, cmd)

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, "Senha incorreta.", m.errorOverlay.message)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
	assert.Equal(t, screenLogin, m.currentScreen)
}

func TestAppModel_DeleteCharacterAsksFirst(t *testing.T) {
	doc := tableDocument()
	doc.CurrentUser = &doc.Users[0]
	m := newTestModel(t, doc, screenCharacters)

	m, cmd := send(t, m, runes("d"))
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Equal(t, confirmDeleteCharacter, m.confirm.kind)
	assert.Equal(t, "c-1", m.confirm.targetID)

	m, cmd = send(t, m, runes("s"))
	assert.False(t, m.showConfirm)
	m = resolve(t, m, cmd)

	assert.Empty(t, m.characters.items)
	assert.Empty(t, m.session.roster)
	assert.Equal(t, "Personagem excluído.", m.characters.status)
}

func TestAppModel_ConfirmDeclined(t *testing.T) {
	doc := tableDocument()
	doc.CurrentUser = &doc.Users[0]
	m := newTestModel(t, doc, screenCharacters)

	m, _ = send(t, m, runes("d"))
	m, cmd := send(t, m, runes("n"))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Len(t, m.characters.items, 1)
}

func TestAppModel_PlayerCannotOpenGMTools(t *testing.T) {
	doc := tableDocument()
	doc.CurrentUser = &doc.Users[1]
	m := newTestModel(t, doc, screenCharacters)

	m, _ = send(t, m, runes("m"))
	assert.Equal(t, screenCharacters, m.currentScreen)

	m, cmd := send(t, m, runes("g"))
	assert.Nil(t, cmd)
	assert.False(t, m.characters.generating)
}

func TestAppModel_RollDiceInSession(t *testing.T) {
	doc := tableDocument()
	doc.CurrentUser = &doc.Users[1]
	m := newTestModel(t, doc, screenSession)
	require.True(t, m.session.hasActive)

	m, cmd := send(t, m, runes("6"))
	m = resolve(t, m, cmd)

	assert.False(t, m.showError)
	assert.Contains(t, m.session.status, "Rolou d20: ")
	require.NotEmpty(t, m.session.session.Logs)
	assert.Equal(t, "Alice", m.session.session.Logs[0].SenderName)
}

func TestAppModel_ChatSendsMessage(t *testing.T) {
	doc := tableDocument()
	doc.CurrentUser = &doc.Users[1]
	m := newTestModel(t, doc, screenSession)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.session.chatActive)

	m, _ = send(t, m, runes("Abro a porta"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = resolve(t, m, cmd)

	require.NotEmpty(t, m.session.session.Logs)
	assert.Equal(t, "Abro a porta", m.session.session.Logs[0].Text)
	assert.Empty(t, m.session.chat.Value())
}

func TestAppModel_PauseReturnsToCharacters(t *testing.T) {
	doc := tableDocument()
	doc.CurrentUser = &doc.Users[0]
	m := newTestModel(t, doc, screenSession)

	m, cmd := send(t, m, runes("p"))
	m = resolve(t, m, cmd)

	assert.Equal(t, screenCharacters, m.currentScreen)
	assert.False(t, m.session.hasActive)
	assert.Len(t, m.gmTools.sessions, 1)
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newTestModel(t, tableDocument(), screenWelcome)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.ErrorIs(t, m.err, ErrUserQuit)
}

func TestRoute_Screen(t *testing.T) {
	assert.Equal(t, screenWelcome, RouteAuth.screen())
	assert.Equal(t, screenCharacters, RouteCharacters.screen())
	assert.Equal(t, screenSession, RouteSession.screen())
}
