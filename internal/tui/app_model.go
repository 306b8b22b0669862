package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/service"
	"github.com/MKhiriev/go-ordo-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenKeep screen = iota - 1
	screenWelcome
	screenLogin
	screenRegister
	screenCharacters
	screenCharacterForm
	screenOwnerSelect
	screenGMTools
	screenSessionForm
	screenSession
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	logger        *logger.Logger
	currentScreen screen

	welcome     welcomeModel
	login       loginModel
	register    registerModel
	characters  charactersModel
	charForm    nameFormModel
	ownerSelect ownerSelectModel
	gmTools     gmToolsModel
	sessionForm nameFormModel
	session     sessionModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool

	err error
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger, start screen) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		logger:        logger,
		currentScreen: start,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		characters:    newCharactersModel(),
		session:       newSessionModel(),
	}
	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

// refresh copies everything the screens render out of a fresh snapshot.
func (m *appModel) refresh() {
	auth := m.services.AuthService
	chars := m.services.CharacterService
	sessions := m.services.SessionService

	user := auth.CurrentUser()
	system := chars.CurrentSystem()
	active, hasActive := sessions.Active()

	m.welcome.users = auth.Users()

	m.characters.viewer = user
	m.characters.items = chars.Visible()
	m.characters.idx = clampIndex(m.characters.idx, len(m.characters.items))
	m.characters.owners = make(map[string]string, len(m.characters.items))
	for _, c := range m.characters.items {
		m.characters.owners[c.OwnerID] = chars.OwnerName(c.OwnerID)
	}
	m.characters.system = system
	m.characters.active, m.characters.hasActive = active, hasActive

	m.gmTools.systems = chars.Systems()
	m.gmTools.currentID = system.ID
	m.gmTools.systemIdx = clampIndex(m.gmTools.systemIdx, len(m.gmTools.systems))
	m.gmTools.sessions = sessions.List()
	m.gmTools.sessionIdx = clampIndex(m.gmTools.sessionIdx, len(m.gmTools.sessions))
	m.gmTools.activeID = ""
	if hasActive {
		m.gmTools.activeID = active.ID
	}

	m.session.viewer = user
	m.session.session, m.session.hasActive = active, hasActive
	m.session.roster = sessions.Roster()
	m.session.rosterIdx = clampIndex(m.session.rosterIdx, len(m.session.roster))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdConfirmed(m.confirm)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case authDoneMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		resetInputs(m.login.inputs)
		m.login.focus = 0
		m.register.reset()
		m.refresh()
		m.currentScreen = screenCharacters
		m.characters.status = "Bem-vindo, " + msg.user.Name + "."
		return m, cmdClearStatus()
	case intentDoneMsg:
		m.charForm.submitting = false
		m.refresh()
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		if msg.next != screenKeep {
			m.currentScreen = msg.next
		}
		m.setStatus(msg.status)
		return m, cmdClearStatus()
	case sessionStartedMsg:
		m.sessionForm.submitting = false
		m.refresh()
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.currentScreen = screenSession
		m.setStatus("Sessão \"" + msg.session.Name + "\" iniciada.")
		return m, cmdClearStatus()
	case npcDoneMsg:
		m.characters.generating = false
		m.refresh()
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		if msg.character == nil {
			m.characters.status = "Não foi possível gerar o NPC."
		} else {
			m.characters.status = "NPC gerado: " + msg.character.Name
		}
		return m, cmdClearStatus()
	case diceRolledMsg:
		m.refresh()
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.session.status = fmt.Sprintf("Rolou d%d: %d", msg.sides, msg.result)
		return m, cmdClearStatus()
	case loggedOutMsg:
		m.refresh()
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
			return m, nil
		}
		m.currentScreen = screenWelcome
		return m, nil
	case resetDoneMsg:
		m.refresh()
		m.currentScreen = screenWelcome
		if msg.err != nil {
			m.showErrorf(userMessage(msg.err))
		}
		return m, nil
	case copiedMsg:
		m.session.status = "Registro copiado!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	case spinner.TickMsg:
		if m.characters.generating {
			var cmd tea.Cmd
			m.characters.spinner, cmd = m.characters.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenCharacters:
		return m.updateCharacters(msg)
	case screenCharacterForm:
		return m.updateCharacterForm(msg)
	case screenOwnerSelect:
		return m.updateOwnerSelect(msg)
	case screenGMTools:
		return m.updateGMTools(msg)
	case screenSessionForm:
		return m.updateSessionForm(msg)
	case screenSession:
		return m.updateSession(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenCharacters:
		body = m.characters.View()
	case screenCharacterForm:
		body = m.charForm.View()
	case screenOwnerSelect:
		body = m.ownerSelect.View()
	case screenGMTools:
		body = m.gmTools.View()
	case screenSessionForm:
		body = m.sessionForm.View()
	case screenSession:
		body = m.session.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) askConfirm(c confirmModel) {
	m.showConfirm = true
	m.confirm = c
}

// setStatus shows status on whichever screen is current.
func (m *appModel) setStatus(status string) {
	switch m.currentScreen {
	case screenGMTools:
		m.gmTools.status = status
	case screenSession:
		m.session.status = status
	default:
		m.characters.status = status
	}
	if status == "" {
		m.characters.status = ""
		m.gmTools.status = ""
		m.session.status = ""
	}
}

// ── auth screens ─────────────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.welcome.idx {
		case welcomeLogin:
			m.currentScreen = screenLogin
		case welcomeRegister:
			m.currentScreen = screenRegister
		case welcomeReset:
			m.askConfirm(confirmModel{
				kind:    confirmResetData,
				message: "Apagar todos os agentes, personagens e sessões?",
			})
		}
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = moveFocus(m.login.inputs, m.login.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = moveFocus(m.login.inputs, m.login.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.login.inputs[0].Value())
			if name == "" {
				m.showErrorf("Informe o nome do agente.")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(name, m.login.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.move(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.move(-1)
			return m, nil
		case m.register.onRole() && key.Matches(keyMsg, keys.left):
			m.register.cycleRole(-1)
			return m, nil
		case m.register.onRole() && key.Matches(keyMsg, keys.right):
			m.register.cycleRole(1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(
				m.register.inputs[0].Value(),
				m.register.inputs[1].Value(),
				m.register.inputs[2].Value(),
				m.register.role(),
			)
		}
	}

	if m.register.onRole() {
		return m, nil
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

// ── characters ────────────────────────────────────────────────────────────────

func (m appModel) updateCharacters(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	viewer := m.characters.viewer
	current, hasCurrent := m.characters.current()

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.characters.idx > 0 {
			m.characters.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.characters.idx < len(m.characters.items)-1 {
			m.characters.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		title := "NOVO PERSONAGEM"
		if viewer != nil && viewer.IsGM() {
			title = "NOVO NPC"
		}
		m.charForm = newNameFormModel(title, "Nome", "nome do personagem")
		m.currentScreen = screenCharacterForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		if !hasCurrent || !canDeleteCharacter(viewer, current) {
			return m, nil
		}
		m.askConfirm(confirmModel{
			kind:     confirmDeleteCharacter,
			targetID: current.ID,
			message:  "Excluir \"" + current.Name + "\"?",
		})
	case key.Matches(keyMsg, keys.toggle):
		if !hasCurrent || !canToggleType(viewer, current) {
			return m, nil
		}
		return m, m.cmdToggleType(current.ID)
	case key.Matches(keyMsg, keys.owner):
		if !hasCurrent {
			return m, nil
		}
		switch ownerActionFor(viewer, current) {
		case ownerActionTransfer:
			m.ownerSelect = ownerSelectModel{
				characterID:   current.ID,
				characterName: current.Name,
				players:       playersOf(m.services.AuthService.Users()),
			}
			m.currentScreen = screenOwnerSelect
		case ownerActionClaim:
			return m, m.cmdChangeOwner(current.ID, viewer.ID, "NPC reivindicado.")
		}
	case key.Matches(keyMsg, keys.addToSess):
		if !hasCurrent || !canAddToSession(viewer, current, m.characters.active, m.characters.hasActive) {
			return m, nil
		}
		return m, m.cmdAddToSession(current.ID)
	case key.Matches(keyMsg, keys.generate):
		if viewer == nil || !viewer.IsGM() || m.characters.generating {
			return m, nil
		}
		m.characters.generating = true
		return m, tea.Batch(m.characters.spinner.Tick, m.cmdGenerateNPC())
	case key.Matches(keyMsg, keys.gmTools):
		if viewer == nil || !viewer.IsGM() {
			return m, nil
		}
		m.currentScreen = screenGMTools
	case key.Matches(keyMsg, keys.session):
		if !m.characters.hasActive {
			return m, nil
		}
		m.currentScreen = screenSession
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateCharacterForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenCharacters
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.charForm.submitting {
				return m, nil
			}
			m.charForm.submitting = true
			return m, m.cmdCreateCharacter(m.charForm.input.Value())
		}
	}

	var cmd tea.Cmd
	m.charForm.input, cmd = m.charForm.input.Update(msg)
	return m, cmd
}

func (m appModel) updateOwnerSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenCharacters
	case key.Matches(keyMsg, keys.up):
		if m.ownerSelect.idx > 0 {
			m.ownerSelect.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.ownerSelect.idx < len(m.ownerSelect.players)-1 {
			m.ownerSelect.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.ownerSelect.players) == 0 {
			return m, nil
		}
		player := m.ownerSelect.players[m.ownerSelect.idx]
		m.currentScreen = screenCharacters
		return m, m.cmdChangeOwner(m.ownerSelect.characterID, player.ID, "Transferido para "+player.Name+".")
	}

	return m, nil
}

// ── GM tools ──────────────────────────────────────────────────────────────────

func (m appModel) updateGMTools(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenCharacters
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		m.gmTools.pane = 1 - m.gmTools.pane
	case key.Matches(keyMsg, keys.up):
		if m.gmTools.pane == gmPaneSystems && m.gmTools.systemIdx > 0 {
			m.gmTools.systemIdx--
		}
		if m.gmTools.pane == gmPaneSessions && m.gmTools.sessionIdx > 0 {
			m.gmTools.sessionIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.gmTools.pane == gmPaneSystems && m.gmTools.systemIdx < len(m.gmTools.systems)-1 {
			m.gmTools.systemIdx++
		}
		if m.gmTools.pane == gmPaneSessions && m.gmTools.sessionIdx < len(m.gmTools.sessions)-1 {
			m.gmTools.sessionIdx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.sessionForm = newNameFormModel("NOVA SESSÃO", "Nome da sessão", "ex.: O Segredo na Floresta")
		m.currentScreen = screenSessionForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.enter):
		if m.gmTools.pane == gmPaneSystems {
			system, ok := m.gmTools.currentSystem()
			if !ok {
				return m, nil
			}
			return m, m.cmdSelectSystem(system)
		}
		return m.resumeSelectedSession()
	case key.Matches(keyMsg, keys.resume):
		if m.gmTools.pane == gmPaneSessions {
			return m.resumeSelectedSession()
		}
	case key.Matches(keyMsg, keys.delete):
		if m.gmTools.pane != gmPaneSessions {
			return m, nil
		}
		s, ok := m.gmTools.currentSession()
		if !ok {
			return m, nil
		}
		m.askConfirm(confirmModel{
			kind:     confirmDeleteSession,
			targetID: s.ID,
			message:  "Apagar a sessão \"" + s.Name + "\" e todo o histórico dela?",
		})
	}

	return m, nil
}

func (m appModel) resumeSelectedSession() (tea.Model, tea.Cmd) {
	s, ok := m.gmTools.currentSession()
	if !ok {
		return m, nil
	}
	return m, m.cmdResumeSession(s)
}

func (m appModel) updateSessionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenGMTools
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.sessionForm.submitting {
				return m, nil
			}
			m.sessionForm.submitting = true
			return m, m.cmdStartSession(m.sessionForm.input.Value())
		}
	}

	var cmd tea.Cmd
	m.sessionForm.input, cmd = m.sessionForm.input.Update(msg)
	return m, cmd
}

// ── session ───────────────────────────────────────────────────────────────────

func (m appModel) updateSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.session.chatActive {
		if ok {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.session.chatActive = false
				m.session.chat.Blur()
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				text := strings.TrimSpace(m.session.chat.Value())
				if text == "" {
					return m, nil
				}
				m.session.chat.Reset()
				return m, m.cmdSendMessage(text)
			}
		}
		var cmd tea.Cmd
		m.session.chat, cmd = m.session.chat.Update(msg)
		return m, cmd
	}

	if !ok {
		return m, nil
	}

	viewer := m.session.viewer
	isGM := viewer != nil && viewer.IsGM()

	if sides, isDie := diceForKey(keyMsg.String()); isDie {
		return m, m.cmdRollDice(sides)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenCharacters
	case key.Matches(keyMsg, keys.tab):
		if !m.session.hasActive {
			return m, nil
		}
		m.session.chatActive = true
		return m, m.session.chat.Focus()
	case key.Matches(keyMsg, keys.up):
		if m.session.rosterIdx > 0 {
			m.session.rosterIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.session.rosterIdx < len(m.session.roster)-1 {
			m.session.rosterIdx++
		}
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyLog()
	case key.Matches(keyMsg, keys.remove):
		c, ok := m.session.currentRoster()
		if !isGM || !ok {
			return m, nil
		}
		return m, m.cmdRemoveFromSession(c)
	case key.Matches(keyMsg, keys.pause):
		if !isGM {
			return m, nil
		}
		return m, m.cmdPauseSession()
	}

	return m, nil
}

// ── commands ──────────────────────────────────────────────────────────────────

// intent runs fn off the UI loop and reports it as an [intentDoneMsg].
func (m appModel) intent(status string, next screen, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		err := fn(ctx)
		return intentDoneMsg{status: status, err: err, next: next}
	}
}

func (m appModel) cmdConfirmed(c confirmModel) tea.Cmd {
	switch c.kind {
	case confirmDeleteCharacter:
		svc := m.services.CharacterService
		return m.intent("Personagem excluído.", screenKeep, func(ctx context.Context) error {
			return svc.Delete(ctx, c.targetID)
		})
	case confirmDeleteSession:
		svc := m.services.SessionService
		return m.intent("Sessão apagada.", screenKeep, func(ctx context.Context) error {
			return svc.Delete(ctx, c.targetID)
		})
	case confirmResetData:
		ctx := m.ctx
		svc := m.services.DataService
		return func() tea.Msg {
			return resetDoneMsg{err: svc.Reset(ctx)}
		}
	}
	return nil
}

func (m appModel) cmdLogin(name, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Login(ctx, name, password)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(name, password, confirm string, role models.Role) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Register(ctx, name, password, confirm, role)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdCreateCharacter(name string) tea.Cmd {
	svc := m.services.CharacterService
	return m.intent("Personagem criado.", screenCharacters, func(ctx context.Context) error {
		_, err := svc.Create(ctx, name)
		return err
	})
}

func (m appModel) cmdToggleType(characterID string) tea.Cmd {
	svc := m.services.CharacterService
	return m.intent("Tipo alterado.", screenKeep, func(ctx context.Context) error {
		return svc.ToggleType(ctx, characterID)
	})
}

func (m appModel) cmdChangeOwner(characterID, ownerID, status string) tea.Cmd {
	svc := m.services.CharacterService
	return m.intent(status, screenKeep, func(ctx context.Context) error {
		return svc.ChangeOwner(ctx, characterID, ownerID)
	})
}

func (m appModel) cmdAddToSession(characterID string) tea.Cmd {
	svc := m.services.SessionService
	return m.intent("Adicionado à sessão.", screenKeep, func(ctx context.Context) error {
		return svc.AddCharacter(ctx, characterID)
	})
}

func (m appModel) cmdRemoveFromSession(c models.Character) tea.Cmd {
	svc := m.services.SessionService
	return m.intent(c.Name+" saiu da mesa.", screenKeep, func(ctx context.Context) error {
		return svc.RemoveCharacter(ctx, c.ID)
	})
}

func (m appModel) cmdGenerateNPC() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NPCService
	return func() tea.Msg {
		c, err := svc.Generate(ctx)
		return npcDoneMsg{character: c, err: err}
	}
}

func (m appModel) cmdSelectSystem(system models.GameSystem) tea.Cmd {
	svc := m.services.CharacterService
	return m.intent("Sistema: "+system.Name+".", screenKeep, func(ctx context.Context) error {
		return svc.SelectSystem(ctx, system.ID)
	})
}

func (m appModel) cmdStartSession(name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		s, err := svc.Start(ctx, name)
		return sessionStartedMsg{session: s, err: err}
	}
}

func (m appModel) cmdResumeSession(s models.Session) tea.Cmd {
	svc := m.services.SessionService
	return m.intent("Sessão \""+s.Name+"\" retomada.", screenSession, func(ctx context.Context) error {
		return svc.Resume(ctx, s.ID)
	})
}

func (m appModel) cmdPauseSession() tea.Cmd {
	svc := m.services.SessionService
	return m.intent("Sessão pausada.", screenCharacters, svc.Pause)
}

func (m appModel) cmdSendMessage(text string) tea.Cmd {
	svc := m.services.SessionService
	return m.intent("", screenKeep, func(ctx context.Context) error {
		return svc.SendMessage(ctx, text)
	})
}

func (m appModel) cmdRollDice(sides int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		result, err := svc.RollDice(ctx, sides)
		return diceRolledMsg{sides: sides, result: result, err: err}
	}
}

func (m appModel) cmdCopyLog() tea.Cmd {
	svc := m.services.SessionService
	log := m.logger
	return func() tea.Msg {
		transcript, err := svc.LogTranscript()
		if err != nil {
			return intentDoneMsg{err: err, next: screenKeep}
		}
		if err = clipboard.WriteAll(transcript); err != nil {
			log.Warn().Str("func", "appModel.cmdCopyLog").Err(err).Msg("clipboard unavailable")
			return intentDoneMsg{err: fmt.Errorf("copiar para a área de transferência: %w", err), next: screenKeep}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
