package tui

import (
	"errors"

	"github.com/MKhiriev/go-ordo-keeper/internal/service"
	"github.com/MKhiriev/go-ordo-keeper/internal/state"
)

var ErrUserQuit = errors.New("usuário saiu do programa")

var userMessages = []struct {
	err error
	msg string
}{
	{state.ErrEmptyField, "Preencha todos os campos."},
	{state.ErrPasswordMismatch, "As senhas não conferem."},
	{state.ErrUserAlreadyExists, "Já existe um agente com esse nome."},
	{state.ErrInvalidRole, "Papel inválido."},
	{state.ErrUserNotFound, "Agente não encontrado."},
	{state.ErrWrongPassword, "Senha incorreta."},
	{state.ErrNotAuthenticated, "Faça login primeiro."},
	{state.ErrNotGameMaster, "Apenas o Mestre pode fazer isso."},
	{state.ErrCharacterNotFound, "Personagem não encontrado."},
	{state.ErrSessionNotFound, "Sessão não encontrada."},
	{state.ErrNoActiveSession, "Nenhuma sessão ativa."},
	{state.ErrUnknownSystem, "Sistema desconhecido."},
	{service.ErrGenerationInProgress, "Já existe um NPC sendo gerado."},
	{service.ErrInvalidDice, "Dado inválido."},
	{service.ErrResetStorage, "Os dados foram limpos, mas o arquivo salvo não pôde ser apagado."},
}

// userMessage turns a service error into the text shown on the error
// overlay.
func userMessage(err error) string {
	for _, um := range userMessages {
		if errors.Is(err, um.err) {
			return um.msg
		}
	}
	return err.Error()
}
