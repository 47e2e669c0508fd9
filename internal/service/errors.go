package service

// errors.go — typed domain errors. Handlers map these onto HTTP statuses;
// anything else bubbles up as a 500 through the ErrorHandler middleware.

import (
	"errors"
	"fmt"
)

// ErrNaoAutenticado is returned when an operation requires a session.
var ErrNaoAutenticado = errors.New("autenticação necessária")

// ErrPermissaoNegada is returned when the caller's role is insufficient.
var ErrPermissaoNegada = errors.New("permissões insuficientes")

// ErrSugestaoJaResolvida is returned on a decision against a suggestion that
// already left the pendente state. Transitions are one-way.
var ErrSugestaoJaResolvida = errors.New("sugestão já foi resolvida")

// ErrSugestoesFechadas is returned when the portal settings have the
// suggestion form closed.
var ErrSugestoesFechadas = errors.New("o envio de sugestões está temporariamente fechado")

// NaoEncontradoError reports a missing or inactive entity.
type NaoEncontradoError struct {
	Entidade string
}

func (e *NaoEncontradoError) Error() string {
	return fmt.Sprintf("%s não encontrado(a) ou inativo(a)", e.Entidade)
}

// ValidacaoError reports per-field validation failures detected at the
// service boundary (scope-dependent suggestion payloads, mostly).
type ValidacaoError struct {
	Campos map[string]string
}

func (e *ValidacaoError) Error() string {
	return fmt.Sprintf("erro de validação: %d campo(s) inválido(s)", len(e.Campos))
}

func novaValidacao(campo, motivo string) *ValidacaoError {
	return &ValidacaoError{Campos: map[string]string{campo: motivo}}
}

// AplicacaoError reports a catalog mutation failure while applying an
// approved suggestion, naming the entity whose write failed.
type AplicacaoError struct {
	Entidade string
	Err      error
}

func (e *AplicacaoError) Error() string {
	return fmt.Sprintf("falha ao aplicar sugestão em %s: %v", e.Entidade, e.Err)
}

func (e *AplicacaoError) Unwrap() error { return e.Err }
