package domain

import "errors"

// Erros de domínio (sem dependências externas).
//
// ErrQuoteClosed é distinto de ErrNotFound: mutação em cotação fechada
// responde 403, recurso inexistente ou de outra empresa responde 404.
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrQuoteClosed        = errors.New("cotação fechada")
	ErrShareExpired       = errors.New("link de compartilhamento expirado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrWrongPassword      = errors.New("senha atual incorreta")
)
