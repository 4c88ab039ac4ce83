package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrEmptyCart    = errors.New("carrinho vazio")
	ErrUnauthorized = errors.New("não autorizado")
)
