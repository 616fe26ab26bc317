package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound        = errors.New("registro não encontrado")
	ErrValidation      = errors.New("entrada inválida")
	ErrBrokenReference = errors.New("referência quebrada entre registros")
)
