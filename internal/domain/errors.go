package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrInvalidQuantity        = errors.New("la cantidad debe ser mayor que cero")
	ErrInvalidPrice           = errors.New("el precio no puede ser negativo")
	ErrInvalidTransactionType = errors.New("tipo de transacción desconocido (IN u OUT)")
	ErrInvalidLocationType    = errors.New("tipo de ubicación desconocido")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUsernameTaken          = errors.New("el nombre de usuario ya está registrado")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrInsufficientStock      = errors.New("stock insuficiente")
)
