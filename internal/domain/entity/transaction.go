package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventory-tracker/internal/domain"
)

// TransactionType tipo de movimiento de inventario.
type TransactionType string

// Tipos de transacción.
const (
	TransactionTypeIN  TransactionType = "IN"  // entrada
	TransactionTypeOUT TransactionType = "OUT" // salida
)

// ParseTransactionType convierte el texto recibido en un TransactionType válido.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TransactionTypeIN, TransactionTypeOUT:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, s)
}

// Delta devuelve el efecto con signo de mover qty unidades con este tipo (IN suma, OUT resta).
func (t TransactionType) Delta(qty int) int {
	if t == TransactionTypeOUT {
		return -qty
	}
	return qty
}

// Transaction registra una entrada o salida de stock. Es inmutable una vez creada.
type Transaction struct {
	ID        string
	ProductID string // referencia a Product, no validada
	Type      TransactionType
	Quantity  int // siempre positiva
	Timestamp time.Time
	UserID    string // referencia a User, no validada
	Notes     string
}
