package dto

import "time"

// TransactionRequest entrada para registrar una transacción.
// Timestamp es opcional: si viene se persiste tal cual, si no se usa la hora actual.
type TransactionRequest struct {
	ProductID string     `json:"productId"`
	Type      string     `json:"type"` // "IN" o "OUT"
	Quantity  int        `json:"quantity"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	UserID    string     `json:"userId"`
	Notes     string     `json:"notes"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	Notes     string    `json:"notes"`
}

// MovementResponse resultado de registrar un movimiento con ajuste de existencia.
type MovementResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Product     ProductResponse     `json:"product"`
}
