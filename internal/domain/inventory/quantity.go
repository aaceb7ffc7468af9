package inventory

import (
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// ApplyMovement calcula la nueva existencia tras mover qty unidades (servicio de dominio).
// NuevaExistencia = Actual + qty (IN) | Actual - qty (OUT); nunca negativa.
func ApplyMovement(current int, txType entity.TransactionType, qty int) (int, error) {
	if qty <= 0 {
		return current, domain.ErrInvalidQuantity
	}
	next := current + txType.Delta(qty)
	if next < 0 {
		return current, domain.ErrInsufficientStock
	}
	return next, nil
}

// NetEffect suma el efecto con signo de las transacciones indicadas.
func NetEffect(txs []*entity.Transaction) int {
	net := 0
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		net += tx.Type.Delta(tx.Quantity)
	}
	return net
}
