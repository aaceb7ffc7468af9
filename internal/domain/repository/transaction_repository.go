package repository

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction.
// No hay Save: las transacciones no se modifican después de creadas.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	List(ctx context.Context) ([]*entity.Transaction, error)
	Delete(ctx context.Context, id string) error

	ListByProduct(ctx context.Context, productID string) ([]*entity.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error)
	ListByType(ctx context.Context, txType entity.TransactionType) ([]*entity.Transaction, error)
}
