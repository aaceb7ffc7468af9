package repository

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Save(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// SearchByName busca productos cuyo nombre contiene name (sensible a mayúsculas).
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	// ListQuantityBelow devuelve los productos con Quantity estrictamente menor que threshold.
	ListQuantityBelow(ctx context.Context, threshold int) ([]*entity.Product, error)

	// AdjustQuantity suma delta a Quantity en una sola operación atómica sobre el registro.
	// Devuelve (nil, nil) si el producto no existe y ErrInsufficientStock si el resultado
	// quedaría negativo (en ese caso no modifica nada).
	AdjustQuantity(ctx context.Context, id string, delta int) (*entity.Product, error)
}
