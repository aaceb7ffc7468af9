package repository

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	// Create asigna un ID nuevo a location y la persiste.
	Create(ctx context.Context, location *entity.Location) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	List(ctx context.Context) ([]*entity.Location, error)
	// Save reemplaza el documento completo con location.ID; si no existe lo inserta.
	Save(ctx context.Context, location *entity.Location) error
	// Delete no falla si el ID no existe.
	Delete(ctx context.Context, id string) error
}
