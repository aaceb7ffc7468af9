package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una nueva ubicación. El ID lo asigna el repositorio.
// No se valida unicidad del nombre.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.LocationRequest) (*dto.LocationResponse, error) {
	location, err := toLocation(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, location); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("location_id", location.ID).Msg("ubicación creada")
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID; (nil, nil) si no existe.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// List lista todas las ubicaciones (sin orden garantizado).
func (uc *LocationUseCase) List(ctx context.Context) ([]dto.LocationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// Update reemplaza la ubicación completa usando el id de la ruta (ignora cualquier otro ID).
// Si no existe, la crea con ese id.
func (uc *LocationUseCase) Update(ctx context.Context, id string, in dto.LocationRequest) (*dto.LocationResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	location, err := toLocation(in)
	if err != nil {
		return nil, err
	}
	location.ID = id
	if err := uc.repo.Save(ctx, location); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("location_id", id).Msg("ubicación reemplazada")
	return toLocationResponse(location), nil
}

// Delete elimina una ubicación por ID. No toca los productos que la referencian.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toLocation(in dto.LocationRequest) (*entity.Location, error) {
	locType, err := entity.ParseLocationType(in.Type)
	if err != nil {
		return nil, err
	}
	return &entity.Location{
		Name:        in.Name,
		Address:     in.Address,
		Type:        locType,
		ContactInfo: in.ContactInfo,
	}, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Address:     l.Address,
		Type:        string(l.Type),
		ContactInfo: l.ContactInfo,
	}
}
