package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y consultas para productos.
// Quantity se guarda tal como llega; las transacciones no la modifican.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. No se valida unicidad de SKU ni existencia de LocationID.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := toProduct(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("product_id", product.ID).Str("sku", product.SKU).Msg("producto creado")
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	return toProductResponses(uc.repo.List(ctx))
}

// Update reemplaza el producto completo con el id indicado (upsert).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := toProduct(in)
	if err != nil {
		return nil, err
	}
	product.ID = id
	if err := uc.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("product_id", id).Msg("producto reemplazado")
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Sus transacciones se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// SearchByName devuelve los productos cuyo nombre contiene name (sensible a mayúsculas).
func (uc *ProductUseCase) SearchByName(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	return toProductResponses(uc.repo.SearchByName(ctx, name))
}

// ListByCategory devuelve los productos de la categoría exacta.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	return toProductResponses(uc.repo.ListByCategory(ctx, category))
}

// ListLowStock devuelve los productos con Quantity < threshold. El threshold es el del
// llamador y no se compara con el Threshold almacenado en cada producto.
func (uc *ProductUseCase) ListLowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	return toProductResponses(uc.repo.ListQuantityBelow(ctx, threshold))
}

func toProduct(in dto.ProductRequest) (*entity.Product, error) {
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidPrice
	}
	return &entity.Product{
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		LocationID:  in.LocationID,
		Category:    in.Category,
		Threshold:   in.Threshold,
	}, nil
}

func toProductResponses(list []*entity.Product, err error) ([]dto.ProductResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// ToProductResponse mapea la entidad a su salida (compartido con inventory y analytics).
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	return toProductResponse(p)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		LocationID:  p.LocationID,
		Category:    p.Category,
		Threshold:   p.Threshold,
	}
}
