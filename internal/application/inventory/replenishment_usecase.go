package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición a partir del umbral propio de cada
// producto (Product.Threshold). Es independiente de ProductUseCase.ListLowStock, que usa un
// umbral del llamador.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(productRepo repository.ProductRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo}
}

// List devuelve los productos con Quantity <= Threshold, ordenados por mayor déficit.
// La cantidad sugerida lleva la existencia al doble del umbral.
func (uc *ReplenishmentUseCase) List(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range products {
		if !p.IsLowStock() {
			continue
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:         p.ID,
			SKU:               p.SKU,
			ProductName:       p.Name,
			LocationID:        p.LocationID,
			CurrentStock:      p.Quantity,
			Threshold:         p.Threshold,
			Shortfall:         max(p.Threshold-p.Quantity, 0),
			SuggestedOrderQty: max(p.Threshold*2-p.Quantity, 0),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Shortfall != b.Shortfall {
			return a.Shortfall > b.Shortfall
		}
		return a.ProductName < b.ProductName
	})
	return suggestions, nil
}
