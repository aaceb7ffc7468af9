package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
)

// SeedCatalogUseCase carga un catálogo: primero las ubicaciones, luego los productos
// con su ubicación resuelta por nombre. Las ubicaciones que ya existen con el mismo
// nombre se reutilizan.
type SeedCatalogUseCase struct {
	locations *usecase.LocationUseCase
	products  *usecase.ProductUseCase
}

// NewSeedCatalogUseCase construye el caso de uso sobre los servicios de ubicación y producto.
func NewSeedCatalogUseCase(locations *usecase.LocationUseCase, products *usecase.ProductUseCase) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{locations: locations, products: products}
}

// Seed no es atómico: si falla a mitad, lo ya creado queda persistido.
func (uc *SeedCatalogUseCase) Seed(ctx context.Context, in dto.CatalogRequest) (*dto.SeedResult, error) {
	existing, err := uc.locations.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(existing))
	for _, l := range existing {
		byName[strings.ToLower(l.Name)] = l.ID
	}

	res := &dto.SeedResult{}
	for _, l := range in.Locations {
		key := strings.ToLower(l.Name)
		if _, ok := byName[key]; ok {
			res.LocationsReused++
			continue
		}
		out, err := uc.locations.Create(ctx, l)
		if err != nil {
			return res, fmt.Errorf("location %q: %w", l.Name, err)
		}
		byName[key] = out.ID
		res.LocationsCreated++
	}

	for _, p := range in.Products {
		req := p.Product
		if p.LocationName != "" {
			id, ok := byName[strings.ToLower(p.LocationName)]
			if !ok {
				res.Unresolved = append(res.Unresolved, req.SKU)
			}
			req.LocationID = id
		}
		if _, err := uc.products.Create(ctx, req); err != nil {
			return res, fmt.Errorf("product %q: %w", req.SKU, err)
		}
		res.ProductsCreated++
	}

	zerolog.Ctx(ctx).Info().
		Int("locations_created", res.LocationsCreated).
		Int("locations_reused", res.LocationsReused).
		Int("products_created", res.ProductsCreated).
		Int("unresolved", len(res.Unresolved)).
		Msg("catálogo cargado")
	return res, nil
}
