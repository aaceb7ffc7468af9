package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	domaininv "github.com/jhoicas/inventory-tracker/internal/domain/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// ReconcileUseCase contrasta Product.Quantity con el neto de sus transacciones.
// Solo lee: no corrige ninguna de las dos partes.
type ReconcileUseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(productRepo repository.ProductRepository, txRepo repository.TransactionRepository) *ReconcileUseCase {
	return &ReconcileUseCase{productRepo: productRepo, txRepo: txRepo}
}

// Reconcile devuelve ErrNotFound si el producto no existe. Una diferencia distinta de cero
// es esperable cuando hay existencia inicial o transacciones creadas sin ajuste.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, productID string) (*dto.ReconciliationDTO, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	txs, err := uc.txRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	net := domaininv.NetEffect(txs)
	out := &dto.ReconciliationDTO{
		ProductID:        product.ID,
		SKU:              product.SKU,
		ProductName:      product.Name,
		StoredQuantity:   product.Quantity,
		TransactionNet:   net,
		TransactionCount: len(txs),
		Difference:       product.Quantity - net,
		InSync:           product.Quantity == net,
	}
	if !out.InSync {
		zerolog.Ctx(ctx).Debug().
			Str("product_id", product.ID).
			Int("stored", out.StoredQuantity).
			Int("net", net).
			Msg("existencia no coincide con las transacciones")
	}
	return out, nil
}
