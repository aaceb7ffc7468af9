package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// RegisterMovementUseCase registra una transacción Y ajusta la existencia del producto.
// Es la alternativa explícita a TransactionUseCase.Create, que solo registra.
//
// El ajuste es una actualización condicional sobre el documento del producto (IN suma,
// OUT resta sin dejar negativo). No hay transacción entre colecciones: si falla el registro
// de la transacción, el ajuste se compensa con el delta inverso.
type RegisterMovementUseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	now         func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		productRepo: productRepo,
		txRepo:      txRepo,
		now:         usecase.Now,
	}
}

// Register valida el movimiento, ajusta Quantity y guarda la transacción.
// Errores: ErrInvalidTransactionType, ErrInvalidQuantity, ErrInvalidInput (sin producto),
// ErrNotFound (producto inexistente), ErrInsufficientStock (OUT mayor que la existencia).
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.TransactionRequest) (*dto.MovementResponse, error) {
	tx, err := usecase.BuildTransaction(in, uc.now)
	if err != nil {
		return nil, err
	}
	if tx.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	delta := tx.Type.Delta(tx.Quantity)
	product, err := uc.productRepo.AdjustQuantity(ctx, tx.ProductID, delta)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.txRepo.Create(ctx, tx); err != nil {
		// la compensación debe ejecutarse aunque el contexto del llamador ya esté cancelado
		if _, cerr := uc.productRepo.AdjustQuantity(context.WithoutCancel(ctx), tx.ProductID, -delta); cerr != nil {
			zerolog.Ctx(ctx).Error().Err(cerr).
				Str("product_id", tx.ProductID).
				Int("delta", -delta).
				Msg("no se pudo compensar el ajuste de existencia")
			return nil, errors.Join(err, fmt.Errorf("compensate quantity: %w", cerr))
		}
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("transaction_id", tx.ID).
		Str("product_id", product.ID).
		Str("type", string(tx.Type)).
		Int("quantity", tx.Quantity).
		Int("stock", product.Quantity).
		Msg("movimiento registrado")

	return &dto.MovementResponse{
		Transaction: *usecase.ToTransactionResponse(tx),
		Product:     *usecase.ToProductResponse(product),
	}, nil
}
