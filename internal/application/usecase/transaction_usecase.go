package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// TransactionUseCase casos de uso para transacciones de stock: crear, consultar y eliminar.
// No existe Update: una transacción registrada no se modifica.
//
// Create NO ajusta Product.Quantity. Quien necesite mover existencias debe usar
// inventory.RegisterMovementUseCase.
type TransactionUseCase struct {
	repo repository.TransactionRepository
	now  func() time.Time
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, now: Now}
}

// Now hora actual en UTC truncada a milisegundos (precisión de los documentos BSON).
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Create registra la transacción tal como llega; el timestamp del llamador se normaliza a UTC en milisegundos.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.TransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := BuildTransaction(in, uc.now)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().
		Str("transaction_id", tx.ID).
		Str("product_id", tx.ProductID).
		Str("type", string(tx.Type)).
		Int("quantity", tx.Quantity).
		Msg("transacción registrada")
	return ToTransactionResponse(tx), nil
}

// GetByID obtiene una transacción por ID; (nil, nil) si no existe.
func (uc *TransactionUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	return ToTransactionResponse(tx), nil
}

// List lista todas las transacciones.
func (uc *TransactionUseCase) List(ctx context.Context) ([]dto.TransactionResponse, error) {
	return toTransactionResponses(uc.repo.List(ctx))
}

// Delete elimina una transacción por ID (no revierte nada en el producto).
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ListByProduct transacciones que referencian al producto.
func (uc *TransactionUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.TransactionResponse, error) {
	return toTransactionResponses(uc.repo.ListByProduct(ctx, productID))
}

// ListByUser transacciones registradas por el usuario.
func (uc *TransactionUseCase) ListByUser(ctx context.Context, userID string) ([]dto.TransactionResponse, error) {
	return toTransactionResponses(uc.repo.ListByUser(ctx, userID))
}

// ListByType transacciones del tipo indicado ("IN" u "OUT"); otro valor devuelve ErrInvalidTransactionType.
func (uc *TransactionUseCase) ListByType(ctx context.Context, txType string) ([]dto.TransactionResponse, error) {
	t, err := entity.ParseTransactionType(txType)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(uc.repo.ListByType(ctx, t))
}

// BuildTransaction valida el request y construye la entidad (sin ID).
// Reglas: tipo IN/OUT y cantidad positiva. Las referencias no se validan.
func BuildTransaction(in dto.TransactionRequest, now func() time.Time) (*entity.Transaction, error) {
	txType, err := entity.ParseTransactionType(in.Type)
	if err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	ts := now()
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		// mismo instante, en UTC y con la precisión de milisegundos de los almacenes
		ts = in.Timestamp.UTC().Truncate(time.Millisecond)
	}
	return &entity.Transaction{
		ProductID: in.ProductID,
		Type:      txType,
		Quantity:  in.Quantity,
		Timestamp: ts,
		UserID:    in.UserID,
		Notes:     in.Notes,
	}, nil
}

func toTransactionResponses(list []*entity.Transaction, err error) ([]dto.TransactionResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, *ToTransactionResponse(tx))
	}
	return items, nil
}

// ToTransactionResponse mapea la entidad a su salida.
func ToTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	if tx == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:        tx.ID,
		ProductID: tx.ProductID,
		Type:      string(tx.Type),
		Quantity:  tx.Quantity,
		Timestamp: tx.Timestamp,
		UserID:    tx.UserID,
		Notes:     tx.Notes,
	}
}
