package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, product_id, type, quantity, ts, user_id, notes`

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste la transacción tal como llega, con un UUID generado.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	id := newID()
	_, err := r.q.Exec(ctx,
		`INSERT INTO transactions (`+transactionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, tx.ProductID, string(tx.Type), tx.Quantity, tx.Timestamp, tx.UserID, tx.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	tx.ID = id
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t, err := scanTransaction(r.q.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	return r.query(ctx, "list transactions", `SELECT `+transactionColumns+` FROM transactions`)
}

// Delete elimina una transacción por ID. No revierte el efecto sobre el stock.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Transaction, error) {
	return r.query(ctx, "list transactions by product",
		`SELECT `+transactionColumns+` FROM transactions WHERE product_id = $1`, productID)
}

func (r *TransactionRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	return r.query(ctx, "list transactions by user",
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1`, userID)
}

func (r *TransactionRepo) ListByType(ctx context.Context, txType entity.TransactionType) ([]*entity.Transaction, error) {
	return r.query(ctx, "list transactions by type",
		`SELECT `+transactionColumns+` FROM transactions WHERE type = $1`, string(txType))
}

func (r *TransactionRepo) query(ctx context.Context, op, sql string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var typ string
	if err := row.Scan(&t.ID, &t.ProductID, &typ, &t.Quantity, &t.Timestamp, &t.UserID, &t.Notes); err != nil {
		return nil, err
	}
	t.Type = entity.TransactionType(typ)
	t.Timestamp = t.Timestamp.UTC()
	return &t, nil
}
