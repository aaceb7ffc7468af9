package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre MongoDB.
type TransactionRepo struct {
	coll *mongo.Collection
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones.
func NewTransactionRepository(db *mongo.Database) *TransactionRepo {
	return &TransactionRepo{coll: db.Collection(CollectionTransactions)}
}

// Create asigna un ObjectID nuevo y persiste la transacción tal como llega.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	doc := fromTransaction(tx)
	doc.ID = newID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	tx.ID = doc.ID
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var doc transactionDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	return r.find(ctx, "list transactions", bson.M{})
}

// Delete elimina una transacción por ID. No revierte el efecto sobre el stock.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Transaction, error) {
	return r.find(ctx, "list transactions by product", bson.M{"productId": productID})
}

func (r *TransactionRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	return r.find(ctx, "list transactions by user", bson.M{"userId": userID})
}

func (r *TransactionRepo) ListByType(ctx context.Context, txType entity.TransactionType) ([]*entity.Transaction, error) {
	return r.find(ctx, "list transactions by type", bson.M{"type": string(txType)})
}

func (r *TransactionRepo) find(ctx context.Context, op string, filter any) ([]*entity.Transaction, error) {
	docs, err := findAll[transactionDocument](ctx, r.coll, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	list := make([]*entity.Transaction, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toEntity())
	}
	return list, nil
}
