package mongodb

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/inventory-tracker/internal/domain"
)

const (
	userUsernameIndex = "users_username_unique"
	userEmailIndex    = "users_email_unique"
)

func newID() string {
	return primitive.NewObjectID().Hex()
}

// findAll ejecuta Find y decodifica todos los documentos.
func findAll[D any](ctx context.Context, coll *mongo.Collection, filter any) ([]D, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// mapWriteError traduce violaciones de índice único a errores de dominio.
func mapWriteError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, userUsernameIndex):
		return domain.ErrUsernameTaken
	case strings.Contains(msg, userEmailIndex):
		return domain.ErrEmailAlreadyExists
	}
	return domain.ErrDuplicate
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("encode decimal %s: %w", d, err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode decimal %s: %w", v, err)
	}
	return d, nil
}
