package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(CollectionProducts)}
}

// Create asigna un ObjectID nuevo y persiste el producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	doc, err := fromProduct(product)
	if err != nil {
		return err
	}
	doc.ID = newID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = doc.ID
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var doc productDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return doc.toEntity()
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.find(ctx, "list products", bson.M{})
}

// Save reemplaza el documento completo; si no existe lo inserta con el mismo ID.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		return domain.ErrInvalidInput
	}
	doc, err := fromProduct(product)
	if err != nil {
		return err
	}
	_, err = r.coll.ReplaceOne(ctx, bson.M{"_id": product.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// SearchByName usa una expresión regular literal, sin opción "i".
func (r *ProductRepo) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(name)}}
	return r.find(ctx, "search products", filter)
}

// ListByCategory filtra por categoría exacta.
func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return r.find(ctx, "list products by category", bson.M{"category": category})
}

// ListQuantityBelow filtra quantity < threshold.
func (r *ProductRepo) ListQuantityBelow(ctx context.Context, threshold int) ([]*entity.Product, error) {
	return r.find(ctx, "list low stock products", bson.M{"quantity": bson.M{"$lt": threshold}})
}

// AdjustQuantity aplica $inc con la condición de no negatividad en el mismo filtro,
// así la comprobación y la escritura son una sola operación sobre el documento.
func (r *ProductRepo) AdjustQuantity(ctx context.Context, id string, delta int) (*entity.Product, error) {
	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["quantity"] = bson.M{"$gte": -delta}
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc productDocument
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"quantity": delta}}, opts).Decode(&doc)
	if err == nil {
		return doc.toEntity()
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("adjust product quantity: %w", err)
	}

	// Sin coincidencia: o el producto no existe o el stock no alcanza.
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("count product: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	return nil, domain.ErrInsufficientStock
}

func (r *ProductRepo) find(ctx context.Context, op string, filter any) ([]*entity.Product, error) {
	docs, err := findAll[productDocument](ctx, r.coll, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.toEntity()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, p)
	}
	return list, nil
}
