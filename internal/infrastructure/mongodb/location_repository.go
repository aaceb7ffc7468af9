package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre MongoDB.
type LocationRepo struct {
	coll *mongo.Collection
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(db *mongo.Database) *LocationRepo {
	return &LocationRepo{coll: db.Collection(CollectionLocations)}
}

// Create asigna un ObjectID nuevo y persiste la ubicación.
func (r *LocationRepo) Create(ctx context.Context, location *entity.Location) error {
	doc := fromLocation(location)
	doc.ID = newID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	location.ID = doc.ID
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	var doc locationDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return doc.toEntity(), nil
}

// List devuelve todas las ubicaciones.
func (r *LocationRepo) List(ctx context.Context) ([]*entity.Location, error) {
	docs, err := findAll[locationDocument](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	list := make([]*entity.Location, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toEntity())
	}
	return list, nil
}

// Save reemplaza el documento completo; si no existe lo inserta con el mismo ID.
func (r *LocationRepo) Save(ctx context.Context, location *entity.Location) error {
	if location.ID == "" {
		return domain.ErrInvalidInput
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": location.ID}, fromLocation(location),
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save location: %w", err)
	}
	return nil
}

// Delete elimina una ubicación por ID.
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
