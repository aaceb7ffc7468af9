package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// Documentos BSON. Los nombres de campo siguen el formato camelCase de las colecciones
// existentes; la entidad de dominio no lleva tags de persistencia.

type locationDocument struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Address     string `bson:"address"`
	Type        string `bson:"type"`
	ContactInfo string `bson:"contactInfo"`
}

type productDocument struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	SKU         string               `bson:"sku"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	Quantity    int                  `bson:"quantity"`
	LocationID  string               `bson:"locationId"`
	Category    string               `bson:"category"`
	Threshold   int                  `bson:"threshold"`
}

type transactionDocument struct {
	ID        string    `bson:"_id"`
	ProductID string    `bson:"productId"`
	Type      string    `bson:"type"`
	Quantity  int       `bson:"quantity"`
	Timestamp time.Time `bson:"timestamp"`
	UserID    string    `bson:"userId"`
	Notes     string    `bson:"notes"`
}

type userDocument struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	Password  string    `bson:"password"` // hash bcrypt
	Role      string    `bson:"role"`
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"createdAt"`
}

func fromLocation(l *entity.Location) locationDocument {
	return locationDocument{
		ID:          l.ID,
		Name:        l.Name,
		Address:     l.Address,
		Type:        string(l.Type),
		ContactInfo: l.ContactInfo,
	}
}

func (d locationDocument) toEntity() *entity.Location {
	return &entity.Location{
		ID:          d.ID,
		Name:        d.Name,
		Address:     d.Address,
		Type:        entity.LocationType(d.Type),
		ContactInfo: d.ContactInfo,
	}
}

func fromProduct(p *entity.Product) (productDocument, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return productDocument{}, err
	}
	return productDocument{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       price,
		Quantity:    p.Quantity,
		LocationID:  p.LocationID,
		Category:    p.Category,
		Threshold:   p.Threshold,
	}, nil
}

func (d productDocument) toEntity() (*entity.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:          d.ID,
		Name:        d.Name,
		SKU:         d.SKU,
		Description: d.Description,
		Price:       price,
		Quantity:    d.Quantity,
		LocationID:  d.LocationID,
		Category:    d.Category,
		Threshold:   d.Threshold,
	}, nil
}

func fromTransaction(t *entity.Transaction) transactionDocument {
	return transactionDocument{
		ID:        t.ID,
		ProductID: t.ProductID,
		Type:      string(t.Type),
		Quantity:  t.Quantity,
		Timestamp: t.Timestamp,
		UserID:    t.UserID,
		Notes:     t.Notes,
	}
}

func (d transactionDocument) toEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        d.ID,
		ProductID: d.ProductID,
		Type:      entity.TransactionType(d.Type),
		Quantity:  d.Quantity,
		Timestamp: d.Timestamp.UTC(),
		UserID:    d.UserID,
		Notes:     d.Notes,
	}
}

func fromUser(u *entity.User) userDocument {
	return userDocument{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.PasswordHash,
		Role:      u.Role,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func (d userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.Password,
		Role:         d.Role,
		Email:        d.Email,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}
