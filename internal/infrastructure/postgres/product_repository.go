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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, sku, description, price, quantity, location_id, category, threshold`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con un UUID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	id := newID()
	_, err := r.q.Exec(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, product.Name, product.SKU, product.Description, product.Price,
		product.Quantity, product.LocationID, product.Category, product.Threshold,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = id
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.query(ctx, "list products", `SELECT `+productColumns+` FROM products`)
}

// Save reemplaza la fila completa o la inserta si no existe.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		return domain.ErrInvalidInput
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, sku = EXCLUDED.sku, description = EXCLUDED.description,
			price = EXCLUDED.price, quantity = EXCLUDED.quantity, location_id = EXCLUDED.location_id,
			category = EXCLUDED.category, threshold = EXCLUDED.threshold`,
		product.ID, product.Name, product.SKU, product.Description, product.Price,
		product.Quantity, product.LocationID, product.Category, product.Threshold,
	)
	if err != nil {
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// SearchByName usa strpos para que la búsqueda sea literal y sensible a mayúsculas.
func (r *ProductRepo) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	return r.query(ctx, "search products",
		`SELECT `+productColumns+` FROM products WHERE strpos(name, $1) > 0`, name)
}

func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return r.query(ctx, "list products by category",
		`SELECT `+productColumns+` FROM products WHERE category = $1`, category)
}

func (r *ProductRepo) ListQuantityBelow(ctx context.Context, threshold int) ([]*entity.Product, error) {
	return r.query(ctx, "list low stock products",
		`SELECT `+productColumns+` FROM products WHERE quantity < $1`, threshold)
}

// AdjustQuantity suma delta en un único UPDATE condicionado a que el resultado no sea negativo.
func (r *ProductRepo) AdjustQuantity(ctx context.Context, id string, delta int) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `
		UPDATE products SET quantity = quantity + $2
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING `+productColumns, id, delta))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("adjust product quantity: %w", err)
	}

	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return nil, nil
	}
	return nil, domain.ErrInsufficientStock
}

func (r *ProductRepo) query(ctx context.Context, op, sql string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price,
		&p.Quantity, &p.LocationID, &p.Category, &p.Threshold)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
