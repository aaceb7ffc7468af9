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

var _ repository.LocationRepository = (*LocationRepo)(nil)

const locationColumns = `id, name, address, type, contact_info`

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación con un UUID generado.
func (r *LocationRepo) Create(ctx context.Context, location *entity.Location) error {
	id := newID()
	_, err := r.q.Exec(ctx,
		`INSERT INTO locations (`+locationColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		id, location.Name, location.Address, string(location.Type), location.ContactInfo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	location.ID = id
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	row := r.q.QueryRow(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
	l, err := scanLocation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// List devuelve todas las ubicaciones.
func (r *LocationRepo) List(ctx context.Context) ([]*entity.Location, error) {
	rows, err := r.q.Query(ctx, `SELECT `+locationColumns+` FROM locations`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Save reemplaza la fila completa o la inserta si no existe.
func (r *LocationRepo) Save(ctx context.Context, location *entity.Location) error {
	if location.ID == "" {
		return domain.ErrInvalidInput
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO locations (`+locationColumns+`) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, address = EXCLUDED.address,
			type = EXCLUDED.type, contact_info = EXCLUDED.contact_info`,
		location.ID, location.Name, location.Address, string(location.Type), location.ContactInfo,
	)
	if err != nil {
		return fmt.Errorf("save location: %w", err)
	}
	return nil
}

// Delete elimina una ubicación por ID.
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	var typ string
	if err := row.Scan(&l.ID, &l.Name, &l.Address, &typ, &l.ContactInfo); err != nil {
		return nil, err
	}
	l.Type = entity.LocationType(typ)
	return &l, nil
}
