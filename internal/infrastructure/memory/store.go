// Package memory implementa los puertos de repositorio en memoria del proceso.
// Se usa en tests y con STORE_DRIVER=memory; los datos se pierden al terminar.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var (
	_ repository.LocationRepository    = (*LocationRepo)(nil)
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
	_ repository.UserRepository        = (*UserRepo)(nil)
)

// Store agrupa las cuatro colecciones. Cada registro se copia al entrar y al salir
// para que los llamadores no compartan punteros con el almacén.
type Store struct {
	mu           sync.RWMutex
	locations    map[string]entity.Location
	products     map[string]entity.Product
	transactions map[string]entity.Transaction
	users        map[string]entity.User
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		locations:    make(map[string]entity.Location),
		products:     make(map[string]entity.Product),
		transactions: make(map[string]entity.Transaction),
		users:        make(map[string]entity.User),
	}
}

// Locations devuelve el repositorio de ubicaciones.
func (s *Store) Locations() *LocationRepo { return &LocationRepo{s: s} }

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Transactions devuelve el repositorio de transacciones.
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{s: s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

func newID() string { return uuid.New().String() }

// ── generic helpers ──────────────────────────────────────────────────────────

func get[T any](s *Store, m map[string]T, id string) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := m[id]
	if !ok {
		return nil
	}
	return &v
}

func filter[T any](s *Store, m map[string]T, keep func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(m))
	for _, v := range m {
		v := v
		if keep == nil || keep(&v) {
			out = append(out, &v)
		}
	}
	return out
}

func put[T any](s *Store, m map[string]T, id string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m[id] = v
}

func del[T any](s *Store, m map[string]T, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(m, id)
}

// ── Location ─────────────────────────────────────────────────────────────────

// LocationRepo implementación en memoria de LocationRepository.
type LocationRepo struct{ s *Store }

// Create asigna ID y persiste.
func (r *LocationRepo) Create(_ context.Context, l *entity.Location) error {
	l.ID = newID()
	put(r.s, r.s.locations, l.ID, *l)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *LocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return get(r.s, r.s.locations, id), nil
}

// List devuelve todas las ubicaciones.
func (r *LocationRepo) List(_ context.Context) ([]*entity.Location, error) {
	return filter(r.s, r.s.locations, nil), nil
}

// Save inserta o reemplaza por ID.
func (r *LocationRepo) Save(_ context.Context, l *entity.Location) error {
	if l.ID == "" {
		return domain.ErrInvalidInput
	}
	put(r.s, r.s.locations, l.ID, *l)
	return nil
}

// Delete elimina por ID (no-op si no existe).
func (r *LocationRepo) Delete(_ context.Context, id string) error {
	del(r.s, r.s.locations, id)
	return nil
}

// ── Product ──────────────────────────────────────────────────────────────────

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct{ s *Store }

// Create asigna ID y persiste.
func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = newID()
	put(r.s, r.s.products, p.ID, *p)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return get(r.s, r.s.products, id), nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return filter(r.s, r.s.products, nil), nil
}

// Save inserta o reemplaza por ID.
func (r *ProductRepo) Save(_ context.Context, p *entity.Product) error {
	if p.ID == "" {
		return domain.ErrInvalidInput
	}
	put(r.s, r.s.products, p.ID, *p)
	return nil
}

// Delete elimina por ID (no-op si no existe).
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	del(r.s, r.s.products, id)
	return nil
}

// SearchByName subcadena sensible a mayúsculas.
func (r *ProductRepo) SearchByName(_ context.Context, name string) ([]*entity.Product, error) {
	return filter(r.s, r.s.products, func(p *entity.Product) bool {
		return strings.Contains(p.Name, name)
	}), nil
}

// ListByCategory coincidencia exacta de categoría.
func (r *ProductRepo) ListByCategory(_ context.Context, category string) ([]*entity.Product, error) {
	return filter(r.s, r.s.products, func(p *entity.Product) bool {
		return p.Category == category
	}), nil
}

// ListQuantityBelow Quantity < threshold.
func (r *ProductRepo) ListQuantityBelow(_ context.Context, threshold int) ([]*entity.Product, error) {
	return filter(r.s, r.s.products, func(p *entity.Product) bool {
		return p.Quantity < threshold
	}), nil
}

// AdjustQuantity suma delta bajo el lock de escritura del almacén.
func (r *ProductRepo) AdjustQuantity(_ context.Context, id string, delta int) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	if delta == 0 {
		return &p, nil
	}
	txType, qty := entity.TransactionTypeIN, delta
	if delta < 0 {
		txType, qty = entity.TransactionTypeOUT, -delta
	}
	next, err := inventory.ApplyMovement(p.Quantity, txType, qty)
	if err != nil {
		return nil, err
	}
	p.Quantity = next
	r.s.products[id] = p
	return &p, nil
}

// ── Transaction ──────────────────────────────────────────────────────────────

// TransactionRepo implementación en memoria de TransactionRepository.
type TransactionRepo struct{ s *Store }

// Create asigna ID y persiste.
func (r *TransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	tx.ID = newID()
	put(r.s, r.s.transactions, tx.ID, *tx)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	return get(r.s, r.s.transactions, id), nil
}

// List devuelve todas las transacciones.
func (r *TransactionRepo) List(_ context.Context) ([]*entity.Transaction, error) {
	return filter(r.s, r.s.transactions, nil), nil
}

// Delete elimina por ID (no-op si no existe).
func (r *TransactionRepo) Delete(_ context.Context, id string) error {
	del(r.s, r.s.transactions, id)
	return nil
}

// ListByProduct filtra por ProductID.
func (r *TransactionRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Transaction, error) {
	return filter(r.s, r.s.transactions, func(tx *entity.Transaction) bool {
		return tx.ProductID == productID
	}), nil
}

// ListByUser filtra por UserID.
func (r *TransactionRepo) ListByUser(_ context.Context, userID string) ([]*entity.Transaction, error) {
	return filter(r.s, r.s.transactions, func(tx *entity.Transaction) bool {
		return tx.UserID == userID
	}), nil
}

// ListByType filtra por tipo.
func (r *TransactionRepo) ListByType(_ context.Context, txType entity.TransactionType) ([]*entity.Transaction, error) {
	return filter(r.s, r.s.transactions, func(tx *entity.Transaction) bool {
		return tx.Type == txType
	}), nil
}

// ── User ─────────────────────────────────────────────────────────────────────

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct{ s *Store }

// Create asigna ID y persiste.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = newID()
	put(r.s, r.s.users, u.ID, *u)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return get(r.s, r.s.users, id), nil
}

// List devuelve todos los usuarios.
func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	return filter(r.s, r.s.users, nil), nil
}

// Save inserta o reemplaza por ID.
func (r *UserRepo) Save(_ context.Context, u *entity.User) error {
	if u.ID == "" {
		return domain.ErrInvalidInput
	}
	put(r.s, r.s.users, u.ID, *u)
	return nil
}

// Delete elimina por ID (no-op si no existe).
func (r *UserRepo) Delete(_ context.Context, id string) error {
	del(r.s, r.s.users, id)
	return nil
}

// GetByUsername coincidencia exacta.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.first(func(u *entity.User) bool { return u.Username == username }), nil
}

// GetByEmail coincidencia exacta.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.first(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r *UserRepo) first(match func(*entity.User) bool) *entity.User {
	list := filter(r.s, r.s.users, match)
	if len(list) == 0 {
		return nil
	}
	return list[0]
}
