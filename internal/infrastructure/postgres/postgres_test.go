package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-tracker/pkg/config"
)

// openTestPool se conecta a INVENTORY_TEST_DATABASE_URL; sin ella el test se omite.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("INVENTORY_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("INVENTORY_TEST_DATABASE_URL no definida")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE locations, products, transactions, users`)
	require.NoError(t, err)
	return pool
}

// ─── Location ────────────────────────────────────────────────────────────────

func TestLocationRepo_CRUD(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repo := postgres.NewLocationRepository(pool)

	loc := &entity.Location{Name: "Bodega Norte", Type: entity.LocationTypeWarehouse}
	require.NoError(t, repo.Create(ctx, loc))
	require.NotEmpty(t, loc.ID)

	loc.Address = "Km 5"
	require.NoError(t, repo.Save(ctx, loc))

	got, err := repo.GetByID(ctx, loc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Km 5", got.Address)

	// upsert con ID nuevo
	require.NoError(t, repo.Save(ctx, &entity.Location{ID: "fijo", Name: "Tienda"}))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, repo.Delete(ctx, loc.ID))
	require.NoError(t, repo.Delete(ctx, loc.ID), "borrar dos veces no falla")
	got, err = repo.GetByID(ctx, loc.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ─── Product ─────────────────────────────────────────────────────────────────

func TestProductRepo_QueriesAndAdjust(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repo := postgres.NewProductRepository(pool)

	widget := &entity.Product{Name: "Widget", Price: decimal.RequireFromString("9.99"), Quantity: 3, Category: "A"}
	gadget := &entity.Product{Name: "widget pro", Price: decimal.NewFromInt(20), Quantity: 30, Category: "B"}
	require.NoError(t, repo.Create(ctx, widget))
	require.NoError(t, repo.Create(ctx, gadget))

	found, err := repo.SearchByName(ctx, "Widget")
	require.NoError(t, err)
	require.Len(t, found, 1, "la búsqueda distingue mayúsculas")
	assert.True(t, found[0].Price.Equal(decimal.RequireFromString("9.99")))

	low, err := repo.ListQuantityBelow(ctx, 10)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, widget.ID, low[0].ID)

	byCat, err := repo.ListByCategory(ctx, "B")
	require.NoError(t, err)
	assert.Len(t, byCat, 1)

	p, err := repo.AdjustQuantity(ctx, widget.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity)

	_, err = repo.AdjustQuantity(ctx, widget.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, err = repo.AdjustQuantity(ctx, "no-existe", 1)
	require.NoError(t, err)
	assert.Nil(t, p)
}

// ─── Transaction ─────────────────────────────────────────────────────────────

func TestTransactionRepo_Filters(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repo := postgres.NewTransactionRepository(pool)
	ts := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	in := &entity.Transaction{ProductID: "p1", Type: entity.TransactionTypeIN, Quantity: 5, Timestamp: ts, UserID: "u1"}
	out := &entity.Transaction{ProductID: "p1", Type: entity.TransactionTypeOUT, Quantity: 2, Timestamp: ts, UserID: "u2"}
	require.NoError(t, repo.Create(ctx, in))
	require.NoError(t, repo.Create(ctx, out))

	byProduct, err := repo.ListByProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	byUser, err := repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, entity.TransactionTypeOUT, byUser[0].Type)

	got, err := repo.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.True(t, ts.Equal(got.Timestamp))
}

// ─── User ────────────────────────────────────────────────────────────────────

func TestUserRepo_Uniqueness(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repo := postgres.NewUserRepository(pool)
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "ana", PasswordHash: "h", Email: "ana@example.com", CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, &entity.User{Username: "sin-email-1", PasswordHash: "h", CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, &entity.User{Username: "sin-email-2", PasswordHash: "h", CreatedAt: now}), "email vacío no es único")

	err := repo.Create(ctx, &entity.User{Username: "ana", PasswordHash: "h", CreatedAt: now})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	err = repo.Create(ctx, &entity.User{Username: "otra", PasswordHash: "h", Email: "ana@example.com", CreatedAt: now})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	u, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "ana", u.Username)
}
