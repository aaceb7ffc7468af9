package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
)

func TestLocationRepo_CopiaAlGuardarYLeer(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Locations()

	loc := &entity.Location{Name: "Central", Type: entity.LocationTypeWarehouse}
	require.NoError(t, repo.Create(ctx, loc))
	require.NotEmpty(t, loc.ID, "Create debe asignar ID")

	loc.Name = "mutado fuera del repo"
	got, err := repo.GetByID(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Central", got.Name, "el almacén no comparte punteros con el llamador")

	got.Name = "mutado tras leer"
	again, _ := repo.GetByID(ctx, loc.ID)
	assert.Equal(t, "Central", again.Name)
}

func TestLocationRepo_SaveSinIDFalla(t *testing.T) {
	err := memory.NewStore().Locations().Save(context.Background(), &entity.Location{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductRepo_AdjustQuantity(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	p := &entity.Product{Name: "Widget", Quantity: 5}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.AdjustQuantity(ctx, p.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)

	_, err = repo.AdjustQuantity(ctx, p.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, err = repo.AdjustQuantity(ctx, p.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity, "delta cero no modifica ni falla")

	got, err = repo.AdjustQuantity(ctx, p.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)

	missing, err := repo.AdjustQuantity(ctx, "no-existe", 1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_AdjustQuantityConcurrente(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	p := &entity.Product{Name: "Widget", Quantity: 50}
	require.NoError(t, repo.Create(ctx, p))

	var wg sync.WaitGroup
	var mu sync.Mutex
	rejected := 0
	for i := 0; i < 80; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.AdjustQuantity(ctx, p.ID, -1); err != nil {
				mu.Lock()
				rejected++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	got, _ := repo.GetByID(ctx, p.ID)
	assert.Equal(t, 0, got.Quantity, "nunca queda negativa")
	assert.Equal(t, 30, rejected)
}

func TestUserRepo_BusquedasExactas(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Users()
	u := &entity.User{Username: "ana", Email: "ana@example.com"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	got, err = repo.GetByUsername(ctx, "an")
	require.NoError(t, err)
	assert.Nil(t, got, "no hay coincidencia parcial")

	got, err = repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestTransactionRepo_Filtros(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Transactions()
	require.NoError(t, repo.Create(ctx, &entity.Transaction{ProductID: "p1", UserID: "u1", Type: entity.TransactionTypeIN, Quantity: 1}))
	require.NoError(t, repo.Create(ctx, &entity.Transaction{ProductID: "p1", UserID: "u2", Type: entity.TransactionTypeOUT, Quantity: 1}))
	require.NoError(t, repo.Create(ctx, &entity.Transaction{ProductID: "p2", UserID: "u1", Type: entity.TransactionTypeIN, Quantity: 1}))

	byProduct, _ := repo.ListByProduct(ctx, "p1")
	assert.Len(t, byProduct, 2)
	byUser, _ := repo.ListByUser(ctx, "u1")
	assert.Len(t, byUser, 2)
	in, _ := repo.ListByType(ctx, entity.TransactionTypeIN)
	assert.Len(t, in, 2)

	require.NoError(t, repo.Delete(ctx, "no-existe"))
	all, _ := repo.List(ctx)
	assert.Len(t, all, 3)
}
