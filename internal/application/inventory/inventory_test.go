package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
)

// failingTxRepo simula una falla del almacén al guardar la transacción.
type failingTxRepo struct {
	*memory.TransactionRepo
}

var errStore = errors.New("store caído")

func (failingTxRepo) Create(context.Context, *entity.Transaction) error { return errStore }

// cancelAwareProducts falla con ctx.Err() si el contexto ya está cancelado, como los drivers reales.
type cancelAwareProducts struct {
	*memory.ProductRepo
}

func (r cancelAwareProducts) AdjustQuantity(ctx context.Context, id string, delta int) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.ProductRepo.AdjustQuantity(ctx, id, delta)
}

// cancellingTxRepo cancela el contexto del llamador durante el guardado y falla.
type cancellingTxRepo struct {
	*memory.TransactionRepo
	cancel context.CancelFunc
}

func (r cancellingTxRepo) Create(ctx context.Context, _ *entity.Transaction) error {
	r.cancel()
	return ctx.Err()
}

func seedProduct(t *testing.T, store *memory.Store, qty, threshold int) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: "Widget", SKU: "W-1", Price: decimal.RequireFromString("9.99"), Quantity: qty, Threshold: threshold}
	require.NoError(t, store.Products().Create(context.Background(), p))
	return p
}

// ── RegisterMovement ──────────────────────────────────────────────────────────

func TestRegisterMovement_SalidaDescuentaExistencia(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	p := seedProduct(t, store, 10, 5)
	uc := inventory.NewRegisterMovementUseCase(store.Products(), store.Transactions())

	out, err := uc.Register(ctx, dto.TransactionRequest{ProductID: p.ID, Type: "OUT", Quantity: 3, UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 7, out.Product.Quantity)
	assert.NotEmpty(t, out.Transaction.ID)

	txs, _ := store.Transactions().ListByProduct(ctx, p.ID)
	assert.Len(t, txs, 1)
}

func TestRegisterMovement_EntradaSumaExistencia(t *testing.T) {
	store := memory.NewStore()
	p := seedProduct(t, store, 10, 5)
	uc := inventory.NewRegisterMovementUseCase(store.Products(), store.Transactions())

	out, err := uc.Register(context.Background(), dto.TransactionRequest{ProductID: p.ID, Type: "IN", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 14, out.Product.Quantity)
}

func TestRegisterMovement_SalidaSinStockNoRegistraNada(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	p := seedProduct(t, store, 2, 5)
	uc := inventory.NewRegisterMovementUseCase(store.Products(), store.Transactions())

	_, err := uc.Register(ctx, dto.TransactionRequest{ProductID: p.ID, Type: "OUT", Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, _ := store.Products().GetByID(ctx, p.ID)
	assert.Equal(t, 2, got.Quantity)
	txs, _ := store.Transactions().List(ctx)
	assert.Empty(t, txs)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewRegisterMovementUseCase(store.Products(), store.Transactions())

	_, err := uc.Register(context.Background(), dto.TransactionRequest{ProductID: "no-existe", Type: "IN", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Register(context.Background(), dto.TransactionRequest{Type: "IN", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_CompensaSiFallaElRegistro(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	p := seedProduct(t, store, 10, 5)
	uc := inventory.NewRegisterMovementUseCase(store.Products(), failingTxRepo{store.Transactions()})

	_, err := uc.Register(ctx, dto.TransactionRequest{ProductID: p.ID, Type: "OUT", Quantity: 4})
	assert.ErrorIs(t, err, errStore)

	got, _ := store.Products().GetByID(ctx, p.ID)
	assert.Equal(t, 10, got.Quantity, "el ajuste se revierte")
}

func TestRegisterMovement_CompensaConContextoCancelado(t *testing.T) {
	store := memory.NewStore()
	p := seedProduct(t, store, 10, 5)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	uc := inventory.NewRegisterMovementUseCase(
		cancelAwareProducts{store.Products()},
		cancellingTxRepo{TransactionRepo: store.Transactions(), cancel: cancel},
	)

	_, err := uc.Register(ctx, dto.TransactionRequest{ProductID: p.ID, Type: "OUT", Quantity: 4})
	require.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, err.Error(), "compensate", "la compensación no debe fallar")

	got, _ := store.Products().GetByID(context.Background(), p.ID)
	assert.Equal(t, 10, got.Quantity, "el ajuste se revierte aunque el contexto esté cancelado")
	txs, _ := store.Transactions().List(context.Background())
	assert.Empty(t, txs)
}

// ── Reconcile ─────────────────────────────────────────────────────────────────

func TestReconcile_ComparaExistenciaConNetoDeTransacciones(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	p := seedProduct(t, store, 0, 5)
	txUC := usecase.NewTransactionUseCase(store.Transactions())
	moves := inventory.NewRegisterMovementUseCase(store.Products(), store.Transactions())
	uc := inventory.NewReconcileUseCase(store.Products(), store.Transactions())

	_, err := moves.Register(ctx, dto.TransactionRequest{ProductID: p.ID, Type: "IN", Quantity: 10})
	require.NoError(t, err)
	_, err = moves.Register(ctx, dto.TransactionRequest{ProductID: p.ID, Type: "OUT", Quantity: 3})
	require.NoError(t, err)

	rec, err := uc.Reconcile(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, rec.InSync, "los movimientos registrados mantienen la existencia al día")
	assert.Equal(t, 7, rec.StoredQuantity)
	assert.Equal(t, 7, rec.TransactionNet)
	assert.Equal(t, 2, rec.TransactionCount)

	// Create solo registra: aparece la diferencia
	_, err = txUC.Create(ctx, dto.TransactionRequest{ProductID: p.ID, Type: "OUT", Quantity: 2})
	require.NoError(t, err)

	rec, err = uc.Reconcile(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, rec.InSync)
	assert.Equal(t, 5, rec.TransactionNet)
	assert.Equal(t, 2, rec.Difference)
}

func TestReconcile_ProductoInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewReconcileUseCase(store.Products(), store.Transactions())

	_, err := uc.Reconcile(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Replenishment ─────────────────────────────────────────────────────────────

func TestReplenishment_UsaElUmbralPropio(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Products()
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "A", Quantity: 5, Threshold: 5}))
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "B", Quantity: 1, Threshold: 10}))
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "C", Quantity: 20, Threshold: 10}))

	list, err := inventory.NewReplenishmentUseCase(repo).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "B", list[0].ProductName, "mayor déficit primero")
	assert.Equal(t, 9, list[0].Shortfall)
	assert.Equal(t, 19, list[0].SuggestedOrderQty)

	assert.Equal(t, "A", list[1].ProductName)
	assert.Equal(t, 0, list[1].Shortfall)
	assert.Equal(t, 5, list[1].SuggestedOrderQty)
}

func TestReplenishment_SinProductos(t *testing.T) {
	list, err := inventory.NewReplenishmentUseCase(memory.NewStore().Products()).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

// ── SeedCatalog ───────────────────────────────────────────────────────────────

func TestSeedCatalog_ResuelveUbicacionesPorNombre(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	locUC := usecase.NewLocationUseCase(store.Locations())
	prodUC := usecase.NewProductUseCase(store.Products())

	// ya existe: se reutiliza
	prev, err := locUC.Create(ctx, dto.LocationRequest{Name: "Tienda Centro", Type: "store"})
	require.NoError(t, err)

	uc := inventory.NewSeedCatalogUseCase(locUC, prodUC)
	res, err := uc.Seed(ctx, dto.CatalogRequest{
		Locations: []dto.LocationRequest{
			{Name: "Bodega Central", Type: "warehouse"},
			{Name: "tienda centro", Type: "store"},
		},
		Products: []dto.CatalogProduct{
			{Product: dto.ProductRequest{Name: "Tornillo", SKU: "T-1", Price: decimal.NewFromInt(1)}, LocationName: "Bodega Central"},
			{Product: dto.ProductRequest{Name: "Tuerca", SKU: "T-2", Price: decimal.NewFromInt(1)}, LocationName: "Tienda Centro"},
			{Product: dto.ProductRequest{Name: "Arandela", SKU: "A-1", Price: decimal.NewFromInt(1)}, LocationName: "Bodega Sur"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.LocationsCreated)
	assert.Equal(t, 1, res.LocationsReused)
	assert.Equal(t, 3, res.ProductsCreated)
	assert.Equal(t, []string{"A-1"}, res.Unresolved)

	found, err := prodUC.SearchByName(ctx, "Tuerca")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, prev.ID, found[0].LocationID)
}

func TestSeedCatalog_TipoInvalidoDetieneLaCarga(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := inventory.NewSeedCatalogUseCase(
		usecase.NewLocationUseCase(store.Locations()),
		usecase.NewProductUseCase(store.Products()),
	)

	_, err := uc.Seed(ctx, dto.CatalogRequest{
		Locations: []dto.LocationRequest{{Name: "Hangar", Type: "hangar"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLocationType)
}
