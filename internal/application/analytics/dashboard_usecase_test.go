package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/analytics"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	products := store.Products()
	add := func(name, category, price string, qty, threshold int) {
		require.NoError(t, products.Create(ctx, &entity.Product{
			Name: name, Category: category, Price: decimal.RequireFromString(price), Quantity: qty, Threshold: threshold,
		}))
	}
	add("Tornillo", "Ferretería", "0.50", 100, 20)
	add("Tuerca", "Ferretería", "0.25", 8, 0) // sin umbral → 10 por defecto, stock bajo
	add("Martillo", "Herramientas", "12.00", 3, 5)
	add("Sin categoría", "", "1.00", 50, 1)

	txs := store.Transactions()
	require.NoError(t, txs.Create(ctx, &entity.Transaction{Type: entity.TransactionTypeIN, Quantity: 1, Timestamp: time.Now().Add(-time.Hour)}))
	require.NoError(t, txs.Create(ctx, &entity.Transaction{Type: entity.TransactionTypeOUT, Quantity: 1, Timestamp: time.Now().Add(-30 * 24 * time.Hour)}))

	out, err := analytics.NewDashboardUseCase(products, txs).Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, out.TotalProducts)
	assert.Equal(t, 2, out.LowStockItems)
	assert.Len(t, out.LowStockProducts, 2)
	// 50 + 2 + 36 + 50
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("138")), out.TotalValue.String())
	assert.Equal(t, 2, out.Categories)
	require.Len(t, out.TopCategories, 2)
	assert.Equal(t, "Ferretería", out.TopCategories[0].Name)
	assert.Equal(t, 2, out.TopCategories[0].Count)
	assert.True(t, out.TopCategories[0].Value.Equal(decimal.RequireFromString("52")))
	assert.Equal(t, 1, out.RecentTransactions)
}

func TestDashboardSummary_Vacio(t *testing.T) {
	store := memory.NewStore()
	out, err := analytics.NewDashboardUseCase(store.Products(), store.Transactions()).Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.TotalProducts)
	assert.True(t, out.TotalValue.IsZero())
	assert.Empty(t, out.TopCategories)
}
