// Package analytics contiene los casos de uso de resumen del inventario (dashboard).
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

const (
	dashboardTopCategories   = 5  // categorías en el widget
	dashboardLowStockPreview = 5  // productos con stock bajo mostrados
	defaultLowStockThreshold = 10 // umbral cuando el producto no define uno
	recentTransactionsWindow = 7 * 24 * time.Hour
)

// DashboardUseCase genera el resumen del inventario.
//
// Fuente de datos: repositorios de productos y transacciones (solo lectura).
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, txRepo: txRepo, now: time.Now}
}

// Summary construye el DashboardSummaryDTO.
//
// Dos lecturas en paralelo:
//  1. productos   → totales, stock bajo, valor y categorías
//  2. transacciones → cantidad registrada en los últimos 7 días
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var (
		products []*entity.Product
		txs      []*entity.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = uc.productRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = uc.txRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		TotalProducts:    len(products),
		TotalValue:       decimal.Zero,
		TopCategories:    []dto.CategoryStatDTO{},
		LowStockProducts: []dto.ProductResponse{},
	}

	byCategory := make(map[string]*dto.CategoryStatDTO)
	for _, p := range products {
		value := p.StockValue()
		out.TotalValue = out.TotalValue.Add(value)

		threshold := p.Threshold
		if threshold == 0 {
			threshold = defaultLowStockThreshold
		}
		if p.Quantity <= threshold {
			out.LowStockItems++
			if len(out.LowStockProducts) < dashboardLowStockPreview {
				out.LowStockProducts = append(out.LowStockProducts, *usecase.ToProductResponse(p))
			}
		}

		if p.Category == "" {
			continue
		}
		stat, ok := byCategory[p.Category]
		if !ok {
			stat = &dto.CategoryStatDTO{Name: p.Category, Value: decimal.Zero}
			byCategory[p.Category] = stat
		}
		stat.Count++
		stat.Value = stat.Value.Add(value)
	}
	out.Categories = len(byCategory)

	for _, stat := range byCategory {
		out.TopCategories = append(out.TopCategories, *stat)
	}
	sort.Slice(out.TopCategories, func(i, j int) bool {
		a, b := out.TopCategories[i], out.TopCategories[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})
	if len(out.TopCategories) > dashboardTopCategories {
		out.TopCategories = out.TopCategories[:dashboardTopCategories]
	}

	since := uc.now().Add(-recentTransactionsWindow)
	for _, tx := range txs {
		if !tx.Timestamp.Before(since) {
			out.RecentTransactions++
		}
	}
	return out, nil
}
