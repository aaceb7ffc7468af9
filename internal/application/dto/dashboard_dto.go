package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO KPIs del inventario.
type DashboardSummaryDTO struct {
	TotalProducts      int               `json:"totalProducts"`
	LowStockItems      int               `json:"lowStockItems"`
	TotalValue         decimal.Decimal   `json:"totalValue"` // Σ price × quantity
	Categories         int               `json:"categories"`
	TopCategories      []CategoryStatDTO `json:"topCategories"`
	LowStockProducts   []ProductResponse `json:"lowStockProducts"`   // primeros 5
	RecentTransactions int               `json:"recentTransactions"` // últimos 7 días
}

// CategoryStatDTO resumen de una categoría para el dashboard.
type CategoryStatDTO struct {
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}
