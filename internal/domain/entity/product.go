package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo con su existencia actual.
// Quantity no se ajusta al registrar transacciones; ver inventory.RegisterMovementUseCase.
type Product struct {
	ID          string
	Name        string
	SKU         string // único por catálogo (no se fuerza)
	Description string
	Price       decimal.Decimal
	Quantity    int
	LocationID  string // referencia a Location, no validada
	Category    string
	Threshold   int // existencia mínima propia del producto
}

// IsLowStock indica si la existencia está en o bajo el umbral propio del producto.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.Threshold
}

// StockValue devuelve Price × Quantity.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
