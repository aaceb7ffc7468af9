package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o reemplazar un producto (reemplazo completo, sin parches).
type ProductRequest struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	LocationID  string          `json:"locationId"`
	Category    string          `json:"category"`
	Threshold   int             `json:"threshold"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	LocationID  string          `json:"locationId"`
	Category    string          `json:"category"`
	Threshold   int             `json:"threshold"`
}
