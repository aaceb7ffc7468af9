package dto

// ReplenishmentSuggestionDTO producto en o bajo su umbral propio, con la cantidad sugerida a pedir.
type ReplenishmentSuggestionDTO struct {
	ProductID         string `json:"productId"`
	SKU               string `json:"sku"`
	ProductName       string `json:"productName"`
	LocationID        string `json:"locationId"`
	CurrentStock      int    `json:"currentStock"`
	Threshold         int    `json:"threshold"`
	Shortfall         int    `json:"shortfall"`         // threshold - currentStock (mínimo 0)
	SuggestedOrderQty int    `json:"suggestedOrderQty"` // lleva la existencia al doble del umbral
}

// ReconciliationDTO compara la existencia guardada con el efecto neto de las transacciones del producto.
type ReconciliationDTO struct {
	ProductID        string `json:"productId"`
	SKU              string `json:"sku"`
	ProductName      string `json:"productName"`
	StoredQuantity   int    `json:"storedQuantity"`
	TransactionNet   int    `json:"transactionNet"` // Σ IN - Σ OUT
	TransactionCount int    `json:"transactionCount"`
	Difference       int    `json:"difference"` // storedQuantity - transactionNet
	InSync           bool   `json:"inSync"`
}
