package dto

// CatalogRequest contenido de un catálogo de carga inicial.
type CatalogRequest struct {
	Locations []LocationRequest
	Products  []CatalogProduct
}

// CatalogProduct producto del catálogo; LocationName se resuelve contra las ubicaciones por nombre.
type CatalogProduct struct {
	Product      ProductRequest
	LocationName string
}

// SeedResult conteo de lo creado por una carga de catálogo.
type SeedResult struct {
	LocationsCreated int      `json:"locationsCreated"`
	LocationsReused  int      `json:"locationsReused"`
	ProductsCreated  int      `json:"productsCreated"`
	Unresolved       []string `json:"unresolved,omitempty"` // SKUs con ubicación desconocida
}
