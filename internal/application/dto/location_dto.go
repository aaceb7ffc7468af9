package dto

// LocationRequest entrada para crear o reemplazar una ubicación. Type se valida en el caso de uso.
// Los nombres JSON siguen los documentos de la colección locations.
type LocationRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Type        string `json:"type"` // warehouse, store, distribution_center, office
	ContactInfo string `json:"contactInfo"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Type        string `json:"type"`
	ContactInfo string `json:"contactInfo"`
}
