package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/inventory-tracker/internal/domain"
)

// LocationType clasifica una ubicación de almacenamiento.
type LocationType string

// Tipos de ubicación reconocidos.
const (
	LocationTypeWarehouse          LocationType = "warehouse"
	LocationTypeStore              LocationType = "store"
	LocationTypeDistributionCenter LocationType = "distribution_center"
	LocationTypeOffice             LocationType = "office"
)

// ParseLocationType valida el tipo recibido como texto libre. Acepta mayúsculas/minúsculas
// y espacios alrededor; cualquier otro valor devuelve ErrInvalidLocationType.
func ParseLocationType(s string) (LocationType, error) {
	switch t := LocationType(strings.ToLower(strings.TrimSpace(s))); t {
	case LocationTypeWarehouse, LocationTypeStore, LocationTypeDistributionCenter, LocationTypeOffice:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidLocationType, s)
}

// Location representa una bodega, tienda u otro sitio donde se almacena inventario.
// Los productos la referencian por ID (sin integridad referencial).
type Location struct {
	ID          string
	Name        string
	Address     string
	Type        LocationType
	ContactInfo string
}
