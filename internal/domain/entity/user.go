package entity

import "time"

// Roles sugeridos para User (el campo es texto libre).
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
	RoleViewer  = "VIEWER"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt; nunca se expone en respuestas
	Role         string
	Email        string
	CreatedAt    time.Time
}
