package entity

import "time"

// Organization representa una organización/tenant del sistema de mantenimiento.
// Todas las operaciones del motor de deduplicación están acotadas a una organización.
type Organization struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
