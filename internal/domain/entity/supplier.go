package entity

import "time"

// Supplier representa un proveedor de repuestos (Part.SupplierID apunta aquí).
type Supplier struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
