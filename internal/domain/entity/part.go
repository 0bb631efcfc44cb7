package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del inventario de mantenimiento.
// SKU es el código de negocio por organización pero NO tiene constraint único en la
// tabla: la unicidad es una propiedad emergente que mantiene el motor de deduplicación.
// LegacyID es el identificador del sistema anterior, usado durante importaciones.
type Part struct {
	ID           string
	CompanyID    string // organización/tenant; el matching nunca cruza organizaciones
	SKU          string // vacío = sin SKU
	LegacyID     string // vacío = sin ID heredado
	Name         string
	Description  string
	StockLevel   int // cantidad en mano; se SUMA al fusionar, nunca se pierde
	ReorderPoint int // punto de reorden; al fusionar gana el máximo (más conservador)
	UnitCost     *decimal.Decimal // nil = sin costo registrado
	TotalCost    *decimal.Decimal
	Barcode      string
	Location     string
	SupplierID   string
	CreatedAt    time.Time // inmutable; desempate de sobreviviente (el más antiguo gana)
	UpdatedAt    time.Time
}
