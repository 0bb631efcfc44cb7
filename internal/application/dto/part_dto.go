package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartInputRequest entrada para crear-o-fusionar un repuesto (upsert e importación).
// SKU y LegacyID son opcionales; los costos ausentes se dejan en null, no en cero.
type PartInputRequest struct {
	SKU          string           `json:"sku" validate:"max=100"`
	LegacyID     string           `json:"legacy_id" validate:"max=100"`
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Description  string           `json:"description"`
	StockLevel   int              `json:"stock_level" validate:"min=0"`
	ReorderPoint int              `json:"reorder_point" validate:"min=0"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	TotalCost    *decimal.Decimal `json:"total_cost"`
	Barcode      string           `json:"barcode"`
	Location     string           `json:"location"`
	SupplierID   string           `json:"supplier_id"`
}

// UpdatePartRequest entrada para actualización ordinaria de campos (fuera del motor de fusión).
type UpdatePartRequest struct {
	SKU          *string          `json:"sku"`
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	StockLevel   *int             `json:"stock_level" validate:"omitempty,min=0"`
	ReorderPoint *int             `json:"reorder_point" validate:"omitempty,min=0"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	TotalCost    *decimal.Decimal `json:"total_cost"`
	Barcode      *string          `json:"barcode"`
	Location     *string          `json:"location"`
	SupplierID   *string          `json:"supplier_id"`
}

// PartResponse salida de un repuesto. Supplier se expande en el handler si aplica.
type PartResponse struct {
	ID           string            `json:"id"`
	CompanyID    string            `json:"company_id"`
	SKU          string            `json:"sku"`
	LegacyID     string            `json:"legacy_id,omitempty"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	StockLevel   int               `json:"stock_level"`
	ReorderPoint int               `json:"reorder_point"`
	UnitCost     *decimal.Decimal  `json:"unit_cost,omitempty"`
	TotalCost    *decimal.Decimal  `json:"total_cost,omitempty"`
	Barcode      string            `json:"barcode,omitempty"`
	Location     string            `json:"location,omitempty"`
	SupplierID   string            `json:"supplier_id,omitempty"`
	Supplier     *SupplierResponse `json:"supplier,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// PartUpsertResponse resultado de crear-o-fusionar: el repuesto persistido y la acción tomada.
type PartUpsertResponse struct {
	Action string       `json:"action"` // "created" | "merged"
	Part   PartResponse `json:"part"`
}

// PartListResponse lista paginada de repuestos.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ImportPartsRequest lote ordenado de repuestos a importar.
type ImportPartsRequest struct {
	Items []PartInputRequest `json:"items" validate:"required"`
}

// ImportPartDetail detalle por ítem procesado con éxito.
type ImportPartDetail struct {
	Action string       `json:"action"` // "created" | "merged"
	Part   PartResponse `json:"part"`
}

// ImportPartFailure detalle por ítem fallido (aislado, no aborta el lote).
type ImportPartFailure struct {
	Index  int    `json:"index"` // posición en la secuencia de entrada
	Reason string `json:"reason"`
}

// ImportPartsResponse resumen del lote. Created+Merged+Failed == Total.
type ImportPartsResponse struct {
	Total    int                 `json:"total"`
	Created  int                 `json:"created"`
	Merged   int                 `json:"merged"`
	Failed   int                 `json:"failed"`
	Details  []ImportPartDetail  `json:"details"`
	Failures []ImportPartFailure `json:"failures,omitempty"`
}

// CompactPartsResponse resumen de una compactación de dataset.
type CompactPartsResponse struct {
	GroupsProcessed int `json:"groups_processed"`
	PartsMerged     int `json:"parts_merged"`
	PartsDeleted    int `json:"parts_deleted"`
	Errors          int `json:"errors"`
}
