package parts

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
)

// Input son los campos entrantes de un repuesto para crear o fusionar
// (todos los campos de Part excepto ID, CompanyID y timestamps, que asigna el sistema).
type Input struct {
	SKU          string
	LegacyID     string
	Name         string
	Description  string
	StockLevel   int
	ReorderPoint int
	UnitCost     *decimal.Decimal
	TotalCost    *decimal.Decimal
	Barcode      string
	Location     string
	SupplierID   string
}

// Merge combina un repuesto existente con los campos entrantes (servicio de dominio).
// Función pura y total: no hace I/O y acepta cualquier entrada bien tipada.
//
// Precedencia por campo:
//   - Name, Description, SKU: gana el entrante si no está vacío.
//   - StockLevel: suma (la fusión representa el mismo stock físico registrado dos veces).
//   - ReorderPoint: máximo de ambos.
//   - UnitCost, TotalCost, Barcode, Location, SupplierID: gana el entrante si está presente.
//   - LegacyID: se conserva el existente si lo tiene; si no, el entrante.
//   - ID, CompanyID, CreatedAt: siempre del existente (la identidad del sobreviviente no cambia).
//   - UpdatedAt: now.
func Merge(existing entity.Part, in Input, now time.Time) entity.Part {
	merged := existing

	if strings.TrimSpace(in.Name) != "" {
		merged.Name = in.Name
	}
	if strings.TrimSpace(in.Description) != "" {
		merged.Description = in.Description
	}
	if SKUKey(in.SKU) != "" {
		merged.SKU = in.SKU
	}

	merged.StockLevel = existing.StockLevel + in.StockLevel
	if in.ReorderPoint > merged.ReorderPoint {
		merged.ReorderPoint = in.ReorderPoint
	}

	if in.UnitCost != nil {
		merged.UnitCost = in.UnitCost
	}
	if in.TotalCost != nil {
		merged.TotalCost = in.TotalCost
	}
	if in.Barcode != "" {
		merged.Barcode = in.Barcode
	}
	if in.Location != "" {
		merged.Location = in.Location
	}
	if in.SupplierID != "" {
		merged.SupplierID = in.SupplierID
	}
	if existing.LegacyID == "" {
		merged.LegacyID = in.LegacyID
	}

	merged.UpdatedAt = now
	return merged
}

// InputFromPart convierte un Part existente en Input, para plegar duplicados
// durante la compactación (fusiones N a 1).
func InputFromPart(p *entity.Part) Input {
	return Input{
		SKU:          p.SKU,
		LegacyID:     p.LegacyID,
		Name:         p.Name,
		Description:  p.Description,
		StockLevel:   p.StockLevel,
		ReorderPoint: p.ReorderPoint,
		UnitCost:     p.UnitCost,
		TotalCost:    p.TotalCost,
		Barcode:      p.Barcode,
		Location:     p.Location,
		SupplierID:   p.SupplierID,
	}
}

// SKUKey normaliza un SKU para comparación de identidad: recorte de espacios.
// Devuelve "" si el SKU está ausente (nunca participa en el matching por SKU).
func SKUKey(sku string) string {
	return strings.TrimSpace(sku)
}

// NameDescriptionKey construye la clave débil de identidad: nombre recortado más
// descripción normalizada a vacío. El separador NUL evita colisiones entre
// ("ab","c") y ("a","bc").
func NameDescriptionKey(name, description string) string {
	return strings.TrimSpace(name) + "\x00" + description
}
