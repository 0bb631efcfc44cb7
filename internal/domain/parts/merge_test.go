package parts_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/parts"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del resolver de fusión de campos. Merge es una función pura, así que
// estos tests fijan con precisión la precedencia por campo: si alguien cambia
// inadvertidamente una regla (stock sumado, punto de reorden por máximo,
// identidad del sobreviviente intacta), fallan de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

var mergeNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func buildExisting() entity.Part {
	uc := decimal.NewFromFloat(12.50)
	return entity.Part{
		ID:           "part-1",
		CompanyID:    "org-1",
		SKU:          "FLT-001",
		LegacyID:     "L-99",
		Name:         "Filtro de aceite",
		Description:  "Para compresor",
		StockLevel:   5,
		ReorderPoint: 2,
		UnitCost:     &uc,
		Barcode:      "750123",
		Location:     "Bodega A",
		SupplierID:   "sup-1",
		CreatedAt:    mergeNow.Add(-48 * time.Hour),
		UpdatedAt:    mergeNow.Add(-24 * time.Hour),
	}
}

func TestMerge_StockSeSuma(t *testing.T) {
	merged := parts.Merge(buildExisting(), parts.Input{StockLevel: 3}, mergeNow)
	assert.Equal(t, 8, merged.StockLevel,
		"El stock debe sumarse (5+3): la fusión representa el mismo stock físico registrado dos veces")
}

func TestMerge_ReorderPointPorMaximo(t *testing.T) {
	mayor := parts.Merge(buildExisting(), parts.Input{ReorderPoint: 7}, mergeNow)
	assert.Equal(t, 7, mayor.ReorderPoint, "Gana el punto de reorden entrante si es mayor")

	menor := parts.Merge(buildExisting(), parts.Input{ReorderPoint: 1}, mergeNow)
	assert.Equal(t, 2, menor.ReorderPoint, "Se conserva el existente si el entrante es menor")
}

func TestMerge_IdentidadDelSobrevivienteIntacta(t *testing.T) {
	existing := buildExisting()
	merged := parts.Merge(existing, parts.Input{Name: "Otro nombre", StockLevel: 1}, mergeNow)

	assert.Equal(t, existing.ID, merged.ID, "El ID nunca cambia en una fusión")
	assert.Equal(t, existing.CompanyID, merged.CompanyID, "La organización nunca cambia")
	assert.Equal(t, existing.CreatedAt, merged.CreatedAt, "CreatedAt se conserva (desempate de sobreviviente)")
	assert.Equal(t, mergeNow, merged.UpdatedAt, "UpdatedAt refleja la fusión")
}

func TestMerge_NombreYDescripcionGananSiNoVacios(t *testing.T) {
	merged := parts.Merge(buildExisting(), parts.Input{
		Name:        "Filtro de aceite premium",
		Description: "Para compresor industrial",
	}, mergeNow)
	assert.Equal(t, "Filtro de aceite premium", merged.Name)
	assert.Equal(t, "Para compresor industrial", merged.Description)
}

func TestMerge_VacioOEspaciosNoSobrescriben(t *testing.T) {
	merged := parts.Merge(buildExisting(), parts.Input{
		Name:        "   ",
		Description: "",
		SKU:         "  ",
	}, mergeNow)
	assert.Equal(t, "Filtro de aceite", merged.Name, "Nombre solo-espacios no sobrescribe")
	assert.Equal(t, "Para compresor", merged.Description, "Descripción vacía no sobrescribe")
	assert.Equal(t, "FLT-001", merged.SKU, "SKU solo-espacios no sobrescribe")
}

func TestMerge_LegacyIDConservaElExistente(t *testing.T) {
	conLegacy := parts.Merge(buildExisting(), parts.Input{LegacyID: "L-777"}, mergeNow)
	assert.Equal(t, "L-99", conLegacy.LegacyID,
		"Si el existente ya tiene LegacyID se conserva, aunque llegue otro")

	sinLegacy := buildExisting()
	sinLegacy.LegacyID = ""
	adoptado := parts.Merge(sinLegacy, parts.Input{LegacyID: "L-777"}, mergeNow)
	assert.Equal(t, "L-777", adoptado.LegacyID, "Si el existente no tiene LegacyID se adopta el entrante")
}

func TestMerge_CostosGananSiPresentes(t *testing.T) {
	nuevoCosto := decimal.NewFromFloat(15.75)
	merged := parts.Merge(buildExisting(), parts.Input{UnitCost: &nuevoCosto}, mergeNow)
	assert.True(t, nuevoCosto.Equal(*merged.UnitCost), "El costo unitario entrante sobrescribe")

	sinCosto := parts.Merge(buildExisting(), parts.Input{}, mergeNow)
	assert.True(t, decimal.NewFromFloat(12.50).Equal(*sinCosto.UnitCost),
		"Costo ausente (nil) conserva el existente")
}

func TestMerge_CamposOpcionalesGananSiNoVacios(t *testing.T) {
	merged := parts.Merge(buildExisting(), parts.Input{
		Barcode:    "750999",
		Location:   "Bodega B",
		SupplierID: "sup-2",
	}, mergeNow)
	assert.Equal(t, "750999", merged.Barcode)
	assert.Equal(t, "Bodega B", merged.Location)
	assert.Equal(t, "sup-2", merged.SupplierID)

	vacios := parts.Merge(buildExisting(), parts.Input{}, mergeNow)
	assert.Equal(t, "750123", vacios.Barcode, "Barcode vacío no borra el existente")
	assert.Equal(t, "Bodega A", vacios.Location)
	assert.Equal(t, "sup-1", vacios.SupplierID)
}

// TestMerge_NoPierdeInformacion: ningún campo poblado del existente termina
// vacío tras fusionar con un entrante mínimo.
func TestMerge_NoPierdeInformacion(t *testing.T) {
	merged := parts.Merge(buildExisting(), parts.Input{Name: "Filtro"}, mergeNow)

	assert.NotEmpty(t, merged.SKU)
	assert.NotEmpty(t, merged.LegacyID)
	assert.NotEmpty(t, merged.Description)
	assert.NotNil(t, merged.UnitCost)
	assert.NotEmpty(t, merged.Barcode)
	assert.NotEmpty(t, merged.Location)
	assert.NotEmpty(t, merged.SupplierID)
	assert.Equal(t, 5, merged.StockLevel, "Stock entrante 0 suma 0, nunca resta")
}

// ── claves de identidad ───────────────────────────────────────────────────────

func TestSKUKey_Recorte(t *testing.T) {
	assert.Equal(t, "FLT-001", parts.SKUKey("  FLT-001  "))
	assert.Equal(t, "", parts.SKUKey("   "), "SKU solo-espacios se normaliza a ausente")
}

func TestNameDescriptionKey_SeparadorEvitaColisiones(t *testing.T) {
	assert.NotEqual(t,
		parts.NameDescriptionKey("ab", "c"),
		parts.NameDescriptionKey("a", "bc"),
		"La clave compuesta no debe colisionar entre (ab,c) y (a,bc)")
	assert.Equal(t,
		parts.NameDescriptionKey("  Filtro ", "x"),
		parts.NameDescriptionKey("Filtro", "x"),
		"El nombre se compara recortado")
}
