package parts

import (
	"context"
	"strings"

	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	domparts "github.com/tu-usuario/mantenimiento-pro/internal/domain/parts"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/repository"
)

// DuplicateMatcher decide si un repuesto entrante "es el mismo" que uno existente.
// Aplica tres niveles de identidad en orden fijo, con corto circuito: el primero
// que encuentra algo gana y no se evalúan los niveles más débiles.
//
//  1. SKU exacto (recortado): la clave de negocio con significado externo; autoritativa.
//  2. LegacyID exacto: existe para re-enlazar registros del sistema anterior en importaciones.
//  3. Nombre + descripción: heurística para datos capturados a mano sin SKU ni LegacyID.
//
// El matching nunca cruza organizaciones. Los errores del store se propagan tal cual.
type DuplicateMatcher struct {
	repo repository.PartRepository
}

// NewDuplicateMatcher construye el matcher con el puerto de persistencia.
func NewDuplicateMatcher(repo repository.PartRepository) *DuplicateMatcher {
	return &DuplicateMatcher{repo: repo}
}

// FindDuplicate devuelve el único registro existente juzgado como "el mismo" repuesto,
// o (nil, nil) si el candidato es nuevo.
func (m *DuplicateMatcher) FindDuplicate(ctx context.Context, companyID string, in domparts.Input) (*entity.Part, error) {
	// Nivel 1: SKU exacto. Si hay coincidencia se devuelve de inmediato,
	// aunque un nivel más débil apuntara a otro registro.
	if sku := domparts.SKUKey(in.SKU); sku != "" {
		found, err := m.repo.GetByCompanyAndSKU(ctx, companyID, sku)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}

	// Nivel 2: identificador heredado.
	if in.LegacyID != "" {
		found, err := m.repo.GetByCompanyAndLegacyID(ctx, companyID, in.LegacyID)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}

	// Nivel 3: nombre recortado + descripción (ausente ≡ "").
	return m.repo.GetByCompanyNameAndDescription(ctx, companyID, strings.TrimSpace(in.Name), in.Description)
}
