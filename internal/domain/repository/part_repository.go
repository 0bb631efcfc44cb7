package repository

import (
	"context"

	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
)

// PartRepository define el puerto de persistencia para Part (DIP).
// Es el "record store" que consume el motor de deduplicación: búsquedas exactas por
// campo dentro de una organización, listado ordenado por creación, y CRUD por ID.
// Los métodos GetBy* devuelven (nil, nil) si no hay coincidencia.
// No se asume ninguna garantía transaccional multi-sentencia.
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id string) (*entity.Part, error)

	// GetByCompanyAndSKU busca por SKU recortado (btrim). sku debe llegar ya recortado
	// y no vacío; los registros con SKU vacío nunca coinciden.
	GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Part, error)

	// GetByCompanyAndLegacyID busca por el identificador heredado exacto.
	GetByCompanyAndLegacyID(ctx context.Context, companyID, legacyID string) (*entity.Part, error)

	// GetByCompanyNameAndDescription busca por nombre recortado y descripción
	// normalizada a vacío (NULL ≡ "").
	GetByCompanyNameAndDescription(ctx context.Context, companyID, name, description string) (*entity.Part, error)

	// ListByCompany lista con paginación (para el shell CRUD).
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Part, error)

	// ListAllByCompany devuelve TODOS los repuestos de la organización ordenados por
	// created_at ascendente (el más antiguo primero). Alimenta al compactador: el
	// orden establece la prioridad de sobreviviente.
	ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Part, error)

	Update(ctx context.Context, part *entity.Part) error
	Delete(ctx context.Context, id string) error
}
