package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/mantenimiento-pro/internal/domain"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, company_id, sku, legacy_id, name, coalesce(description, ''), stock_level, reorder_point, unit_cost, total_cost, barcode, location, supplier_id, created_at, updated_at`

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
// Las búsquedas por SKU y nombre aplican en SQL la misma normalización (btrim, NULL ≡ '')
// que el matcher aplica al candidato, para que ambos lados comparen lo mismo.
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste un nuevo repuesto.
func (r *PartRepo) Create(ctx context.Context, part *entity.Part) error {
	query := `
		INSERT INTO parts (id, company_id, sku, legacy_id, name, description, stock_level, reorder_point, unit_cost, total_cost, barcode, location, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		part.ID, part.CompanyID, part.SKU, part.LegacyID, part.Name, part.Description,
		part.StockLevel, part.ReorderPoint, part.UnitCost, part.TotalCost,
		part.Barcode, part.Location, part.SupplierID, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	p, err := r.scanOne(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// GetByCompanyAndSKU busca por SKU recortado dentro de la organización.
// Si hubiera más de una coincidencia (duplicados pendientes de compactar),
// devuelve determinísticamente la más antigua.
func (r *PartRepo) GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts WHERE company_id = $1 AND btrim(sku) = $2 AND btrim(sku) <> ''
		ORDER BY created_at ASC LIMIT 1`
	p, err := r.scanOne(ctx, query, companyID, sku)
	if err != nil {
		return nil, fmt.Errorf("get part by sku: %w", err)
	}
	return p, nil
}

// GetByCompanyAndLegacyID busca por identificador heredado exacto dentro de la organización.
func (r *PartRepo) GetByCompanyAndLegacyID(ctx context.Context, companyID, legacyID string) (*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts WHERE company_id = $1 AND legacy_id = $2 AND legacy_id <> ''
		ORDER BY created_at ASC LIMIT 1`
	p, err := r.scanOne(ctx, query, companyID, legacyID)
	if err != nil {
		return nil, fmt.Errorf("get part by legacy id: %w", err)
	}
	return p, nil
}

// GetByCompanyNameAndDescription busca por nombre recortado y descripción normalizada a vacío.
func (r *PartRepo) GetByCompanyNameAndDescription(ctx context.Context, companyID, name, description string) (*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts WHERE company_id = $1 AND btrim(name) = $2 AND coalesce(description, '') = $3
		ORDER BY created_at ASC LIMIT 1`
	p, err := r.scanOne(ctx, query, companyID, name, description)
	if err != nil {
		return nil, fmt.Errorf("get part by name: %w", err)
	}
	return p, nil
}

// ListByCompany lista repuestos por organización con paginación.
func (r *PartRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanMany(ctx, query, companyID, limit, offset)
}

// ListAllByCompany devuelve todos los repuestos de la organización, el más antiguo primero.
// El orden establece la prioridad de sobreviviente durante la compactación.
func (r *PartRepo) ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts WHERE company_id = $1 ORDER BY created_at ASC`
	return r.scanMany(ctx, query, companyID)
}

// Update actualiza un repuesto existente. ID, company_id y created_at son inmutables.
func (r *PartRepo) Update(ctx context.Context, part *entity.Part) error {
	query := `
		UPDATE parts SET sku = $2, legacy_id = $3, name = $4, description = $5, stock_level = $6, reorder_point = $7, unit_cost = $8, total_cost = $9, barcode = $10, location = $11, supplier_id = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		part.ID, part.SKU, part.LegacyID, part.Name, part.Description,
		part.StockLevel, part.ReorderPoint, part.UnitCost, part.TotalCost,
		part.Barcode, part.Location, part.SupplierID, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// Delete elimina un repuesto por ID.
func (r *PartRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

func (r *PartRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Part, error) {
	var p entity.Part
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.CompanyID, &p.SKU, &p.LegacyID, &p.Name, &p.Description,
		&p.StockLevel, &p.ReorderPoint, &p.UnitCost, &p.TotalCost,
		&p.Barcode, &p.Location, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PartRepo) scanMany(ctx context.Context, query string, args ...any) ([]*entity.Part, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.SKU, &p.LegacyID, &p.Name, &p.Description,
			&p.StockLevel, &p.ReorderPoint, &p.UnitCost, &p.TotalCost,
			&p.Barcode, &p.Location, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
