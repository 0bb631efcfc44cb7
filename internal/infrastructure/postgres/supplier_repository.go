package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, company_id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.CompanyID, supplier.Name, supplier.Email, supplier.Phone,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, email, phone, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByCompany lista proveedores por organización con paginación.
func (r *SupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, email, phone, created_at, updated_at
		FROM suppliers WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Email, supplier.Phone, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
