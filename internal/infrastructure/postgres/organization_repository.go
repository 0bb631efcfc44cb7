package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/repository"
)

// Asegura que OrganizationRepo implementa repository.OrganizationRepository.
var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	pool *pgxpool.Pool
}

// NewOrganizationRepository construye el adaptador de persistencia para organizaciones.
func NewOrganizationRepository(pool *pgxpool.Pool) *OrganizationRepo {
	return &OrganizationRepo{pool: pool}
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		org.ID, org.Name, org.Address, org.Phone, org.Email, org.Status,
		org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	query := `
		SELECT id, name, address, phone, email, status, created_at, updated_at
		FROM organizations WHERE id = $1`
	var o entity.Organization
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.Address, &o.Phone, &o.Email, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}

// Update actualiza una organización existente.
func (r *OrganizationRepo) Update(org *entity.Organization) error {
	query := `
		UPDATE organizations SET name = $2, address = $3, phone = $4, email = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		org.ID, org.Name, org.Address, org.Phone, org.Email, org.Status, org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	return nil
}

// List devuelve organizaciones con paginación.
func (r *OrganizationRepo) List(limit, offset int) ([]*entity.Organization, error) {
	query := `
		SELECT id, name, address, phone, email, status, created_at, updated_at
		FROM organizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Address, &o.Phone, &o.Email, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina una organización por ID.
func (r *OrganizationRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	return nil
}
