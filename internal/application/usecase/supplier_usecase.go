package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mantenimiento-pro/internal/application/dto"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un nuevo proveedor para la organización.
func (uc *SupplierUseCase) Create(companyID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID, validando la organización.
func (uc *SupplierUseCase) GetByID(companyID, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return ToSupplierResponse(supplier), nil
}

// List lista proveedores por organización con paginación.
func (uc *SupplierUseCase) List(companyID string, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un proveedor existente.
func (uc *SupplierUseCase) Update(companyID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// ToSupplierResponse convierte la entidad a su DTO de salida (también la usa el
// handler de repuestos para expandir la relación supplier).
func ToSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
