package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mantenimiento-pro/internal/application/dto"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/repository"
)

// OrganizationUseCase casos de uso CRUD para organizaciones (tenants).
type OrganizationUseCase struct {
	repo repository.OrganizationRepository
}

// NewOrganizationUseCase construye el caso de uso con el puerto de persistencia.
func NewOrganizationUseCase(repo repository.OrganizationRepository) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo}
}

// Create crea una nueva organización. Genera ID y estado inicial.
func (uc *OrganizationUseCase) Create(in dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	now := time.Now()
	org := &entity.Organization{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// GetByID obtiene una organización por ID.
func (uc *OrganizationUseCase) GetByID(id string) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	return toOrganizationResponse(org), nil
}

// List lista organizaciones con paginación.
func (uc *OrganizationUseCase) List(limit, offset int) (*dto.OrganizationListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrganizationResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrganizationResponse(o))
	}
	return &dto.OrganizationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	if o == nil {
		return nil
	}
	return &dto.OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Address:   o.Address,
		Phone:     o.Phone,
		Email:     o.Email,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
