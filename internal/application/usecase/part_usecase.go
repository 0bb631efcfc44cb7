package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/mantenimiento-pro/internal/application/dto"
	appparts "github.com/tu-usuario/mantenimiento-pro/internal/application/parts"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/repository"
)

// PartUseCase shell CRUD para repuestos: lectura, actualización ordinaria de campos y
// borrado directo. La creación pasa siempre por el coordinador de upsert
// (parts.UpsertPartUseCase); aquí no se crea nada.
type PartUseCase struct {
	repo repository.PartRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

// GetByID obtiene un repuesto por ID. Devuelve nil si no existe y
// domain.ErrForbidden si pertenece a otra organización.
func (uc *PartUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	if part.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return appparts.ToPartResponse(part), nil
}

// List lista repuestos por organización con paginación.
func (uc *PartUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.PartListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *appparts.ToPartResponse(p))
	}
	return &dto.PartListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización ordinaria de campos (sobrescritura, NO fusión: el stock se
// reemplaza, no se suma). Para combinar registros usar el motor de fusión.
func (uc *PartUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	if part.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.SKU != nil {
		part.SKU = *in.SKU
	}
	if in.Name != nil {
		part.Name = *in.Name
	}
	if in.Description != nil {
		part.Description = *in.Description
	}
	if in.StockLevel != nil {
		if *in.StockLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		part.StockLevel = *in.StockLevel
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		part.ReorderPoint = *in.ReorderPoint
	}
	if in.UnitCost != nil {
		part.UnitCost = in.UnitCost
	}
	if in.TotalCost != nil {
		part.TotalCost = in.TotalCost
	}
	if in.Barcode != nil {
		part.Barcode = *in.Barcode
	}
	if in.Location != nil {
		part.Location = *in.Location
	}
	if in.SupplierID != nil {
		part.SupplierID = *in.SupplierID
	}
	part.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, part); err != nil {
		return nil, err
	}
	return appparts.ToPartResponse(part), nil
}

// Delete elimina un repuesto por ID, validando la organización.
func (uc *PartUseCase) Delete(ctx context.Context, companyID, id string) error {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	if part.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}
