package parts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	domparts "github.com/tu-usuario/mantenimiento-pro/internal/domain/parts"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/repository"
)

// Action clasifica el resultado de un upsert.
type Action string

// Acciones posibles de CreateOrMerge.
const (
	ActionCreated Action = "created"
	ActionMerged  Action = "merged"
)

// UpsertPartUseCase crea-o-fusiona un repuesto: la unidad de trabajo tanto de la
// creación directa como de cada ítem del importador de lotes.
//
// La secuencia buscar-luego-actuar NO es atómica frente a coordinadores concurrentes
// sobre el mismo candidato: dos procesos pueden observar "sin duplicado" y crear dos
// registros. Es una carrera conocida y aceptada (el store no tiene constraint único
// sobre SKU); el compactador existe en parte para limpiar después de ella.
type UpsertPartUseCase struct {
	repo    repository.PartRepository
	matcher *DuplicateMatcher
}

// NewUpsertPartUseCase construye el caso de uso.
func NewUpsertPartUseCase(repo repository.PartRepository) *UpsertPartUseCase {
	return &UpsertPartUseCase{repo: repo, matcher: NewDuplicateMatcher(repo)}
}

// CreateOrMerge ejecuta el matcher; si hay duplicado fusiona los campos entrantes
// sobre el existente (mismo ID) y persiste el update. Si no, crea un registro nuevo.
// Los fallos del store se propagan sin envolver decisiones propias.
func (uc *UpsertPartUseCase) CreateOrMerge(ctx context.Context, companyID string, in domparts.Input) (*entity.Part, Action, error) {
	if companyID == "" || in.StockLevel < 0 || in.ReorderPoint < 0 {
		return nil, "", domain.ErrInvalidInput
	}

	existing, err := uc.matcher.FindDuplicate(ctx, companyID, in)
	if err != nil {
		return nil, "", err
	}

	if existing != nil {
		merged := domparts.Merge(*existing, in, time.Now())
		if err := uc.repo.Update(ctx, &merged); err != nil {
			return nil, "", err
		}
		return &merged, ActionMerged, nil
	}

	now := time.Now()
	part := &entity.Part{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		SKU:          in.SKU,
		LegacyID:     in.LegacyID,
		Name:         in.Name,
		Description:  in.Description,
		StockLevel:   in.StockLevel,
		ReorderPoint: in.ReorderPoint,
		UnitCost:     in.UnitCost,
		TotalCost:    in.TotalCost,
		Barcode:      in.Barcode,
		Location:     in.Location,
		SupplierID:   in.SupplierID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, part); err != nil {
		return nil, "", err
	}
	return part, ActionCreated, nil
}
