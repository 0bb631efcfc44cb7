package parts

import (
	"context"

	"github.com/tu-usuario/mantenimiento-pro/internal/application/dto"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	domparts "github.com/tu-usuario/mantenimiento-pro/internal/domain/parts"
)

// CreateOrMergeFromRequest adapta el request HTTP al caso de uso CreateOrMerge.
// Usar desde handlers HTTP que ya tienen companyID del token.
func (uc *UpsertPartUseCase) CreateOrMergeFromRequest(ctx context.Context, companyID string, in dto.PartInputRequest) (*dto.PartUpsertResponse, error) {
	part, action, err := uc.CreateOrMerge(ctx, companyID, inputFromRequest(in))
	if err != nil {
		return nil, err
	}
	return &dto.PartUpsertResponse{Action: string(action), Part: *ToPartResponse(part)}, nil
}

// ImportFromRequest adapta el request HTTP al caso de uso ImportBatch.
func (uc *ImportPartsUseCase) ImportFromRequest(ctx context.Context, companyID string, in dto.ImportPartsRequest) *dto.ImportPartsResponse {
	inputs := make([]domparts.Input, 0, len(in.Items))
	for _, item := range in.Items {
		inputs = append(inputs, inputFromRequest(item))
	}
	summary := uc.ImportBatch(ctx, companyID, inputs)

	out := &dto.ImportPartsResponse{
		Total:   summary.Total,
		Created: summary.Created,
		Merged:  summary.Merged,
		Failed:  summary.Failed,
		Details: make([]dto.ImportPartDetail, 0, len(summary.Details)),
	}
	for _, d := range summary.Details {
		out.Details = append(out.Details, dto.ImportPartDetail{Action: string(d.Action), Part: *ToPartResponse(d.Part)})
	}
	for _, f := range summary.Failures {
		out.Failures = append(out.Failures, dto.ImportPartFailure{Index: f.Index, Reason: f.Reason})
	}
	return out
}

// CompactFromRequest adapta la acción administrativa de compactación a la respuesta HTTP.
func (uc *CompactPartsUseCase) CompactFromRequest(ctx context.Context, companyID string) (*dto.CompactPartsResponse, error) {
	summary, err := uc.Compact(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &dto.CompactPartsResponse{
		GroupsProcessed: summary.GroupsProcessed,
		PartsMerged:     summary.PartsMerged,
		PartsDeleted:    summary.PartsDeleted,
		Errors:          summary.Errors,
	}, nil
}

func inputFromRequest(in dto.PartInputRequest) domparts.Input {
	return domparts.Input{
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
	}
}

// ToPartResponse convierte la entidad a su DTO de salida (sin expandir relaciones;
// la expansión de Supplier es asunto del caller).
func ToPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	return &dto.PartResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		SKU:          p.SKU,
		LegacyID:     p.LegacyID,
		Name:         p.Name,
		Description:  p.Description,
		StockLevel:   p.StockLevel,
		ReorderPoint: p.ReorderPoint,
		UnitCost:     p.UnitCost,
		TotalCost:    p.TotalCost,
		Barcode:      p.Barcode,
		Location:     p.Location,
		SupplierID:   p.SupplierID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
