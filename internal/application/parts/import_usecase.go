package parts

import (
	"context"

	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	domparts "github.com/tu-usuario/mantenimiento-pro/internal/domain/parts"
	"github.com/tu-usuario/mantenimiento-pro/pkg/logger"
)

// ImportDetail resultado de un ítem procesado con éxito.
type ImportDetail struct {
	Action Action
	Part   *entity.Part
}

// ImportFailure ítem fallido: posición en la secuencia de entrada y causa.
type ImportFailure struct {
	Index  int
	Reason string
}

// ImportSummary resumen de un lote. Total es la longitud de la entrada; Created+Merged
// cuenta solo ítems procesados, así que Created+Merged+Failed == Total.
type ImportSummary struct {
	Total    int
	Created  int
	Merged   int
	Failed   int
	Details  []ImportDetail
	Failures []ImportFailure
}

// ImportPartsUseCase aplica el upsert a una secuencia ordenada de repuestos entrantes.
//
// Aislamiento por ítem: un registro malo nunca aborta el lote; el fallo se registra
// (log + contador + razón) y se continúa con el siguiente. No hay rollback: las
// fusiones ya aplicadas no se deshacen si un ítem posterior falla. Es un intercambio
// deliberado de simplicidad/disponibilidad; los imports se asumen re-ejecutables.
type ImportPartsUseCase struct {
	upsert *UpsertPartUseCase
	log    *logger.Logger
}

// NewImportPartsUseCase construye el caso de uso de importación.
func NewImportPartsUseCase(upsert *UpsertPartUseCase, log *logger.Logger) *ImportPartsUseCase {
	return &ImportPartsUseCase{upsert: upsert, log: log}
}

// ImportBatch procesa los ítems estrictamente en orden: el lookup del ítem N ve los
// efectos de los ítems 1..N-1 del mismo lote.
func (uc *ImportPartsUseCase) ImportBatch(ctx context.Context, companyID string, inputs []domparts.Input) *ImportSummary {
	summary := &ImportSummary{
		Total:   len(inputs),
		Details: make([]ImportDetail, 0, len(inputs)),
	}

	for i, in := range inputs {
		part, action, err := uc.upsert.CreateOrMerge(ctx, companyID, in)
		if err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, ImportFailure{Index: i, Reason: err.Error()})
			uc.log.Warn().
				Err(err).
				Int("index", i).
				Str("company_id", companyID).
				Str("sku", in.SKU).
				Str("name", in.Name).
				Msg("ítem de importación fallido, se continúa con el siguiente")
			continue
		}
		switch action {
		case ActionCreated:
			summary.Created++
		case ActionMerged:
			summary.Merged++
		}
		summary.Details = append(summary.Details, ImportDetail{Action: action, Part: part})
	}

	return summary
}
