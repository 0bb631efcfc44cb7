package parts

import (
	"context"
	"time"

	"github.com/tu-usuario/mantenimiento-pro/internal/domain"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	domparts "github.com/tu-usuario/mantenimiento-pro/internal/domain/parts"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/repository"
	"github.com/tu-usuario/mantenimiento-pro/pkg/logger"
)

// CompactSummary resumen de una compactación.
// GroupsProcessed cuenta los grupos con ≥1 duplicado plegado con éxito;
// Errors los grupos cuya secuencia update/delete falló (saltados, no abortan el resto).
type CompactSummary struct {
	GroupsProcessed int
	PartsMerged     int
	PartsDeleted    int
	Errors          int
}

// CompactPartsUseCase es la operación de mantenimiento sobre el dataset completo:
// particiona los repuestos de una organización en grupos de duplicados con las mismas
// reglas de identidad del matcher (pero N a 1, no por pares), pliega cada grupo en un
// sobreviviente y borra el resto.
//
// No pasa por el coordinador de upsert porque debe resolver grupos de N miembros.
// Es idempotente: sobre un dataset ya compactado produce GroupsProcessed = 0.
type CompactPartsUseCase struct {
	repo repository.PartRepository
	log  *logger.Logger
}

// NewCompactPartsUseCase construye el caso de uso de compactación.
func NewCompactPartsUseCase(repo repository.PartRepository, log *logger.Logger) *CompactPartsUseCase {
	return &CompactPartsUseCase{repo: repo, log: log}
}

// Compact carga todos los repuestos vivos de la organización (created_at ascendente:
// el más antiguo primero establece la prioridad de sobreviviente), agrupa duplicados
// en dos pasadas con marcado de "reclamado" y pliega cada grupo en su primario.
// Solo falla como llamada completa si el listado inicial falla.
func (uc *CompactPartsUseCase) Compact(ctx context.Context, companyID string) (*CompactSummary, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}

	all, err := uc.repo.ListAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	groups := groupDuplicates(all)

	summary := &CompactSummary{}
	for _, group := range groups {
		folded, deleted, err := uc.foldGroup(ctx, group)
		summary.PartsMerged += folded
		summary.PartsDeleted += deleted
		if err != nil {
			summary.Errors++
			uc.log.Error().
				Err(err).
				Str("company_id", companyID).
				Str("survivor_id", group[0].ID).
				Int("group_size", len(group)).
				Msg("grupo de compactación fallido, se continúa con el siguiente")
			continue
		}
		summary.GroupsProcessed++
	}
	return summary, nil
}

// groupDuplicates particiona los repuestos (ya ordenados por creación ascendente) en
// grupos de duplicados. Dos pasadas con marcado de reclamados:
//
//   - Pasada SKU: cada SKU recortado no vacío forma un grupo que consume todos los
//     repuestos que lo comparten. Un repuesto reclamado aquí no puede formar ni unirse
//     a otro grupo (ni de SKU ni de nombre): nadie se fusiona dos veces.
//   - Pasada nombre+descripción: solo sobre los repuestos no reclamados arriba
//     (los de SKU vacío). Dos repuestos con nombre y descripción vacíos comparten
//     clave y sí forman grupo; es intencional, igual que en el matcher.
//
// Solo se devuelven grupos con más de un miembro; el primer miembro (el más antiguo)
// es el primario.
func groupDuplicates(all []*entity.Part) [][]*entity.Part {
	var groups [][]*entity.Part
	claimed := make(map[string]bool, len(all)) // por ID de repuesto
	skuClaimed := make(map[string]bool)

	// Pasada SKU
	for i, p := range all {
		key := domparts.SKUKey(p.SKU)
		if key == "" || claimed[p.ID] || skuClaimed[key] {
			continue
		}
		group := []*entity.Part{p}
		claimed[p.ID] = true
		skuClaimed[key] = true
		for _, q := range all[i+1:] {
			if !claimed[q.ID] && domparts.SKUKey(q.SKU) == key {
				group = append(group, q)
				claimed[q.ID] = true
			}
		}
		if len(group) > 1 {
			groups = append(groups, group)
		}
	}

	// Pasada nombre+descripción (solo los no reclamados por SKU)
	nameClaimed := make(map[string]bool)
	for i, p := range all {
		if claimed[p.ID] {
			continue
		}
		key := domparts.NameDescriptionKey(p.Name, p.Description)
		if nameClaimed[key] {
			continue
		}
		group := []*entity.Part{p}
		claimed[p.ID] = true
		nameClaimed[key] = true
		for _, q := range all[i+1:] {
			if !claimed[q.ID] && domparts.NameDescriptionKey(q.Name, q.Description) == key {
				group = append(group, q)
				claimed[q.ID] = true
			}
		}
		if len(group) > 1 {
			groups = append(groups, group)
		}
	}

	return groups
}

// foldGroup pliega iterativamente cada no-primario en el primario, persiste el update
// del primario y luego borra los no-primarios. Devuelve cuántos se plegaron y cuántos
// se borraron realmente (si un delete falla a mitad, los previos ya se contaron).
func (uc *CompactPartsUseCase) foldGroup(ctx context.Context, group []*entity.Part) (folded, deleted int, err error) {
	primary := group[0]
	now := time.Now()

	merged := *primary
	for _, dup := range group[1:] {
		merged = domparts.Merge(merged, domparts.InputFromPart(dup), now)
	}

	if err := uc.repo.Update(ctx, &merged); err != nil {
		return 0, 0, err
	}
	folded = len(group) - 1

	for _, dup := range group[1:] {
		if err := uc.repo.Delete(ctx, dup.ID); err != nil {
			return folded, deleted, err
		}
		deleted++
	}
	return folded, deleted, nil
}
