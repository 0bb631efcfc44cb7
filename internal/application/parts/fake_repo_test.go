package parts_test

import (
	"context"
	"sort"
	"strings"

	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/repository"
	"github.com/tu-usuario/mantenimiento-pro/pkg/logger"
)

// fakePartRepo es un record store en memoria para los tests del motor.
// Reproduce la misma normalización que el adaptador de PostgreSQL (btrim del SKU,
// descripción NULL ≡ "", orden por created_at ascendente) para que los casos de uso
// se ejerciten contra semántica idéntica a la real.
type fakePartRepo struct {
	parts map[string]*entity.Part

	// inyección de fallos por operación (nil = sin fallo)
	createErr error
	updateErr error
	deleteErr map[string]error // por ID
}

var _ repository.PartRepository = (*fakePartRepo)(nil)

func newFakePartRepo() *fakePartRepo {
	return &fakePartRepo{
		parts:     make(map[string]*entity.Part),
		deleteErr: make(map[string]error),
	}
}

func (f *fakePartRepo) Create(_ context.Context, part *entity.Part) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *part
	f.parts[part.ID] = &cp
	return nil
}

func (f *fakePartRepo) GetByID(_ context.Context, id string) (*entity.Part, error) {
	if p, ok := f.parts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePartRepo) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Part, error) {
	return f.findOne(companyID, func(p *entity.Part) bool {
		trimmed := strings.TrimSpace(p.SKU)
		return trimmed != "" && trimmed == sku
	}), nil
}

func (f *fakePartRepo) GetByCompanyAndLegacyID(_ context.Context, companyID, legacyID string) (*entity.Part, error) {
	return f.findOne(companyID, func(p *entity.Part) bool {
		return p.LegacyID != "" && p.LegacyID == legacyID
	}), nil
}

func (f *fakePartRepo) GetByCompanyNameAndDescription(_ context.Context, companyID, name, description string) (*entity.Part, error) {
	return f.findOne(companyID, func(p *entity.Part) bool {
		return strings.TrimSpace(p.Name) == name && p.Description == description
	}), nil
}

func (f *fakePartRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Part, error) {
	all := f.sortedByCompany(companyID)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakePartRepo) ListAllByCompany(_ context.Context, companyID string) ([]*entity.Part, error) {
	return f.sortedByCompany(companyID), nil
}

func (f *fakePartRepo) Update(_ context.Context, part *entity.Part) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *part
	f.parts[part.ID] = &cp
	return nil
}

func (f *fakePartRepo) Delete(_ context.Context, id string) error {
	if err := f.deleteErr[id]; err != nil {
		return err
	}
	delete(f.parts, id)
	return nil
}

// findOne devuelve el candidato más antiguo que cumpla el predicado, como hace
// el adaptador real con ORDER BY created_at ASC LIMIT 1.
func (f *fakePartRepo) findOne(companyID string, match func(*entity.Part) bool) *entity.Part {
	for _, p := range f.sortedByCompany(companyID) {
		if match(p) {
			cp := *p
			return &cp
		}
	}
	return nil
}

func (f *fakePartRepo) sortedByCompany(companyID string) []*entity.Part {
	var out []*entity.Part
	for _, p := range f.parts {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// testLogger logger silencioso para los casos de uso que lo requieren.
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}
