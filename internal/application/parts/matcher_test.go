package parts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/mantenimiento-pro/internal/application/parts"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain/entity"
	domparts "github.com/tu-usuario/mantenimiento-pro/internal/domain/parts"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del matcher de duplicados: tres niveles de identidad con corto circuito.
// El punto crítico es la prioridad: un acierto por SKU gana aunque un nivel más
// débil apunte a OTRO registro distinto.
// ──────────────────────────────────────────────────────────────────────────────

const matcherOrg = "org-1"

var baseCreated = time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

func seedPart(repo *fakePartRepo, id, sku, legacyID, name, description string, age time.Duration) {
	repo.parts[id] = &entity.Part{
		ID:          id,
		CompanyID:   matcherOrg,
		SKU:         sku,
		LegacyID:    legacyID,
		Name:        name,
		Description: description,
		CreatedAt:   baseCreated.Add(age),
		UpdatedAt:   baseCreated.Add(age),
	}
}

func TestFindDuplicate_PorSKU(t *testing.T) {
	repo := newFakePartRepo()
	seedPart(repo, "p1", "FLT-001", "", "Filtro", "", 0)
	m := parts.NewDuplicateMatcher(repo)

	found, err := m.FindDuplicate(context.Background(), matcherOrg, domparts.Input{SKU: "  FLT-001 "})
	require.NoError(t, err)
	require.NotNil(t, found, "El SKU entrante se compara recortado")
	assert.Equal(t, "p1", found.ID)
}

func TestFindDuplicate_SKUGanaSobreNombre(t *testing.T) {
	repo := newFakePartRepo()
	seedPart(repo, "porSKU", "FLT-001", "", "Otro nombre", "", 0)
	seedPart(repo, "porNombre", "", "", "Filtro", "desc", time.Hour)
	m := parts.NewDuplicateMatcher(repo)

	// El entrante coincide por SKU con un registro y por nombre+descripción con OTRO:
	// debe ganar el nivel fuerte sin evaluar el débil.
	found, err := m.FindDuplicate(context.Background(), matcherOrg, domparts.Input{
		SKU: "FLT-001", Name: "Filtro", Description: "desc",
	})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "porSKU", found.ID, "La coincidencia por SKU tiene prioridad absoluta")
}

func TestFindDuplicate_LegacyIDComoRespaldo(t *testing.T) {
	repo := newFakePartRepo()
	seedPart(repo, "p1", "FLT-002", "L-42", "Filtro", "", 0)
	m := parts.NewDuplicateMatcher(repo)

	// SKU entrante sin coincidencia; el LegacyID sí enlaza.
	found, err := m.FindDuplicate(context.Background(), matcherOrg, domparts.Input{
		SKU: "NUEVO-SKU", LegacyID: "L-42",
	})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "p1", found.ID)
}

func TestFindDuplicate_NombreMasDescripcion(t *testing.T) {
	repo := newFakePartRepo()
	seedPart(repo, "p1", "", "", "Correa dentada", "", 0)
	m := parts.NewDuplicateMatcher(repo)

	found, err := m.FindDuplicate(context.Background(), matcherOrg, domparts.Input{
		Name: "  Correa dentada  ", Description: "",
	})
	require.NoError(t, err)
	require.NotNil(t, found, "Nombre recortado + descripción vacía coincide con descripción ausente")
	assert.Equal(t, "p1", found.ID)
}

func TestFindDuplicate_SKUVacioNoParticipa(t *testing.T) {
	repo := newFakePartRepo()
	seedPart(repo, "p1", "", "", "Filtro", "", 0)
	m := parts.NewDuplicateMatcher(repo)

	// Ambos con SKU vacío: el nivel SKU no se evalúa, pero el nombre sí enlaza.
	found, err := m.FindDuplicate(context.Background(), matcherOrg, domparts.Input{
		SKU: "   ", Name: "Filtro",
	})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "p1", found.ID)
}

func TestFindDuplicate_SinCoincidencia(t *testing.T) {
	repo := newFakePartRepo()
	seedPart(repo, "p1", "FLT-001", "L-1", "Filtro", "", 0)
	m := parts.NewDuplicateMatcher(repo)

	found, err := m.FindDuplicate(context.Background(), matcherOrg, domparts.Input{
		SKU: "OTRO", LegacyID: "L-2", Name: "Bomba", Description: "hidráulica",
	})
	require.NoError(t, err)
	assert.Nil(t, found, "Sin coincidencia en ningún nivel el candidato es nuevo")
}

func TestFindDuplicate_NoCruzaOrganizaciones(t *testing.T) {
	repo := newFakePartRepo()
	seedPart(repo, "p1", "FLT-001", "", "Filtro", "", 0)
	m := parts.NewDuplicateMatcher(repo)

	found, err := m.FindDuplicate(context.Background(), "org-otra", domparts.Input{SKU: "FLT-001"})
	require.NoError(t, err)
	assert.Nil(t, found, "El matching nunca cruza organizaciones")
}

func TestFindDuplicate_MasAntiguoSiHayVarios(t *testing.T) {
	repo := newFakePartRepo()
	seedPart(repo, "viejo", "FLT-001", "", "Filtro", "", 0)
	seedPart(repo, "nuevo", "FLT-001", "", "Filtro", "", 2*time.Hour)
	m := parts.NewDuplicateMatcher(repo)

	found, err := m.FindDuplicate(context.Background(), matcherOrg, domparts.Input{SKU: "FLT-001"})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "viejo", found.ID,
		"Con duplicados preexistentes la búsqueda es determinista: el más antiguo")
}
