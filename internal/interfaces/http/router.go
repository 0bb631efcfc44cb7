package http

import (
	"github.com/gofiber/fiber/v2"
	appparts "github.com/tu-usuario/mantenimiento-pro/internal/application/parts"
	"github.com/tu-usuario/mantenimiento-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrganizationUC *usecase.OrganizationUseCase
	SupplierUC     *usecase.SupplierUseCase
	PartUC         *usecase.PartUseCase
	UpsertPartUC   *appparts.UpsertPartUseCase
	ImportPartsUC  *appparts.ImportPartsUseCase
	CompactPartsUC *appparts.CompactPartsUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Organizations (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	organizations := api.Group("/organizations")
	organizationHandler := NewOrganizationHandler(deps.OrganizationUC)
	organizations.Get("/", organizationHandler.List)
	organizations.Post("/", organizationHandler.Create)
	organizations.Get("/:id", organizationHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)

	// Parts (protegido). La creación siempre es crear-o-fusionar.
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.UpsertPartUC, deps.ImportPartsUC, deps.CompactPartsUC, deps.PartUC, deps.SupplierUC)
	parts.Post("/", partHandler.CreateOrMerge)
	parts.Get("/", partHandler.List)
	parts.Post("/import", partHandler.Import)
	// Acción administrativa de mantenimiento, no parte del tráfico ordinario
	parts.Post("/compact", RequireRole("admin"), partHandler.Compact)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)
}
