package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appparts "github.com/tu-usuario/mantenimiento-pro/internal/application/parts"
	"github.com/tu-usuario/mantenimiento-pro/internal/application/usecase"
	"github.com/tu-usuario/mantenimiento-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/mantenimiento-pro/internal/interfaces/http"
	"github.com/tu-usuario/mantenimiento-pro/pkg/config"
	"github.com/tu-usuario/mantenimiento-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	organizationRepo := postgres.NewOrganizationRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	partRepo := postgres.NewPartRepository(pool)

	organizationUC := usecase.NewOrganizationUseCase(organizationRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	partUC := usecase.NewPartUseCase(partRepo)

	upsertPartUC := appparts.NewUpsertPartUseCase(partRepo)
	importPartsUC := appparts.NewImportPartsUseCase(upsertPartUC, log)
	compactPartsUC := appparts.NewCompactPartsUseCase(partRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrganizationUC: organizationUC,
		SupplierUC:     supplierUC,
		PartUC:         partUC,
		UpsertPartUC:   upsertPartUC,
		ImportPartsUC:  importPartsUC,
		CompactPartsUC: compactPartsUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
