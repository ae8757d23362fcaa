package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ErnestoSESB/E-commerce/internal/application/auth"
	"github.com/ErnestoSESB/E-commerce/internal/application/inventory"
	"github.com/ErnestoSESB/E-commerce/internal/application/usecase"
	"github.com/ErnestoSESB/E-commerce/internal/infrastructure/postgres"
	httpRouter "github.com/ErnestoSESB/E-commerce/internal/interfaces/http"
	"github.com/ErnestoSESB/E-commerce/pkg/config"
	"github.com/ErnestoSESB/E-commerce/pkg/logger"
)

// mountSwagger sirve la UI de swagger en /docs si el artefacto generado existe.
// El JSON no se versiona: se genera desde las anotaciones de los handlers con
// `swag init -g cmd/api/main.go --output docs --outputTypes json`.
func mountSwagger(app *fiber.App, log *logger.Logger, specPath string) {
	if _, err := os.Stat(specPath); err != nil {
		log.Warn().Str("path", specPath).Msg("swagger.json no encontrado; UI de /docs deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    "E-commerce Back Office API",
	}))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	variationRepo := postgres.NewVariationRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	tagRepo := postgres.NewCRMTagRepository(pool)
	profileRepo := postgres.NewCustomerProfileRepository(pool)
	interactionRepo := postgres.NewCRMInteractionRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	transactionRepo := postgres.NewFinancialTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, variationRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, productRepo, orderRepo)
	crmUC := usecase.NewCRMUseCase(tagRepo, profileRepo, interactionRepo, userRepo, orderRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	financeUC := usecase.NewFinanceUseCase(transactionRepo)
	applyMovementUC := inventory.NewApplyMovementUseCase(txRunner, productRepo, variationRepo)
	reconcileUC := inventory.NewReconcileUseCase(txRunner, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	mountSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		UserUC:     userUC,
		OrderUC:    orderUC,
		CartUC:     cartUC,
		CRMUC:      crmUC,
		SupplierUC: supplierUC,
		FinanceUC:  financeUC,
		ApplyMov:   applyMovementUC,
		Reconcile:  reconcileUC,
		MovRepo:    movementRepo,
		JWTSecret:  cfg.JWT.Secret,
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
