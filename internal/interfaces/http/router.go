package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ErnestoSESB/E-commerce/internal/application/auth"
	"github.com/ErnestoSESB/E-commerce/internal/application/inventory"
	"github.com/ErnestoSESB/E-commerce/internal/application/usecase"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	UserUC     *usecase.UserUseCase
	OrderUC    *usecase.OrderUseCase
	CartUC     *usecase.CartUseCase
	CRMUC      *usecase.CRMUseCase
	SupplierUC *usecase.SupplierUseCase
	FinanceUC  *usecase.FinanceUseCase
	ApplyMov   *inventory.ApplyMovementUseCase
	Reconcile  *inventory.ReconcileUseCase
	MovRepo    repository.InventoryMovementRepository
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo: lectura pública. El middleware de auth corre en modo opcional para
	// que un token de staff habilite filtros restringidos como is_active.
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products", OptionalAuth(deps.JWTSecret))
	products.Get("/", productHandler.List)
	products.Get("/slug/:slug", productHandler.GetBySlug)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/variations", productHandler.ListVariations)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo: escritura (staff)
	staffProducts := protected.Group("/products", RequireStaff())
	staffProducts.Post("/", productHandler.Create)
	staffProducts.Put("/:id", productHandler.Update)
	staffProducts.Delete("/:id", productHandler.Delete)
	staffProducts.Post("/:id/variations", productHandler.CreateVariation)
	staffProducts.Put("/:id/variations/:variationId", productHandler.UpdateVariation)
	staffProducts.Delete("/:id/variations/:variationId", productHandler.DeleteVariation)

	// Usuarios (protegido; el scoping dueño-o-staff vive en el caso de uso)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/role", RequireAdmin(), userHandler.UpdateRole)

	// Órdenes (protegido)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", RequireStaff(), orderHandler.UpdateStatus)
	orders.Post("/:id/items", RequireStaff(), orderHandler.AddItem)
	orders.Delete("/:id/items/:itemId", RequireStaff(), orderHandler.RemoveItem)
	orders.Post("/:id/pay", RequireStaff(), orderHandler.MarkPaid)

	// Carrito (protegido, siempre del caller)
	cartHandler := NewCartHandler(deps.CartUC)
	cart := protected.Group("/cart")
	cart.Get("/", cartHandler.Get)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:itemId", cartHandler.UpdateItem)
	cart.Delete("/items/:itemId", cartHandler.RemoveItem)
	cart.Post("/checkout", cartHandler.Checkout)

	// Inventario: libro de movimientos y conciliación (staff)
	inventoryHandler := NewInventoryHandler(deps.ApplyMov, deps.Reconcile, deps.MovRepo)
	invGroup := protected.Group("/inventory", RequireStaff())
	invGroup.Post("/movements", inventoryHandler.ApplyMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Post("/reconcile", inventoryHandler.Reconcile)

	// CRM (staff)
	crmHandler := NewCRMHandler(deps.CRMUC)
	crm := protected.Group("/crm", RequireStaff())
	crm.Post("/tags", crmHandler.CreateTag)
	crm.Get("/tags", crmHandler.ListTags)
	crm.Delete("/tags/:id", crmHandler.DeleteTag)
	crm.Get("/profiles", crmHandler.ListProfiles)
	crm.Get("/profiles/:userId", crmHandler.GetProfile)
	crm.Put("/profiles/:userId", crmHandler.UpdateProfile)
	crm.Post("/profiles/:userId/refresh", crmHandler.RefreshMetrics)
	crm.Get("/profiles/:profileId/interactions", crmHandler.ListInteractions)
	crm.Post("/interactions", crmHandler.CreateInteraction)

	// Proveedores (staff)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := protected.Group("/suppliers", RequireStaff())
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Finanzas (staff)
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	finance := protected.Group("/finance", RequireStaff())
	finance.Post("/transactions", financeHandler.Create)
	finance.Get("/transactions", financeHandler.List)
	finance.Get("/transactions/:id", financeHandler.GetByID)
	finance.Delete("/transactions/:id", financeHandler.Delete)
}
