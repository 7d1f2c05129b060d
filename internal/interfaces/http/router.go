package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-pos/internal/application/auth"
	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CheckoutUC   *billing.CheckoutUseCase
	SettlementUC *billing.SettlementUseCase
	InvoiceQuery *billing.InvoiceQueryUseCase
	CustomerUC   *billing.CustomerUseCase
	ProductUC    *usecase.ProductUseCase
	DashboardUC  *usecase.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
	// InvoiceDir directorio local con los PDF (se sirve en /public/invoices).
	InvoiceDir string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Factura pública por token (sin auth: el token es la autorización)
	billHandler := NewBillHandler(deps.CheckoutUC, deps.SettlementUC, deps.InvoiceQuery)
	api.Get("/bills/invoice/:token", billHandler.PublicInvoice)

	// PDFs generados (público: la URL lleva la referencia, llega por el
	// mensaje al cliente)
	app.Static("/public/invoices", deps.InvoiceDir)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Bills (protegido)
	bills := protected.Group("/bills")
	bills.Post("/checkout", billHandler.Checkout)
	bills.Get("/", billHandler.List)
	bills.Get("/:ref", billHandler.Get)
	bills.Patch("/:ref/status", billHandler.UpdateStatus)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/scan/:sku", productHandler.Scan)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/lookup", customerHandler.Lookup)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id/bills", customerHandler.Bills)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
