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
	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/retail-pos/internal/application/auth"
	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/cache"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/notify"
	infrapdf "github.com/tu-usuario/retail-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/retail-pos/internal/interfaces/http"
	"github.com/tu-usuario/retail-pos/pkg/config"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "pos-api",
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

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	ownerRepo := postgres.NewOwnerRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	shop := billing.ShopInfo{
		Name:       cfg.Shop.Name,
		Address:    cfg.Shop.Address,
		Phone:      cfg.Shop.Phone,
		Email:      cfg.Shop.Email,
		APIBaseURL: cfg.Invoice.APIBaseURL,
		AppBaseURL: cfg.Invoice.AppBaseURL,
	}

	pdfGenerator, err := infrapdf.NewMarotoPDFGenerator(cfg.Invoice.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de facturas")
	}

	smsClient := notify.NewFast2SMSClient(cfg.SMS.APIKey)
	waClient := notify.NewWhatsAppClient(
		cfg.WhatsApp.PhoneNumberID, cfg.WhatsApp.AccessToken, cfg.WhatsApp.APIVersion)
	dispatcher := notify.NewDispatcher(smsClient, waClient, notifRepo, log)

	// Cache opcional de facturas públicas; sin REDIS_ADDR se opera sin cache.
	var invoiceCache billing.InvoiceCache = cache.NoopInvoiceCache{}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, operando sin cache")
		} else {
			invoiceCache = cache.NewInvoiceCache(rdb)
		}
	}

	checkoutUC := billing.NewCheckoutUseCase(txRunner, pdfGenerator, dispatcher, shop, log)
	settlementUC := billing.NewSettlementUseCase(billRepo, customerRepo, pdfGenerator, invoiceCache, shop, log)
	invoiceQueryUC := billing.NewInvoiceQueryUseCase(billRepo, customerRepo, invoiceCache, shop, log)
	customerUC := billing.NewCustomerUseCase(customerRepo, billRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, productRepo)
	authUC := auth.NewAuthUseCase(ownerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CheckoutUC:   checkoutUC,
		SettlementUC: settlementUC,
		InvoiceQuery: invoiceQueryUC,
		CustomerUC:   customerUC,
		ProductUC:    productUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		InvoiceDir:   cfg.Invoice.Dir,
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
