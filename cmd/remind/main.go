// Binario del job de recordatorios de saldo vencido, pensado para correr
// bajo cron (una vez al día). Sin estado propio: cada corrida consulta las
// facturas PENDING vencidas y envía el recordatorio.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/notify"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/retail-pos/pkg/config"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

func main() {
	dateFlag := flag.String("date", "", "fecha de corte YYYY-MM-DD (default: hoy)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "pos-remind",
	})

	asOf := time.Now()
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			log.Fatal().Str("date", *dateFlag).Msg("fecha inválida, usar YYYY-MM-DD")
		}
		asOf = parsed
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	billRepo := postgres.NewBillRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)

	smsClient := notify.NewFast2SMSClient(cfg.SMS.APIKey)
	waClient := notify.NewWhatsAppClient(
		cfg.WhatsApp.PhoneNumberID, cfg.WhatsApp.AccessToken, cfg.WhatsApp.APIVersion)
	dispatcher := notify.NewDispatcher(smsClient, waClient, notifRepo, log)

	shop := billing.ShopInfo{
		Name:       cfg.Shop.Name,
		Address:    cfg.Shop.Address,
		Phone:      cfg.Shop.Phone,
		Email:      cfg.Shop.Email,
		APIBaseURL: cfg.Invoice.APIBaseURL,
		AppBaseURL: cfg.Invoice.AppBaseURL,
	}

	uc := billing.NewReminderUseCase(billRepo, dispatcher, shop, log)
	sent, err := uc.Run(ctx, asOf)
	if err != nil {
		log.Fatal().Err(err).Msg("job de recordatorios")
	}

	log.Info().
		Int("sent", sent).
		Str("as_of", asOf.Format("2006-01-02")).
		Msg("recordatorios procesados")
}
