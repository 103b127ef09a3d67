package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fmpa/internal/adapters/discord"
	httpapi "fmpa/internal/adapters/http"
	"fmpa/internal/application"
	"fmpa/internal/config"
	"fmpa/internal/infrastructure/audit"
	"fmpa/internal/infrastructure/database"
	"fmpa/internal/infrastructure/i18n"
	"fmpa/internal/infrastructure/notify"
	"fmpa/internal/infrastructure/reporting"
	"fmpa/internal/infrastructure/spreadsheet"
	"fmpa/internal/infrastructure/sqlite"
	"fmpa/internal/infrastructure/telemetry"
	"fmpa/internal/ports/output"
)

const serviceName = "fmpa"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.Env, cfg.OTelEndpoint)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la télémétrie: %v", err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer closeStore()

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	log.Printf("🌐 Langues chargées: %v", translator.Languages())

	var notifier output.Notifier = notify.NewLogNotifier(translator, cfg.DefaultLocale)
	if cfg.DiscordEnabled() {
		webhook, err := discord.NewWebhookNotifier(cfg.DiscordWebhook, cfg.DiscordToken, translator, cfg.DefaultLocale)
		if err != nil {
			log.Fatalf("❌ Erreur lors de l'initialisation du webhook Discord: %v", err)
		}
		notifier = webhook
	}

	var reporter output.ErrorReporter = reporting.LogReporter{}
	if cfg.RollbarToken != "" {
		rb := reporting.NewRollbarReporter(cfg.RollbarToken, cfg.Env, version)
		defer rb.Close()
		reporter = rb
	}

	srv := httpapi.NewServer(&httpapi.Options{
		Address:    cfg.HTTPAddr,
		JWTSecret:  cfg.JWTSecret,
		RateLimit:  cfg.RateLimit,
		RateBurst:  cfg.RateBurst,
		Translator: translator,
		Reporter:   reporter,

		Events:         application.NewEventService(store, notifier),
		Participations: application.NewParticipationService(store, notifier),
		Stats:          application.NewStatsService(store),
		Exports: application.NewExportService(store, audit.NewLogAuditor(nil),
			spreadsheet.XLSXWriter{}, spreadsheet.CSVWriter{}),
		Personnel: application.NewPersonnelService(store),
	})

	go func() {
		log.Printf("🚀 Serveur FMPA démarré sur %s (%s)", cfg.HTTPAddr, cfg.Env)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ Erreur du serveur HTTP: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Arrêt du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Printf("⚠️ Arrêt du serveur HTTP: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("⚠️ Arrêt de la télémétrie: %v", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (output.Store, func(), error) {
	if cfg.DatabaseDriver == config.DriverSQLite {
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return database.NewStore(pool), pool.Close, nil
}
