package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"candor/internal/admission"
	"candor/internal/config"
	"candor/internal/db"
	"candor/internal/handler"
	transport "candor/internal/http"
	"candor/internal/logger"
	"candor/internal/recordstore"
	"candor/internal/repository"
	"candor/internal/service"
	"candor/internal/service/ai"
	"candor/internal/snowflake"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	journal := repository.NewRecordRepository(dbConn)

	limiter := admission.New(cfg.RateLimit, cfg.RateWindow)
	janitor := admission.NewJanitor(limiter, cfg.RateWindow)
	qps := ai.NewRateLimiter(cfg.OutboundQPS)

	// Missing credentials must not prevent startup; each POST answers 500
	// until they are configured.
	var provider ai.Provider
	if cfg.ProviderAPIKey != "" {
		provider, err = ai.NewProvider(ai.Config{
			Provider: cfg.Provider,
			APIKey:   cfg.ProviderAPIKey,
			BaseURL:  cfg.ProviderBaseURL,
			Model:    cfg.Model,
		})
		if err != nil {
			logger.Warn("provider unavailable", "module", "main", "action", "init", "resource", "provider", "result", "failed", "error", err)
		}
	}

	var store service.RecordWriter
	if cfg.AirtableToken != "" && cfg.AirtableBase != "" && cfg.AirtableTable != "" {
		client, err := recordstore.NewClient(cfg.AirtableToken, cfg.AirtableBase, cfg.AirtableTable)
		if err != nil {
			logger.Warn("record store unavailable", "module", "main", "action", "init", "resource", "record", "result", "failed", "error", err)
		} else {
			store = client
		}
	}

	if missing := cfg.MissingRequired(); len(missing) > 0 {
		logger.Warn("required settings missing", "module", "main", "action", "init", "resource", "config", "result", "failed", "missing", missing)
	}

	translateService := service.NewTranslateService(cfg, provider, limiter, qps, store, journal)
	translateHandler := handler.NewTranslateHandler(translateService, cfg)

	router := transport.NewRouter(translateHandler, cfg.AllowedOrigin)

	janitor.Start()

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		janitor.Stop()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := router.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
