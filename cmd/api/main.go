package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dbt-guide/config"
	_ "dbt-guide/docs" // Swagger docs
	"dbt-guide/internal/content"
	"dbt-guide/internal/httpserver"
	"dbt-guide/internal/i18n"
	"dbt-guide/internal/middleware"
	"dbt-guide/pkg/log"
)

// @title       DBT Guide API
// @description Bilingual DBT and scholarship assistant: an FAQ chatbot and a step by step Aadhaar seeding guide.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting DBT Guide...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Content
	bundle, err := content.Load(content.Paths{
		Chatbot:      cfg.Content.ChatbotPath,
		Procedure:    cfg.Content.ProcedurePath,
		Translations: cfg.Content.TranslationsPath,
	})
	if err != nil {
		logger.Error(ctx, "Failed to load content: ", err)
		return
	}

	defaultLang, err := i18n.Parse(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Warnf(ctx, "Unsupported default language %q, using %s", cfg.I18n.DefaultLanguage, i18n.Default)
		defaultLang = i18n.Default
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Bot:             bundle.Bot,
		Catalog:         bundle.Catalog,
		Texts:           bundle.Texts,
		DefaultLanguage: defaultLang,
		SessionTTL:      cfg.Session.TTL,
		MaxSessions:     cfg.Session.MaxSessions,
		ReplyDelay:      cfg.Chat.ReplyDelay,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.Chat.RateLimitPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
