package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WardMate/ChatGuard/pkg/chat"
	"github.com/WardMate/ChatGuard/pkg/config"
	"github.com/WardMate/ChatGuard/pkg/heuristic"
	infraLogger "github.com/WardMate/ChatGuard/pkg/infra/logger"
	"github.com/WardMate/ChatGuard/pkg/infra/metrics"
	"github.com/WardMate/ChatGuard/pkg/infra/providers/factory"
	"github.com/WardMate/ChatGuard/pkg/moderation"
	"github.com/WardMate/ChatGuard/pkg/rules"
	"github.com/WardMate/ChatGuard/pkg/safety"
	"github.com/WardMate/ChatGuard/pkg/server"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "."
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}

	collector := metrics.NewCollector()
	collector.Register(prometheus.DefaultRegisterer)

	providerSettings, err := cfg.Moderation.ProviderSettings()
	if err != nil {
		logger.WithError(err).Fatal("invalid provider configuration")
	}

	locator := factory.NewProviderLocator()
	stages := []moderation.Stage{
		moderation.NewRulesStage(rules.NewClassifier(cfg.Moderation.MaxMessageLength)),
	}
	for _, settings := range providerSettings {
		client, err := locator.Get(settings.Provider)
		if err != nil {
			logger.WithError(err).Fatal("failed to resolve moderation provider")
		}
		stages = append(stages, moderation.NewProviderAdapter(moderation.AdapterConfig{
			Provider:      settings.Provider,
			Model:         settings.Model,
			FallbackModel: settings.FallbackModel,
			APIKey:        settings.APIKey,
			Timeout:       time.Duration(settings.TimeoutSeconds) * time.Second,
			MaxTokens:     settings.MaxTokens,
		}, client, logger, collector))
	}
	stages = append(stages, moderation.NewHeuristicStage(heuristic.NewClassifier()))

	orchestrator := moderation.NewOrchestrator(logger, collector, stages...)
	service := chat.NewService(
		orchestrator,
		safety.NewDetector(),
		chat.NewMemoryBus(cfg.Moderation.BusBuffer),
		chat.NewHistoryStore(cfg.Moderation.HistoryWindow),
		logger,
		collector,
	)

	srv := server.New(cfg, logger, server.NewChatHandler(service, logger))

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			logger.WithError(err).Error("failed to shut down server cleanly")
		}
	}()

	if err := srv.Run(); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}
