package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"

	"telegram-productivity-bot/internal/adapters"
	"telegram-productivity-bot/internal/bot"
	"telegram-productivity-bot/internal/config"
	"telegram-productivity-bot/internal/storage"
	"telegram-productivity-bot/internal/telegram"
)

func Main() {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)
	if err := run(logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(logger *log.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	ctx := context.Background()

	var backend adapters.TaskBackend
	switch cfg.StorageBackend {
	case config.BackendFirestore:
		fireClient, err := firestore.NewClient(ctx, cfg.FirestoreProject)
		if err != nil {
			return fmt.Errorf("create firestore client: %w", err)
		}
		defer func() {
			if err := fireClient.Close(); err != nil {
				logger.Printf("close firestore client: %v", err)
			}
		}()
		backend = storage.NewFirestoreStore(fireClient)
		logger.Printf("task storage: firestore (project %s)", cfg.FirestoreProject)
	default:
		backend = storage.NewMemoryStore()
		logger.Printf("task storage: in-memory (tasks are lost on restart)")
	}

	tgClient := telegram.NewClient(cfg.TelegramBotToken)
	botID, err := telegram.BotIDFromToken(cfg.TelegramBotToken)
	if err != nil {
		return fmt.Errorf("parse bot token: %w", err)
	}

	service := bot.NewService(
		logger,
		tgClient,
		adapters.NewTaskStore(backend),
		cfg.WebhookSecret,
		botID,
	)

	if cfg.AutoSetWebhook {
		autoSetWebhook(ctx, logger, tgClient, cfg.BotBaseURL, cfg.WebhookSecret)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/webhook/", service.WebhookHandler)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		<-sigCh

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
		close(shutdownDone)
	}()

	logger.Printf("bot server listening on %s", httpServer.Addr)
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	<-shutdownDone
	logger.Printf("shutdown complete")
	return nil
}

func autoSetWebhook(ctx context.Context, logger *log.Logger, client *telegram.Client, baseURL, secret string) {
	if baseURL == "" {
		logger.Printf("AUTO_SET_WEBHOOK=true but BOT_BASE_URL is empty; skipping")
		return
	}

	webhookURL, err := telegram.BuildWebhookURL(baseURL, secret)
	if err != nil {
		logger.Printf("build webhook URL failed: %v", err)
		return
	}

	setCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := client.SetWebhook(setCtx, webhookURL); err != nil {
		logger.Printf("set webhook failed: %v", err)
		return
	}
	logger.Printf("webhook set to %s", webhookURL)
}
