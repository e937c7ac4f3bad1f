package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
)

type Config struct {
	Port             string
	TelegramBotToken string
	WebhookSecret    string

	StorageBackend   string
	FirestoreProject string

	AutoSetWebhook bool
	BotBaseURL     string
}

func Load() (Config, error) {
	autoSetWebhook, err := parseBoolEnv("AUTO_SET_WEBHOOK", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		WebhookSecret:    os.Getenv("WEBHOOK_SECRET"),
		StorageBackend:   strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		FirestoreProject: os.Getenv("FIRESTORE_PROJECT_ID"),
		AutoSetWebhook:   autoSetWebhook,
		BotBaseURL:       getEnv("BOT_BASE_URL", ""),
	}

	if cfg.TelegramBotToken == "" {
		return Config{}, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.WebhookSecret == "" {
		return Config{}, fmt.Errorf("WEBHOOK_SECRET is required")
	}
	switch cfg.StorageBackend {
	case BackendMemory:
	case BackendFirestore:
		if cfg.FirestoreProject == "" {
			return Config{}, fmt.Errorf("FIRESTORE_PROJECT_ID is required when STORAGE_BACKEND=firestore")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_BACKEND %q: expected %q or %q", cfg.StorageBackend, BackendMemory, BackendFirestore)
	}
	if cfg.AutoSetWebhook && cfg.BotBaseURL == "" {
		return Config{}, fmt.Errorf("BOT_BASE_URL is required when AUTO_SET_WEBHOOK is enabled")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}
