package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
	"github.com/BruksfildServices01/oficina-scheduler/internal/timezone"
)

type Config struct {
	ServerPort string
	AppEnv     string
	LogLevel   string

	// -------- Oficina --------
	ShopTimezone    string
	SlotGranularity int
	DayFirstSlot    string
	DayLastSlot     string

	// -------- Dados --------
	SeedSource string

	// -------- Preferências (redis opcional) --------
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// -------- S3 (seed remoto) --------
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpointURL     string
}

// Load lê o .env (se existir) e depois o ambiente. Variáveis já definidas
// no ambiente não são sobrescritas pelo arquivo.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		AppEnv:     getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		ShopTimezone:    getEnv("SHOP_TIMEZONE", timezone.DefaultTimezone),
		SlotGranularity: getEnvInt("SLOT_GRANULARITY_MINUTES", schedule.DefaultSlotGranularity),
		DayFirstSlot:    getEnv("DAY_FIRST_SLOT", schedule.DefaultFirstSlot),
		DayLastSlot:     getEnv("DAY_LAST_SLOT", schedule.DefaultLastSlot),

		SeedSource: getEnv("SEED_SOURCE", "embedded"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		AWSRegion:          getEnv("AWS_REGION", "sa-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointURL:     getEnv("AWS_ENDPOINT_URL", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// valor inválido cai no default
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

func (c *Config) Validate() error {
	if !timezone.IsValid(c.ShopTimezone) {
		return httperr.ErrBusinessDetail("invalid_timezone", c.ShopTimezone)
	}
	if _, err := schedule.WorkingSlots(c.DayFirstSlot, c.DayLastSlot, c.SlotGranularity); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
