package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB connection string for the booking archive.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisTicketDB    int    `mapstructure:"REDIS_TICKET_DB"`
	RedisSchedulerDB int    `mapstructure:"REDIS_SCHEDULER_DB"`

	// Gemini API key for the NLU oracle.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// WhatsApp Cloud API credentials.
	WhatsAppToken       string `mapstructure:"WHATSAPP_TOKEN"`
	WhatsAppPhoneID     string `mapstructure:"WHATSAPP_PHONE_ID"`
	WhatsAppVerifyToken string `mapstructure:"WHATSAPP_VERIFY_TOKEN"`

	// Conversation engine tuning.
	SessionTTLMinutes    int `mapstructure:"SESSION_TTL_MINUTES"`
	SweepIntervalMinutes int `mapstructure:"SWEEP_INTERVAL_MINUTES"`
	MaxRetries           int `mapstructure:"MAX_RETRIES"`
	NLUTimeoutSeconds    int `mapstructure:"NLU_TIMEOUT_SECONDS"`

	// Ticket cache backend: "redis" or "file".
	TicketCacheBackend  string `mapstructure:"TICKET_CACHE_BACKEND"`
	TicketCacheDir      string `mapstructure:"TICKET_CACHE_DIR"`
	TicketCacheTTLHours int    `mapstructure:"TICKET_CACHE_TTL_HOURS"`

	// Reference data files.
	CitiesFile  string `mapstructure:"CITIES_FILE"`
	FlightsFile string `mapstructure:"FLIGHTS_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_TICKET_DB", 1)
	viper.SetDefault("REDIS_SCHEDULER_DB", 2)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("WHATSAPP_TOKEN", "")
	viper.SetDefault("WHATSAPP_PHONE_ID", "")
	viper.SetDefault("WHATSAPP_VERIFY_TOKEN", "flywise-verify")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("SWEEP_INTERVAL_MINUTES", 5)
	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("NLU_TIMEOUT_SECONDS", 10)
	viper.SetDefault("TICKET_CACHE_BACKEND", "redis")
	viper.SetDefault("TICKET_CACHE_DIR", "/tmp/flywise_tickets")
	viper.SetDefault("TICKET_CACHE_TTL_HOURS", 24)
	viper.SetDefault("CITIES_FILE", "data/cities.json")
	viper.SetDefault("FLIGHTS_FILE", "data/flights.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
