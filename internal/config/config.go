package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Development bool
	// API configuration
	APIPort        int
	RateLimitRPS   int
	RateLimitBurst int

	// Token API configuration
	TokenAPIURL     string
	TokenAPITimeout time.Duration

	// Wallet provider configuration
	WalletProviderURL string

	// Token form variants
	FixedDecimals      bool
	ImageRequired      bool
	MaxImageBytes      int64
	NotificationWindow int

	// Telegram mirror configuration
	TelegramBotToken string
	TelegramChatID   string

	// SMTP configuration
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	SMTPSender    string
	SMTPRecipient string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Development:    getEnvAsBool("DEVELOPMENT", false),
		APIPort:        getEnvAsInt("API_PORT", 6532),
		RateLimitRPS:   getEnvAsInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 20),

		TokenAPIURL:     getEnv("TOKEN_API_URL", ""),
		TokenAPITimeout: getEnvAsDuration("TOKEN_API_TIMEOUT", 30*time.Second),

		WalletProviderURL: getEnv("WALLET_PROVIDER_URL", ""),

		FixedDecimals:      getEnvAsBool("TOKEN_FIXED_DECIMALS", true),
		ImageRequired:      getEnvAsBool("TOKEN_IMAGE_REQUIRED", false),
		MaxImageBytes:      int64(getEnvAsInt("TOKEN_MAX_IMAGE_BYTES", 5<<20)),
		NotificationWindow: getEnvAsInt("NOTIFICATION_HISTORY", 50),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),

		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPSender:    getEnv("SMTP_SENDER", ""),
		SMTPRecipient: getEnv("SMTP_RECIPIENT", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configured values are usable.
// A missing TOKEN_API_URL is not an error here: the service still starts
// and every submission fails until it is set.
func (c *Config) Validate() error {
	if c.APIPort <= 0 || c.APIPort > 65535 {
		return fmt.Errorf("API_PORT must be between 1 and 65535, got %d", c.APIPort)
	}

	if c.TokenAPITimeout <= 0 {
		return fmt.Errorf("TOKEN_API_TIMEOUT must be positive")
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("TOKEN_MAX_IMAGE_BYTES must be positive")
	}

	if c.NotificationWindow <= 0 {
		return fmt.Errorf("NOTIFICATION_HISTORY must be positive")
	}

	return nil
}

// TelegramEnabled reports whether notifications are mirrored to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// EmailEnabled reports whether error notifications are mailed to an operator.
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPRecipient != ""
}

// Helper functions to read environment variables
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultValue time.Duration) time.Duration {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
