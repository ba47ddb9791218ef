package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// Port the HTTP API listens on
		Port string `env:"PORT" envDefault:"5320"`

		// Allowed CORS origins, comma separated
		CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	}

	// Data snapshot and lead storage
	Data struct {
		// Directory holding the exported JSON snapshot
		Dir string `env:"DATA_DIR" envDefault:"data"`

		// Path of the sqlite file for inquiries and view events
		DBPath string `env:"LEADS_DB_PATH" envDefault:"database/leads.db"`
	}

	// Contact funnel configuration
	Contact struct {
		// WhatsApp number in international format, digits only
		WhatsAppNumber string `env:"WHATSAPP_NUMBER" envDefault:"919999999999"`

		// Telegram bot credentials for inquiry alerts (optional)
		TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
		TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`

		// Contact submissions allowed per client IP per minute
		RateLimitPerMinute int `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	}

	// Inquiry batch persistence
	InquiryProcessing struct {
		// Queue buffer size in batches
		QueueSize int `env:"INQUIRY_QUEUE_SIZE" envDefault:"100"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"INQUIRY_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"INQUIRY_RETRY_DELAY" envDefault:"5"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
