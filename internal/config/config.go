package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	FrontendURL       string `mapstructure:"FRONTEND_URL"`
	// TrustedProxies is a comma separated list of proxy IPs or CIDRs whose
	// X-Forwarded-For header is honored. Empty trusts none.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	PostgresURL   string `mapstructure:"POSTGRES_URL"`
	MongoURL      string `mapstructure:"MONGO_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// BookingStore is one of postgres, mongo or memory.
	BookingStore string `mapstructure:"BOOKING_STORE"`
	// CacheDriver is one of memory or redis.
	CacheDriver  string        `mapstructure:"CACHE_DRIVER"`
	PlanCacheTTL time.Duration `mapstructure:"PLAN_CACHE_TTL"`

	AssistantProvider string `mapstructure:"ASSISTANT_PROVIDER"`
	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel       string `mapstructure:"OPENAI_MODEL"`
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string `mapstructure:"GEMINI_MODEL"`

	// SMTP settings for booking confirmations. Mail is only logged when
	// SMTPHost is empty.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	SMTPFromName string `mapstructure:"SMTP_FROM_NAME"`
	SMTPUseSSL   bool   `mapstructure:"SMTP_USE_SSL"`

	// MailQueue is empty for inline delivery or redis to queue mail with asynq.
	MailQueue   string `mapstructure:"MAIL_QUEUE"`
	MailQueueDB int    `mapstructure:"MAIL_QUEUE_DB"`

	// PaymentProvider is one of simulated or stripe.
	PaymentProvider     string `mapstructure:"PAYMENT_PROVIDER"`
	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripePaymentMethod string `mapstructure:"STRIPE_PAYMENT_METHOD"`
}

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreMemory   = "memory"

	CacheMemory = "memory"
	CacheRedis  = "redis"

	MailQueueRedis = "redis"

	PaymentSimulated = "simulated"
	PaymentStripe    = "stripe"
)

var defaults = map[string]interface{}{
	"APP_PORT":              "8080",
	"ENV":                   "development",
	"LOG_LEVEL":             "info",
	"JWT_SECRET":            "",
	"MAX_REQUESTS_PER_MIN":  100,
	"FRONTEND_URL":          "http://localhost:5173",
	"TRUSTED_PROXIES":       "",
	"POSTGRES_URL":          "",
	"MONGO_URL":             "mongodb://localhost:27017",
	"MONGO_DATABASE":        "globetrotter",
	"REDIS_ADDR":            "localhost:6379",
	"REDIS_PASSWORD":        "",
	"REDIS_DB":              0,
	"BOOKING_STORE":         StoreMemory,
	"CACHE_DRIVER":          CacheMemory,
	"PLAN_CACHE_TTL":        "2h",
	"ASSISTANT_PROVIDER":    "",
	"OPENAI_API_KEY":        "",
	"OPENAI_MODEL":          "gpt-4o-mini",
	"GEMINI_API_KEY":        "",
	"GEMINI_MODEL":          "gemini-1.5-flash",
	"SMTP_HOST":             "",
	"SMTP_PORT":             587,
	"SMTP_USERNAME":         "",
	"SMTP_PASSWORD":         "",
	"SMTP_FROM":             "no-reply@globetrotter.local",
	"SMTP_FROM_NAME":        "Globe Trotter",
	"SMTP_USE_SSL":          false,
	"MAIL_QUEUE":            "",
	"MAIL_QUEUE_DB":         1,
	"PAYMENT_PROVIDER":      PaymentSimulated,
	"STRIPE_SECRET_KEY":     "",
	"STRIPE_PAYMENT_METHOD": "pm_card_visa",
}

// Load reads .env (if present), an optional config.yaml and the process
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.BookingStore = strings.ToLower(strings.TrimSpace(c.BookingStore))
	c.CacheDriver = strings.ToLower(strings.TrimSpace(c.CacheDriver))
	c.AssistantProvider = strings.ToLower(strings.TrimSpace(c.AssistantProvider))
	c.PaymentProvider = strings.ToLower(strings.TrimSpace(c.PaymentProvider))
	c.MailQueue = strings.ToLower(strings.TrimSpace(c.MailQueue))

	if c.PostgresURL == "" {
		return errors.New("POSTGRES_URL is required")
	}
	switch c.BookingStore {
	case StorePostgres, StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("unsupported BOOKING_STORE %q: use postgres, mongo or memory", c.BookingStore)
	}
	switch c.CacheDriver {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER %q: use memory or redis", c.CacheDriver)
	}
	switch c.AssistantProvider {
	case "", "openai", "gemini":
	default:
		return fmt.Errorf("unsupported ASSISTANT_PROVIDER %q: use openai or gemini", c.AssistantProvider)
	}
	if c.PlanCacheTTL <= 0 {
		return fmt.Errorf("PLAN_CACHE_TTL must be positive, got %s", c.PlanCacheTTL)
	}
	if c.PaymentProvider == "" {
		c.PaymentProvider = PaymentSimulated
	}
	switch c.PaymentProvider {
	case PaymentSimulated:
	case PaymentStripe:
		if c.StripeSecretKey == "" {
			return errors.New("STRIPE_SECRET_KEY is required when PAYMENT_PROVIDER=stripe")
		}
	default:
		return fmt.Errorf("unsupported PAYMENT_PROVIDER %q: use simulated or stripe", c.PaymentProvider)
	}
	if c.MailQueue != "" && c.MailQueue != MailQueueRedis {
		return fmt.Errorf("unsupported MAIL_QUEUE %q: leave empty or use redis", c.MailQueue)
	}
	if c.SMTPHost != "" && (c.SMTPPort <= 0 || c.SMTPFrom == "") {
		return errors.New("SMTP_PORT and SMTP_FROM are required when SMTP_HOST is set")
	}
	if c.MaxRequestsPerMin <= 0 {
		return fmt.Errorf("MAX_REQUESTS_PER_MIN must be positive, got %d", c.MaxRequestsPerMin)
	}
	for _, p := range c.TrustedProxyList() {
		if net.ParseIP(p) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(p); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", p)
		}
	}
	return nil
}

// TrustedProxyList splits TrustedProxies, dropping blank entries. A nil
// result means no proxy is trusted.
func (c *Config) TrustedProxyList() []string {
	var out []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
