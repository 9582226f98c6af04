package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultBaseURL    = "localhost:5000"
	defaultAuthSecret = "dev-secret-key"
	defaultDSN        = "file:alternify.db"

	EnvProduction = "production"
)

type Config struct {
	// Хранилище
	DatabaseDSN  string `env:"DATABASE_URI"`
	DatabaseName string `env:"DB_NAME" envDefault:"alternify"` // только для mongodb://

	// Сессии
	AuthSecret  string `env:"AUTH_SECRET"`
	StrictScope bool   `env:"STRICT_SCOPE"` // "мои" выборки только по email из токена

	// HTTP
	BaseURL       string   `env:"BASE_URL"`
	Port          string   `env:"PORT"`
	AppEnv        string   `env:"APP_ENV" envDefault:"development"`
	ClientOrigins []string `env:"CLIENT_ORIGINS" envSeparator:","`
	TrustProxy    bool     `env:"TRUST_PROXY"` // брать IP клиента из X-Forwarded-For/X-Real-IP

	// Платежи
	PaymentSecretKey string `env:"PAYMENT_SECRET_KEY"`
	PaymentCurrency  string `env:"PAYMENT_CURRENCY" envDefault:"usd"`
}

// IsProduction включает secure/SameSite=None у cookie сессии.
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres, file: для sqlite или mongodb://)")
	flag.StringVar(&cfg.DatabaseName, "db-name", cfg.DatabaseName, "имя базы для mongodb")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.BoolVar(&cfg.StrictScope, "strict-scope", cfg.StrictScope, "personal endpoints filter by token identity only")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "listen address host:port")
	flag.BoolVar(&cfg.TrustProxy, "trust-proxy", cfg.TrustProxy, "take client IP from proxy headers")
	flag.StringVar(&cfg.AppEnv, "env", cfg.AppEnv, "runtime environment (production|development)")
	flag.StringVar(&cfg.PaymentSecretKey, "payment-key", cfg.PaymentSecretKey, "payment provider secret key")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = defaultAuthSecret
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDSN
	}
	if cfg.BaseURL == "" && cfg.Port != "" {
		cfg.BaseURL = ":" + cfg.Port
	}
	// BaseURL: "address:port" или ":port" (без схемы и пути). Иначе дефолт.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.PaymentCurrency == "" {
		cfg.PaymentCurrency = "usd"
	}

	return cfg
}
