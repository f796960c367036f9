package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Backend   BackendConfig
	Cookie    CookieConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	I18n      I18nConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.App.SiteURL = strings.TrimRight(strings.TrimSpace(cfg.App.SiteURL), "/")
	cfg.Backend.URL = strings.TrimRight(strings.TrimSpace(cfg.Backend.URL), "/")
	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("%s must not be empty", EnvBackendURL)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" default:"dev"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"4321"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
	SiteURL      string `envconfig:"STOREFRONT_SITE_URL" default:"https://skibidoo.shop"`

	ShutdownTimeout time.Duration `envconfig:"STOREFRONT_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, AppEnvProduction)
}

type BackendConfig struct {
	URL     string        `envconfig:"STOREFRONT_BACKEND_URL" default:"http://localhost:3000"`
	Timeout time.Duration `envconfig:"STOREFRONT_BACKEND_TIMEOUT" default:"10s"`
}

type CookieConfig struct {
	Name string `envconfig:"STOREFRONT_COOKIE_NAME" default:"cartId"`
	// MaxAge defaults to 30 days.
	MaxAge time.Duration `envconfig:"STOREFRONT_COOKIE_MAX_AGE" default:"720h"`
	Secure *bool         `envconfig:"STOREFRONT_COOKIE_SECURE"`
}

// SecureFor resolves the Secure flag: an explicit override wins, otherwise
// cookies are only marked secure in production.
func (c CookieConfig) SecureFor(app AppConfig) bool {
	if c.Secure != nil {
		return *c.Secure
	}
	return app.IsProd()
}

// RedisConfig is optional. Leaving both URL and address empty disables the
// catalog cache and rate limiting.
type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type CacheConfig struct {
	CatalogTTL time.Duration `envconfig:"STOREFRONT_CACHE_CATALOG_TTL" default:"1h"`
}

type RateLimitConfig struct {
	Window        time.Duration `envconfig:"STOREFRONT_RATE_LIMIT_WINDOW" default:"1m"`
	CheckoutLimit int           `envconfig:"STOREFRONT_RATE_LIMIT_CHECKOUT" default:"10"`
	CartLimit     int           `envconfig:"STOREFRONT_RATE_LIMIT_CART" default:"60"`
}

type I18nConfig struct {
	DefaultLocale string `envconfig:"STOREFRONT_DEFAULT_LOCALE" default:"de"`
}
