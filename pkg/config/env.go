package config

const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
	// AppEnvProduction is accepted as an alias of AppEnvProd.
	AppEnvProduction = "production"
)

const (
	EnvAppEnv         = "STOREFRONT_APP_ENV"
	EnvPort           = "STOREFRONT_APP_PORT"
	EnvLogLevel       = "STOREFRONT_LOG_LEVEL"
	EnvSiteURL        = "STOREFRONT_SITE_URL"
	EnvBackendURL     = "STOREFRONT_BACKEND_URL"
	EnvBackendTimeout = "STOREFRONT_BACKEND_TIMEOUT"
	EnvCookieSecure   = "STOREFRONT_COOKIE_SECURE"
	EnvCookieMaxAge   = "STOREFRONT_COOKIE_MAX_AGE"
	EnvRedisURL       = "STOREFRONT_REDIS_URL"
	EnvCatalogTTL     = "STOREFRONT_CACHE_CATALOG_TTL"
	EnvCheckoutLimit  = "STOREFRONT_RATE_LIMIT_CHECKOUT"
	EnvDefaultLocale  = "STOREFRONT_DEFAULT_LOCALE"
)
