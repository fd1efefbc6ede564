package config

import (
	"time"
)

type DatabaseConfig struct {
	DSN         string `yaml:"dsn" env:"DB_URL" env-required:"true"`
	AutoMigrate bool   `yaml:"autoMigrate" env:"DB_AUTO_MIGRATE"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	Timeout  time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT" env-default:"2s"`
}

type S3Config struct {
	Bucket        string `yaml:"bucket" env:"S3_BUCKET" env-default:"avatars"`
	Region        string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	Endpoint      string `yaml:"endpoint" env:"S3_ENDPOINT"`
	PublicBaseURL string `yaml:"publicBaseURL" env:"S3_PUBLIC_BASE_URL"`
	AccessKey     string `yaml:"accessKey" env:"S3_ACCESS_KEY" env-default:"minioadmin"`
	SecretKey     string `yaml:"secretKey" env:"S3_SECRET_KEY" env-default:"minioadmin"`
	Local         bool   `yaml:"local" env:"S3_LOCAL"`
}

type JWTConfig struct {
	SecretKey       string        `yaml:"secret_key" env:"SECRET_KEY_JWT" env-required:"true"`
	Algorithm       string        `yaml:"algorithm" env:"ALGORITHM" env-default:"HS256"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"16m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"168h"`
	EmailTokenTTL   time.Duration `yaml:"email_token_ttl" env:"EMAIL_TOKEN_TTL" env-default:"48h"`
}

type MailConfig struct {
	Addr     string        `yaml:"addr" env:"MAIL_ADDR" env-default:"localhost:25"`
	User     string        `yaml:"user" env:"MAIL_USERNAME"`
	Password string        `yaml:"password" env:"MAIL_PASSWORD"`
	From     string        `yaml:"from" env:"MAIL_FROM" env-default:"system@app.com"`
	UseTLS   bool          `yaml:"useTLS" env:"MAIL_USE_TLS"`
	Timeout  time.Duration `yaml:"timeout" env:"MAIL_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
	Env    string `yaml:"env" env:"ENV" env-default:"local"`
}

// TTL : время жизни кэша сессий и таймаут обращения к нему
type TTL struct {
	Session      time.Duration `yaml:"session" env:"SESSION_TTL" env-default:"300s"`
	CacheTimeout time.Duration `yaml:"cacheTimeout" env:"CACHE_TIMEOUT" env-default:"500ms"`
}

// SecurityConfig : X-Forwarded-For и X-Real-IP принимаются только от TrustedProxies
type SecurityConfig struct {
	BannedNetworks   []string `yaml:"bannedNetworks" env:"BANNED_NETWORKS" env-separator:","`
	BannedUserAgents []string `yaml:"bannedUserAgents" env:"BANNED_USER_AGENTS" env-separator:"," env-default:"yandexbot,yandex-bot"`
	CORSOrigins      []string `yaml:"corsOrigins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
	TrustedProxies   []string `yaml:"trustedProxies" env:"TRUSTED_PROXIES" env-separator:","`
}
