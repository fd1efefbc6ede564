package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// допустимые алгоритмы подписи JWT
var allowedAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS512": {},
}

type AppConfig struct {
	ServerAddr     string         `yaml:"serverAddr" env:"SERVER_ADDR" env-default:":8000"`
	PublicBaseURL  string         `yaml:"publicBaseURL" env:"PUBLIC_BASE_URL"`
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	S3Config       S3Config       `yaml:"s3Config"`
	JWT            JWTConfig      `yaml:"jwt"`
	Mail           MailConfig     `yaml:"mail"`
	Log            LogConfig      `yaml:"log"`
	TTL            TTL            `yaml:"TTL"`
	Security       SecurityConfig `yaml:"security"`
}

// LoadConfig : читает yaml (если файл есть), затем .env и переменные окружения поверх него.
// Пустой path означает конфигурацию только из окружения
func LoadConfig(path string) (*AppConfig, error) {
	var cfg AppConfig

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if len(bytes.TrimSpace(file)) > 0 {
			if err := yaml.Unmarshal(file, &cfg); err != nil {
				return nil, fmt.Errorf("ошибка разбора %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения .env: %w", err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate : проверки, которые должны падать на старте, а не на первом запросе.
// PublicBaseURL (адрес для ссылок в письмах) приводится к виду со слэшем на конце
func (c *AppConfig) Validate() error {
	if _, ok := allowedAlgorithms[c.JWT.Algorithm]; !ok {
		return fmt.Errorf("jwt.algorithm должен быть HS256 или HS512, получено %q", c.JWT.Algorithm)
	}
	if c.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key не задан")
	}

	if c.PublicBaseURL != "" {
		parsed, err := url.Parse(c.PublicBaseURL)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return fmt.Errorf("publicBaseURL должен быть абсолютным http(s) адресом, получено %q", c.PublicBaseURL)
		}
		c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/") + "/"
	}

	durations := map[string]time.Duration{
		"jwt.access_token_ttl":  c.JWT.AccessTokenTTL,
		"jwt.refresh_token_ttl": c.JWT.RefreshTokenTTL,
		"jwt.email_token_ttl":   c.JWT.EmailTokenTTL,
		"TTL.session":           c.TTL.Session,
	}
	for name, value := range durations {
		if value <= 0 {
			return fmt.Errorf("%s должен быть положительным", name)
		}
	}

	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
