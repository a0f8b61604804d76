package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultAuthSecret es el secreto de desarrollo; en producción no se acepta.
const DefaultAuthSecret = "dev-secret-change-me"

// Config agrupa la configuración del servicio. Se lee de un YAML opcional
// y las variables de entorno tienen prioridad.
type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"5s" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"1m" yaml:"idleTimeout"`
		MetricsPath       string        `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// DSN vacío => storage in-memory con datos de demo.
	Database struct {
		DSN             string        `env:"DB_DSN" yaml:"dsn"`
		MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"10" yaml:"maxOpenConns"`
		MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5" yaml:"maxIdleConns"`
		ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"30m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" env-default:"5m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	Auth struct {
		// Secreto HS256 de los tokens de sesión.
		Secret string        `env:"AUTH_SECRET" env-default:"dev-secret-change-me" yaml:"secret"`
		TTL    time.Duration `env:"AUTH_TTL" env-default:"30m" yaml:"ttl"`
		// DevHeaders habilita X-Debug-User-ID / X-Debug-User-Role (solo dev).
		DevHeaders bool `env:"AUTH_DEV_HEADERS" env-default:"false" yaml:"devHeaders"`
	} `yaml:"auth"`

	Log struct {
		Level  string `env:"LOG_LEVEL" env-default:"info" yaml:"level"`
		Format string `env:"LOG_FORMAT" env-default:"text" yaml:"format"`
	} `yaml:"log"`

	Platform struct {
		Name               string `env:"PLATFORM_NAME" env-default:"Online Pet Adoption Platform" yaml:"name"`
		MaxApplicationDays int    `env:"MAX_APPLICATION_DAYS" env-default:"30" yaml:"maxApplicationDays"`
	} `yaml:"platform"`

	Jobs struct {
		// Cada cuánto se registran los conteos de usuarios y mascotas.
		SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" env-default:"30s" yaml:"snapshotInterval"`
	} `yaml:"jobs"`

	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"`
}

// Load lee el YAML en configPath si existe; si no, solo variables de entorno.
// PORT (convención de PaaS) pisa HTTP_ADDR.
func Load(configPath string) (*Config, error) {
	var cfg Config

	configPath = strings.TrimSpace(configPath)
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return nil, fmt.Errorf("could not read config: %w", err)
			}
			applyPort(&cfg)
			return &cfg, cfg.validate()
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not stat config: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read env config: %w", err)
	}
	applyPort(&cfg)
	return &cfg, cfg.validate()
}

func applyPort(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.HTTP.Addr = ":" + v
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth secret is required")
	}
	if c.Auth.TTL <= 0 {
		return errors.New("auth ttl must be positive")
	}
	if c.IsProduction() && c.Auth.Secret == DefaultAuthSecret {
		return errors.New("auth secret must be set in production")
	}
	return nil
}

// IsProduction indica si el entorno es producción.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}
