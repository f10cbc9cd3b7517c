package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the explicit configuration object for the whole application.
// It is parsed once at startup and handed to the components that need it;
// nothing reads process environment at request time.
type Config struct {
	AppEnv       string `env:"APP_ENV" envDefault:"prod"`
	AppHost      string `env:"APP_HOST" envDefault:"localhost"`
	AppPort      string `env:"APP_PORT" envDefault:"4000"`
	PublicDomain string `env:"PUBLIC_DOMAIN" envDefault:"http://localhost:4000"`

	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBName     string `env:"DB_NAME"`

	CacheHost     string `env:"CACHE_HOST" envDefault:"localhost"`
	CachePort     int    `env:"CACHE_PORT" envDefault:"6379"`
	CachePassword string `env:"CACHE_PASSWORD"`

	// Checkout is the hosted payment processor the billing flow proxies to.
	CheckoutSecretKey  string `env:"CHECKOUT_SECRET_KEY"`
	CheckoutAPIBaseURL string `env:"CHECKOUT_API_BASE_URL" envDefault:"https://api.stripe.com"`

	// Dream demo LLM endpoint. The key is optional: without it the demo page
	// renders a configuration notice instead of calling out.
	DreamAPIKey     string `env:"DREAM_API_KEY"`
	DreamAPIBaseURL string `env:"DREAM_API_BASE_URL" envDefault:"https://open.bigmodel.cn/api/paas/v4"`
	DreamModel      string `env:"DREAM_MODEL" envDefault:"glm-4"`
}

func (c Config) IsDev() bool {
	return c.AppEnv == "dev"
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// DSN builds the MySQL data source name for GORM.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// MigrateURL builds the database URL for golang-migrate.
func (c Config) MigrateURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Validate reports missing required settings as one boot-time error instead
// of letting them surface as runtime failures mid-request.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.DBUser) == "" {
		missing = append(missing, "DB_USER")
	}
	if strings.TrimSpace(c.DBName) == "" {
		missing = append(missing, "DB_NAME")
	}
	if strings.TrimSpace(c.CheckoutSecretKey) == "" {
		missing = append(missing, "CHECKOUT_SECRET_KEY")
	}
	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}
	return nil
}

// Load reads an optional .env file and parses the environment into a Config.
// The .env file is a convenience for local development; in containers the
// variables come from the process environment directly.
func Load() (Config, error) {
	for _, envFile := range []string{".env", "../../.env", "../../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
