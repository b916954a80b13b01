package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host        string   `yaml:"host"`
		Port        int      `yaml:"port"`
		Env         string   `yaml:"env"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql, sqlite
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // минуты
		Issuer string `yaml:"issuer"`
	} `yaml:"jwt"`

	Security struct {
		BcryptCost         int `yaml:"bcrypt_cost"`
		HashingConcurrency int `yaml:"hashing_concurrency"`
	} `yaml:"security"`

	Generator struct {
		Provider       string  `yaml:"provider"` // template, googleai, openai
		APIKey         string  `yaml:"api_key"`
		Model          string  `yaml:"model"`
		BaseURL        string  `yaml:"base_url"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RatePerMinute  float64 `yaml:"rate_per_minute"`
		Burst          int     `yaml:"burst"`
	} `yaml:"generator"`

	Workers struct {
		SessionCleanupMinutes int `yaml:"session_cleanup_minutes"`
	} `yaml:"workers"`
}

var AppConfig *Config

func LoadConfig() {
	// .env необязателен, его отсутствие не ошибка
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		log.Println("Loading configuration from config.yaml")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		log.Println("Loading configuration from environment variables")
		fromEnv(&cfg, dbURL)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	AppConfig = &cfg
}

func fromEnv(cfg *Config, dbURL string) {
	cfg.Database.DSN = dbURL
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL, _ = strconv.Atoi(os.Getenv("JWT_TTL_MINUTES"))

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")

	cfg.Generator.Provider = os.Getenv("GENERATOR_PROVIDER")
	cfg.Generator.APIKey = os.Getenv("GENERATOR_API_KEY")
	cfg.Generator.Model = os.Getenv("GENERATOR_MODEL")
	cfg.Generator.BaseURL = os.Getenv("GENERATOR_BASE_URL")
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.JWT.TTL <= 0 {
		c.JWT.TTL = 24 * 60
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "jobtracker"
	}
	if c.Email.FromName == "" {
		c.Email.FromName = "Job Board"
	}
	if c.Security.BcryptCost == 0 {
		c.Security.BcryptCost = 12
	}
	if c.Security.HashingConcurrency == 0 {
		c.Security.HashingConcurrency = 4
	}
	if c.Generator.Provider == "" {
		c.Generator.Provider = "template"
	}
	if c.Generator.TimeoutSeconds == 0 {
		c.Generator.TimeoutSeconds = 30
	}
	if c.Generator.RatePerMinute == 0 {
		c.Generator.RatePerMinute = 10
	}
	if c.Generator.Burst == 0 {
		c.Generator.Burst = 3
	}
	if c.Workers.SessionCleanupMinutes == 0 {
		c.Workers.SessionCleanupMinutes = 60
	}
}

// Validate - пустой секрет допустим только в development
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database url is required")
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return errors.New("database driver must be postgres, mysql or sqlite")
	}
	if c.JWT.Secret == "" {
		if c.Server.Env != "development" {
			return errors.New("jwt secret is required outside development")
		}
		c.JWT.Secret = "dev-secret-change-me"
	}
	switch c.Generator.Provider {
	case "template", "googleai", "openai":
	default:
		return errors.New("generator provider must be template, googleai or openai")
	}
	if c.Generator.Provider != "template" && c.Generator.APIKey == "" {
		return errors.New("generator api key is required for " + c.Generator.Provider)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.TTL) * time.Minute
}

func (c *Config) GeneratorTimeout() time.Duration {
	return time.Duration(c.Generator.TimeoutSeconds) * time.Second
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// Defaults - конфигурация со значениями по умолчанию без чтения файла и окружения
func Defaults() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}
