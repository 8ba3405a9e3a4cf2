// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gurkanbulca/tasktracker/internal/database"
	"github.com/gurkanbulca/tasktracker/internal/middleware"
)

const defaultJWTSecret = "dev-access-secret-change-in-production"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Security SecurityConfig `mapstructure:"security"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
	Limits   LimitsConfig   `mapstructure:"limits"`
}

type ServerConfig struct {
	GRPCPort         string `mapstructure:"grpc_port"`
	HTTPPort         string `mapstructure:"http_port"`
	Environment      string `mapstructure:"environment"`
	AutoMigrate      bool   `mapstructure:"auto_migrate"`
	EnableReflection bool   `mapstructure:"enable_reflection"`
}

type DatabaseConfig struct {
	Driver     string `mapstructure:"driver"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	DBName     string `mapstructure:"name"`
	SSLMode    string `mapstructure:"ssl_mode"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type JWTConfig struct {
	Secret              string        `mapstructure:"secret"`
	AccessTokenDuration time.Duration `mapstructure:"access_token_duration"`
}

type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// AdminConfig describes the administrator created at startup. Leaving the
// email empty skips the bootstrap.
type AdminConfig struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// JobsConfig schedules background jobs; an empty spec disables the job
type JobsConfig struct {
	StatsSpec    string        `mapstructure:"stats_spec"`
	StatsTimeout time.Duration `mapstructure:"stats_timeout"`
}

// LimitsConfig bounds request sizes checked by the validation interceptor
type LimitsConfig struct {
	MaxTitleLength       int `mapstructure:"max_title_length"`
	MaxDescriptionLength int `mapstructure:"max_description_length"`
	MaxCategoriesPerTask int `mapstructure:"max_categories_per_task"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort:         "50051",
			HTTPPort:         "8080",
			Environment:      "development",
			AutoMigrate:      true,
			EnableReflection: true,
		},
		Database: DatabaseConfig{
			Driver:     "postgres",
			Host:       "localhost",
			Port:       5432,
			User:       "postgres",
			Password:   "postgres",
			DBName:     "tasktracker",
			SSLMode:    "disable",
			SQLitePath: "tasktracker.db",
		},
		JWT: JWTConfig{
			Secret:              defaultJWTSecret,
			AccessTokenDuration: 24 * time.Hour,
		},
		Security: SecurityConfig{
			BcryptCost: 10,
		},
		Admin: AdminConfig{
			Name: "Administrator",
		},
		Jobs: JobsConfig{
			StatsSpec:    "@every 1h",
			StatsTimeout: 30 * time.Second,
		},
		Limits: LimitsConfig{
			MaxTitleLength:       200,
			MaxDescriptionLength: 5000,
			MaxCategoriesPerTask: 20,
		},
	}
}

// Load builds the configuration from the defaults, the YAML file named by
// CONFIG_FILE if any, and finally the environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func applyEnv(cfg *Config) {
	cfg.Server.GRPCPort = getEnv("GRPC_PORT", cfg.Server.GRPCPort)
	cfg.Server.HTTPPort = getEnv("HTTP_PORT", cfg.Server.HTTPPort)
	cfg.Server.Environment = getEnv("ENVIRONMENT", cfg.Server.Environment)
	cfg.Server.AutoMigrate = getEnvAsBool("AUTO_MIGRATE", cfg.Server.AutoMigrate)
	cfg.Server.EnableReflection = getEnvAsBool("ENABLE_REFLECTION", cfg.Server.EnableReflection)

	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvAsInt("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.DBName = getEnv("DB_NAME", cfg.Database.DBName)
	cfg.Database.SSLMode = getEnv("DB_SSL_MODE", cfg.Database.SSLMode)
	cfg.Database.SQLitePath = getEnv("DB_SQLITE_PATH", cfg.Database.SQLitePath)

	cfg.JWT.Secret = getEnv("JWT_SECRET", cfg.JWT.Secret)
	cfg.JWT.AccessTokenDuration = getEnvAsDuration("JWT_ACCESS_TOKEN_DURATION", cfg.JWT.AccessTokenDuration)

	cfg.Security.BcryptCost = getEnvAsInt("BCRYPT_COST", cfg.Security.BcryptCost)

	cfg.Admin.Name = getEnv("ADMIN_NAME", cfg.Admin.Name)
	cfg.Admin.Email = getEnv("ADMIN_EMAIL", cfg.Admin.Email)
	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", cfg.Admin.Password)

	cfg.Jobs.StatsSpec = getEnv("STATS_CRON", cfg.Jobs.StatsSpec)
	cfg.Jobs.StatsTimeout = getEnvAsDuration("STATS_TIMEOUT", cfg.Jobs.StatsTimeout)

	cfg.Limits.MaxTitleLength = getEnvAsInt("MAX_TITLE_LENGTH", cfg.Limits.MaxTitleLength)
	cfg.Limits.MaxDescriptionLength = getEnvAsInt("MAX_DESCRIPTION_LENGTH", cfg.Limits.MaxDescriptionLength)
	cfg.Limits.MaxCategoriesPerTask = getEnvAsInt("MAX_CATEGORIES_PER_TASK", cfg.Limits.MaxCategoriesPerTask)
}

// ValidateConfig rejects configurations the server cannot run with
func (c *Config) ValidateConfig() error {
	var errs []error

	if c.Server.GRPCPort == "" {
		errs = append(errs, errors.New("grpc port is required"))
	}
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.DBName == "" {
			errs = append(errs, errors.New("postgres requires host and database name"))
		}
	case "sqlite3":
		if c.Database.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite3 requires a database path"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.Database.Driver))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt secret is required"))
	}
	if !c.IsDevelopment() && c.JWT.Secret == defaultJWTSecret {
		errs = append(errs, errors.New("jwt secret must be changed outside development"))
	}
	if c.JWT.AccessTokenDuration <= 0 {
		errs = append(errs, errors.New("access token duration must be positive"))
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		errs = append(errs, errors.New("admin password is required when admin email is set"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Environment, "development")
}

// ToDatabaseConfig converts the database section for database.Open
func (c *Config) ToDatabaseConfig() database.Config {
	return database.Config{
		Driver:     c.Database.Driver,
		Host:       c.Database.Host,
		Port:       c.Database.Port,
		User:       c.Database.User,
		Password:   c.Database.Password,
		DBName:     c.Database.DBName,
		SSLMode:    c.Database.SSLMode,
		SQLitePath: c.Database.SQLitePath,
		Debug:      c.IsDevelopment(),
	}
}

func (c *Config) ToValidationConfig() *middleware.ValidationConfig {
	vc := middleware.DefaultValidationConfig()
	if c.Limits.MaxTitleLength > 0 {
		vc.MaxTitleLength = c.Limits.MaxTitleLength
	}
	if c.Limits.MaxDescriptionLength > 0 {
		vc.MaxDescriptionLength = c.Limits.MaxDescriptionLength
	}
	if c.Limits.MaxCategoriesPerTask > 0 {
		vc.MaxCategoriesPerTask = c.Limits.MaxCategoriesPerTask
	}
	return vc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	// Try parsing as duration string (e.g., "15m", "24h")
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}

	return defaultValue
}
