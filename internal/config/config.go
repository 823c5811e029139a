package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store driver names accepted in configuration.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config structure represents the application configuration. Both services
// read the same structure; each one only uses the sections it needs.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Clients  ClientsConfig  `yaml:"clients"`
	Logging  LoggingConfig  `yaml:"logging"`
	Seed     bool           `yaml:"seed" env:"SEED_DATA"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            string `yaml:"port" env:"SERVER_PORT"`
	Mode            string `yaml:"mode" env:"SERVER_MODE"`
	ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds the relational store settings used by the courses service.
type DatabaseConfig struct {
	Driver          string `yaml:"driver" env:"DB_DRIVER"`
	Host            string `yaml:"host" env:"DB_HOST"`
	Port            string `yaml:"port" env:"DB_PORT"`
	User            string `yaml:"user" env:"DB_USER"`
	Password        string `yaml:"password" env:"DB_PASSWORD"`
	DBName          string `yaml:"dbname" env:"DB_NAME"`
	SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
	SQLitePath      string `yaml:"sqlite_path" env:"DB_SQLITE_PATH"`
	MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

// MongoConfig holds the document store settings used by the enrollments service.
type MongoConfig struct {
	Driver         string `yaml:"driver" env:"MONGO_DRIVER"`
	URI            string `yaml:"uri" env:"MONGO_URI"`
	Database       string `yaml:"database" env:"MONGO_DATABASE"`
	Collection     string `yaml:"collection" env:"MONGO_COLLECTION"`
	ConnectTimeout string `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT"`
}

// ClientsConfig holds the base URLs of the services the enrollments service calls.
type ClientsConfig struct {
	CoursesBaseURL  string `yaml:"courses_base_url" env:"COURSES_SERVICE_URL"`
	StudentsBaseURL string `yaml:"students_base_url" env:"STUDENTS_SERVICE_URL"`
	// Timeout bounds a single remote lookup; "0s" means no bound.
	Timeout string `yaml:"timeout" env:"CLIENTS_TIMEOUT"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL"`
	Format     string `yaml:"format" env:"LOG_FORMAT"`
	File       string `yaml:"file" env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; defaults plus environment are enough to run.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	// Listings are streamed; a write deadline would cut long streams.
	config.Server.WriteTimeout = "0s"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "courses"
	config.Database.SSLMode = "disable"
	config.Database.SQLitePath = "data/courses.db"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Mongo.Driver = DriverMongo
	config.Mongo.URI = "mongodb://localhost:27017"
	config.Mongo.Database = "enrollments"
	config.Mongo.Collection = "enrollments"
	config.Mongo.ConnectTimeout = "10s"

	config.Clients.CoursesBaseURL = "http://localhost:7003"
	config.Clients.StudentsBaseURL = "http://localhost:7002"
	config.Clients.Timeout = "0s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.MaxSizeMB = 100
	config.Logging.MaxBackups = 3
	config.Logging.MaxAgeDays = 28
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch config.Database.Driver {
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
	case DriverSQLite:
		if config.Database.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	switch config.Mongo.Driver {
	case DriverMongo:
		if config.Mongo.URI == "" {
			return fmt.Errorf("mongo uri is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported mongo driver %q", config.Mongo.Driver)
	}

	durations := map[string]string{
		"server read timeout":     config.Server.ReadTimeout,
		"server write timeout":    config.Server.WriteTimeout,
		"server shutdown timeout": config.Server.ShutdownTimeout,
		"mongo connect timeout":   config.Mongo.ConnectTimeout,
		"clients timeout":         config.Clients.Timeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

// ValidateClients checks the outbound service URLs the enrollments service needs.
func (c *Config) ValidateClients() error {
	if strings.TrimSpace(c.Clients.CoursesBaseURL) == "" {
		return fmt.Errorf("courses service base url is required")
	}
	if strings.TrimSpace(c.Clients.StudentsBaseURL) == "" {
		return fmt.Errorf("students service base url is required")
	}
	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
