package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Server modes
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port" env:"SERVER_PORT"`
		Mode          string `yaml:"mode" env:"SERVER_MODE"`
		HTTPSPort     string `yaml:"https_port" env:"SERVER_HTTPS_PORT"`
		TLSCertFile   string `yaml:"tls_cert_file" env:"SERVER_TLS_CERT_FILE"`
		TLSKeyFile    string `yaml:"tls_key_file" env:"SERVER_TLS_KEY_FILE"`
		HSTSMaxAge    string `yaml:"hsts_max_age" env:"SERVER_HSTS_MAX_AGE"`
		StaticEnabled bool   `yaml:"static_enabled" env:"SERVER_STATIC_ENABLED"`
	} `yaml:"server"`

	Database struct {
		Driver           string `yaml:"driver" env:"DB_DRIVER"`
		Host             string `yaml:"host" env:"DB_HOST"`
		Port             string `yaml:"port" env:"DB_PORT"`
		User             string `yaml:"user" env:"DB_USER"`
		Password         string `yaml:"password" env:"DB_PASSWORD"`
		DBName           string `yaml:"dbname" env:"DB_NAME"`
		SSLMode          string `yaml:"sslmode" env:"DB_SSLMODE"`
		ConnectionString string `yaml:"connection_string" env:"DB_CONNECTION_STRING"`
		MaxIdleConns     int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns     int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime  string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	config.normalize()

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = ModeDevelopment
	config.Server.HSTSMaxAge = "720h"
	config.Server.StaticEnabled = true

	config.Database.Driver = DriverMySQL
	config.Database.Host = "localhost"
	config.Database.Port = "3306"
	config.Database.User = "developer"
	config.Database.Password = "developer"
	config.Database.DBName = "saleswebmvcappdb"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Seed.Enabled = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

func (c *Config) normalize() {
	c.Server.Mode = strings.ToLower(strings.TrimSpace(c.Server.Mode))
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Server.Mode {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("server mode must be %q or %q, got %q", ModeDevelopment, ModeProduction, config.Server.Mode)
	}

	switch config.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	case "":
		return fmt.Errorf("database driver is required")
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	if config.Database.ConnectionString == "" {
		if config.Database.Driver != DriverSQLite && config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if config.Database.DBName == "" {
			return fmt.Errorf("database name is required")
		}
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime: %w", err)
	}

	if _, err := time.ParseDuration(config.Server.HSTSMaxAge); err != nil {
		return fmt.Errorf("invalid HSTS max age: %w", err)
	}

	// TLS needs both halves
	if (config.Server.TLSCertFile == "") != (config.Server.TLSKeyFile == "") {
		return fmt.Errorf("tls_cert_file and tls_key_file must be set together")
	}
	if config.Server.TLSCertFile != "" && config.Server.HTTPSPort == "" {
		return fmt.Errorf("https_port is required when TLS is configured")
	}

	return nil
}

// IsDevelopment reports whether detailed error output is enabled
func (c *Config) IsDevelopment() bool {
	return c.Server.Mode == ModeDevelopment
}

// TLSEnabled reports whether the HTTPS listener should be started
func (c *Config) TLSEnabled() bool {
	return c.Server.TLSCertFile != "" && c.Server.TLSKeyFile != "" && c.Server.HTTPSPort != ""
}

// ConnectionString returns the connection string for the configured driver.
// An explicit connection_string always wins.
func (c *Config) ConnectionString() string {
	if c.Database.ConnectionString != "" {
		return c.Database.ConnectionString
	}

	switch c.Database.Driver {
	case DriverPostgres:
		return c.GetPostgresConnectionString()
	case DriverSQLite:
		return c.GetSQLiteConnectionString()
	default:
		return c.GetMySQLConnectionString()
	}
}

// GetMySQLConnectionString returns a go-sql-driver/mysql DSN
func (c *Config) GetMySQLConnectionString() string {
	mcfg := mysql.NewConfig()
	mcfg.User = c.Database.User
	mcfg.Passwd = c.Database.Password
	mcfg.Net = "tcp"
	mcfg.Addr = net.JoinHostPort(c.Database.Host, c.Database.Port)
	mcfg.DBName = c.Database.DBName
	mcfg.ParseTime = true
	return mcfg.FormatDSN()
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

// GetSQLiteConnectionString returns a modernc.org/sqlite DSN for the database file.
// Foreign keys are switched on for every connection.
func (c *Config) GetSQLiteConnectionString() string {
	return SQLiteDSN(c.Database.DBName)
}

// SQLiteDSN builds the sqlite DSN used for a database file path
func SQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
