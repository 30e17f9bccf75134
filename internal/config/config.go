package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Database    DatabaseConfig
}

// DatabaseConfig holds database configuration.
// Host, User, Password and Name have no defaults: a missing value fails
// configuration loading instead of producing a broken connection string.
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN builds the MySQL connection string.
// parseTime makes DATETIME columns scan into time.Time.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("MYSQL_PORT", "3306")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 25)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Database: DatabaseConfig{
			Host:         viper.GetString("MYSQL_HOST"),
			Port:         viper.GetString("MYSQL_PORT"),
			User:         viper.GetString("MYSQL_USER"),
			Password:     viper.GetString("MYSQL_PASSWORD"),
			Name:         viper.GetString("MYSQL_DATABASE"),
			MaxOpenConns: viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: viper.GetInt("DB_MAX_IDLE_CONNS"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate ensures the required database settings are present
func (c *Config) validate() error {
	var missing []string

	if c.Database.Host == "" {
		missing = append(missing, "MYSQL_HOST")
	}
	if c.Database.User == "" {
		missing = append(missing, "MYSQL_USER")
	}
	if c.Database.Password == "" {
		missing = append(missing, "MYSQL_PASSWORD")
	}
	if c.Database.Name == "" {
		missing = append(missing, "MYSQL_DATABASE")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// IsProduction returns true when running with the production environment setting
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
