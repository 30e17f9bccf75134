package server

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"people-api/internal/config"
	"people-api/internal/database"
	"people-api/internal/repositories/mysql"
	"people-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	PersonService services.PersonService

	connManager *database.ConnectionManager
	logger      *logrus.Logger
}

// NewContainer creates a new dependency injection container. It opens the
// database connection, runs schema initialization, and wires the repository
// and service layers.
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := newLogger(cfg)
	logger.WithFields(logrus.Fields{
		"deployment_mode": config.GetDeploymentMode(),
		"environment":     cfg.Environment,
	}).Info("Initializing application container")

	connConfig := database.NewConnectionConfig(cfg, logger)
	connManager := database.NewConnectionManager(connConfig)
	if err := connManager.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	personRepo := mysql.NewPersonRepository(connManager.GetDB(), logger)
	personService := services.NewPersonService(personRepo)

	return &Container{
		Config:        cfg,
		PersonService: personService,
		connManager:   connManager,
		logger:        logger,
	}, nil
}

// DB exposes the underlying connection pool for schema operations
func (c *Container) DB() *sql.DB {
	return c.connManager.GetDB()
}

// Logger returns the shared application logger
func (c *Container) Logger() *logrus.Logger {
	return c.logger
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.connManager != nil {
		if err := c.connManager.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.IsProduction() {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
