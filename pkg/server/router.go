package server

import (
	"github.com/gin-gonic/gin"

	"people-api/internal/handlers"
)

// NewRouter builds the gin engine shared by the standalone server and the
// Lambda adapter, so both deployments serve identical routes.
func NewRouter(container *Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handlers.SetupMiddleware(router)
	handlers.SetupRoutes(router, &handlers.RouterConfig{
		PersonService: container.PersonService,
	})

	return router
}
