package gin_interface

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/infrastructure/gin_interface/controllers"
	"rapper-ai/infrastructure/gin_interface/dto"
	"rapper-ai/infrastructure/gin_interface/web"
	"rapper-ai/middleware"
)

// NewRouter builds the engine with the page templates loaded, request logging,
// panic recovery and JSON bodies for unknown routes and wrong methods.
func NewRouter(logger outbound.LoggerPort, routes ...controllers.Controller) (*gin.Engine, error) {
	router := gin.New()

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(templates)

	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	})

	for _, route := range routes {
		route.RegisterRoutes(router)
	}

	return router, nil
}
