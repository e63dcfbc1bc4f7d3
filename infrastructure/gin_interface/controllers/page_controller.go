package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"rapper-ai/domain"
)

const indexTemplate = "index.html.tmpl"

type PageController interface {
	Index(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type pageController struct {
	personas *domain.PersonaCatalog
	static   http.FileSystem
}

// NewPageController serves the form page and its static assets. The engine
// it is registered on must have the page templates loaded.
func NewPageController(personas *domain.PersonaCatalog, static http.FileSystem) PageController {
	return &pageController{
		personas: personas,
		static:   static,
	}
}

func (p *pageController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, gin.H{
		"Personas":       p.personas.All(),
		"DefaultPersona": domain.DefaultPersonaID,
	})
}

func (p *pageController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (p *pageController) RegisterRoutes(g *gin.Engine) {
	g.GET("/", p.Index)
	g.GET("/health", p.Health)
	g.StaticFS("/static", p.static)
}
