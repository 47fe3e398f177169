// Package server exposes the translation service over HTTP for the
// registry's frontends.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/TanglawLabs/salin"
	"github.com/TanglawLabs/salin/pref"
)

// handlers bundles the dependencies the route handlers share.
type handlers struct {
	svc   *salin.Service
	prefs pref.Store
	log   zerolog.Logger
}

// New builds the API router. prefs may be nil when preference persistence is
// disabled; language changes then rely on the locale cookie alone.
func New(svc *salin.Service, prefs pref.Store, log zerolog.Logger) *gin.Engine {
	h := &handlers{svc: svc, prefs: prefs, log: log}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(LocaleResolver())
	r.Use(IdentityFromHeaders())

	r.GET("/health", h.health)

	lang := r.Group("/api/language")
	{
		lang.POST("/change", h.changeLanguage)
		lang.GET("/current", h.currentLanguage)
		lang.GET("/supported", h.supportedLanguages)
	}

	tr := r.Group("/api/translate")
	{
		tr.POST("", h.translate)
		tr.POST("/batch", h.translateBatch)
		tr.POST("/detect", h.detect)
		tr.POST("/section", h.translateSection)
		tr.POST("/html", h.translateHTML)
	}

	return r
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": salin.Name,
		"version": salin.Version,
	})
}
