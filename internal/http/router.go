package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cimar/ecare-legends/internal/http/middleware"
)

// NewRouter wires the gin engine. The dashboard frontend is served from a
// different origin, so CORS stays wide open.
func NewRouter(h *Handler, log zerolog.Logger, environment string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.Default())

	h.Register(router)
	return router
}
