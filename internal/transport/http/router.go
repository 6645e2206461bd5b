package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/almasbek/contact-keeper/internal/transport/http/handler"
	"github.com/almasbek/contact-keeper/internal/transport/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

type tokenVerifier interface {
	Verify(raw string) (string, error)
}

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, contactHandler *handler.ContactHandler, tokens tokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	// Permissive on purpose: the browser frontend is served from a
	// different origin and the API itself is bearer-token guarded.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Contact Keeper API is running")
	})

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected contact routes
	contacts := r.Group("/contacts", middleware.Auth(tokens))
	contacts.POST("", contactHandler.Create)
	contacts.GET("", contactHandler.List)
	contacts.GET("/:id", contactHandler.GetByID)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	return r
}
