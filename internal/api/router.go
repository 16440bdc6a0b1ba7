package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	iauth "github.com/elsmrh/sami-yaya/internal/auth"
	"github.com/elsmrh/sami-yaya/internal/handlers"
	"github.com/elsmrh/sami-yaya/internal/middleware"
	"github.com/elsmrh/sami-yaya/internal/notify"
	"github.com/elsmrh/sami-yaya/internal/services"
	"github.com/elsmrh/sami-yaya/internal/wishes"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(db *gorm.DB, sessions *iauth.SessionService, notifier *notify.Notifier, wishSvc *wishes.Service) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session service must be provided")
	}

	rsvpSvc, err := services.NewRsvpService(db)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())

	// Operational endpoints (public)
	r.GET("/health", handlers.Health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rsvpHandler := handlers.NewRsvpHandler(rsvpSvc, notifier)
	authHandler := handlers.NewAuthHandler(sessions)
	wishHandler := handlers.NewWishHandler(wishSvc)

	api := r.Group("/api")

	// Public routes
	api.POST("/rsvp", rsvpHandler.Submit)
	api.POST("/login", authHandler.Login)
	api.POST("/wish", wishHandler.Suggest)

	// Protected routes
	admin := api.Group("")
	admin.Use(middleware.Auth(sessions))
	admin.POST("/logout", authHandler.Logout)
	admin.GET("/rsvps", rsvpHandler.List)
	admin.DELETE("/rsvps/:id", rsvpHandler.Delete)

	return r, nil
}
