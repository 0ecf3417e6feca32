package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/middleware"
	"github.com/recipebox/backend/internal/router"
	"github.com/recipebox/backend/internal/service"
)

// Server wraps the HTTP server and the application router.
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New creates a new server instance. Redis and object storage are optional;
// the corresponding features are disabled when they are nil.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, storage service.ObjectUploader) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.Setup(db, cfg.JWTSecret, router.Options{
		Redis:          redisClient,
		Storage:        storage,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: middleware.ErrorHandler(engine),
		},
	}
}

// Start runs the server until Shutdown is called.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
