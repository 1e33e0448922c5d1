// Package httpapi exposes the users and passwords resources over HTTP.
// All responses are JSON envelopes; errors are always {"error": <text>}.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lockboxapp/lockbox/internal/logging"
	"github.com/lockboxapp/lockbox/internal/server/config"
	"github.com/lockboxapp/lockbox/internal/server/passwords"
	"github.com/lockboxapp/lockbox/internal/server/storage"
	"github.com/lockboxapp/lockbox/internal/server/users"
)

type Server struct {
	config    *config.Config
	logger    logging.Logger
	store     storage.RepositoryManager
	users     *users.Service
	passwords *passwords.Service
	engine    *gin.Engine
}

func NewServer(cfg *config.Config, logger logging.Logger, store storage.RepositoryManager) *Server {
	s := &Server{
		config:    cfg,
		logger:    logger,
		store:     store,
		users:     users.NewService(store.Users()),
		passwords: passwords.NewService(store.Passwords()),
	}
	s.engine = s.buildEngine()
	return s
}

// Engine returns the configured gin engine. Exposed for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) buildEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/api/health", s.health)

	api := r.Group("/api")
	{
		api.POST("/users", s.authenticateUser)
		api.GET("/users", s.getUsers)
		api.PUT("/users", s.updateUser)
		api.DELETE("/users", s.deleteUser)
	}

	protected := r.Group("/api/passwords")
	protected.Use(BearerAuth([]byte(s.config.SecretKey)))
	{
		protected.GET("", s.listPasswords)
		protected.POST("", s.createPassword)
		protected.PUT("/:id", s.updatePassword)
		protected.DELETE("/:id", s.deletePassword)
	}

	return r
}

func (s *Server) health(c *gin.Context) {
	if db := s.store.Conn(); db != nil {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Run serves the API until ctx is canceled, then drains in-flight
// requests before returning.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.config.EndpointAddr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server starting", "addr", s.config.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
