package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server wraps a gin engine and the http.Server running it.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	log    zerolog.Logger
}

func New(log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(recoveryMiddleware(log))
	engine.Use(loggingMiddleware(log))

	return &Server{
		engine: engine,
		log:    log,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// WithCORS restricts callers to the given origins. PUT is allowed alongside
// the methods the API actually serves.
func (s *Server) WithCORS(allowOrigins []string) *Server {
	config := cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	s.engine.Use(cors.New(config))
	return s
}

func (s *Server) Start(port int) error {
	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.engine,
	}

	s.log.Info().Int("port", port).Msg("Server listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
