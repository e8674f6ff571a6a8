// Package server provides HTTP server setup and configuration.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sebasr/welcome-service/internal/config"
	"github.com/sebasr/welcome-service/internal/greeting"
	"github.com/sebasr/welcome-service/internal/handlers"
	"github.com/sebasr/welcome-service/internal/middleware"
)

// HealthPath is the liveness endpoint
const HealthPath = "/healthz"

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config  *config.Config
	Greeter greeting.Greeter // Optional: built from Config.Greeting when nil
	Logger  zerolog.Logger
	Version string
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	// Set Gin to release mode to disable ANSI colors in logs
	gin.SetMode(gin.ReleaseMode)

	// gin.Default() would add its own colored logger; access logs go through zerolog instead
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger, HealthPath))

	// Add CORS middleware for browser clients
	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORS.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.NewRateLimit(deps.Config.RateLimit.Limit, deps.Config.RateLimit.Period, HealthPath))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET(HealthPath, handlers.HealthHandler(deps.Version))

	greeter := deps.Greeter
	if greeter == nil {
		greeter = greeting.NewRouter(greeting.WithEscaping(deps.Config.Greeting.EscapeNames))
	}
	handlers.NewGreetingHandler(greeter).Mount(router, deps.Config.Greeting.Prefix)

	return router
}

// Run serves handler on addr until ctx is cancelled, then shuts down
// gracefully, waiting at most shutdownTimeout for in-flight requests.
func Run(ctx context.Context, handler http.Handler, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return fmt.Errorf("failed to serve on %s: %w", addr, err)
	}
}
