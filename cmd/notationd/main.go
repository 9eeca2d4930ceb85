// The notationd command serves expression conversion and
// evaluation over HTTP.
//
// It reads its configuration from the YAML file named by
// $CONFIG_FILE_PATH, if set. API keys may also be given,
// comma separated, in $NOTATIOND_API_KEYS.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rogpeppe/notation/cmd/notationd/apihandlers"
	"github.com/rogpeppe/notation/config"
	"github.com/rogpeppe/notation/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("cannot load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	_, closer := logging.Init(cfg.Logging, os.Stdout)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serve(ctx, cfg); err != nil {
		slog.Error("exited notationd", slog.String("error", err.Error()))
		closer.Close()
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.ServerDefault()
	if path := os.Getenv(config.EnvConfigFilePath); path != "" {
		if err := cfg.ReadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.OverrideFromEnv(os.Getenv)
	return cfg, nil
}

// serve runs the server until ctx is done, then gives
// outstanding requests shutdownTimeout to finish.
func serve(ctx context.Context, cfg *config.Config) error {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: newRouter(cfg.Server),
	}
	errc := make(chan error, 1)
	go func() {
		slog.Info("starting notationd", slog.String("port", cfg.Server.Port))
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down notationd")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newRouter(cfg config.Server) *gin.Engine {
	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"POST", "GET"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Api-Key"},
		ExposeHeaders:    []string{"Content-Type", "Content-Length"},
		AllowCredentials: !allowsAllOrigins(cfg.AllowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", apihandlers.HealthCheckHandle)
	root := router.Group("/")
	apiModule := apihandlers.NewHTTPHandler(cfg.APIKeys)
	apiModule.AddRoutes(root)

	if cfg.DebugMode {
		routes := router.Routes()
		sort.Slice(routes, func(i, j int) bool {
			return routes[i].Path < routes[j].Path
		})
		for _, route := range routes {
			slog.Debug("route", slog.String("method", route.Method), slog.String("path", route.Path))
		}
	}
	return router
}

// allowsAllOrigins reports whether origins holds the
// wildcard, which cors does not allow with credentials.
func allowsAllOrigins(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
