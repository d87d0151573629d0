// Package server initializes and runs the recipe API server. It wires the
// in-memory repositories, the token authority and the HTTP router, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/adergachev/recipevault/internal/logging"
	"github.com/adergachev/recipevault/internal/server/auth"
	"github.com/adergachev/recipevault/internal/server/config"
	"github.com/adergachev/recipevault/internal/server/httpapi"
	"github.com/adergachev/recipevault/internal/server/repositories/repomanager"
	"github.com/adergachev/recipevault/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config        *config.Config
	logger        logging.Logger
	authority     *auth.Authority
	userService   *services.UserService
	recipeService *services.RecipeService
	searchService *services.SearchService
}

func NewApp(c *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm := repomanager.NewMemoryRepositoryManager()

	authority := auth.NewAuthority([]byte(c.SecretKey), c.TokenValidityDuration)

	us := services.NewUserService(rm.Users(), authority)
	rs := services.NewRecipeService(rm.Recipes())
	ss := services.NewSearchService(rm.Recipes())

	return &App{
		config:        c,
		logger:        logger,
		authority:     authority,
		userService:   us,
		recipeService: rs,
		searchService: ss,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	router := httpapi.NewRouter(
		app.logger,
		app.authority,
		app.userService,
		app.recipeService,
		app.searchService,
		app.config.CORSAllowOrigins,
	)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "server shutdown error", "error", err.Error())
		}
	}()

	app.logger.Info(ctx, "HTTP server listening", "addr", app.config.EndpointAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
