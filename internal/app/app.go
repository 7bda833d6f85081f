package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusshare/roommate-backend/internal/adapter/postgres"
	"github.com/campusshare/roommate-backend/internal/adapter/postgres/roommate"
	"github.com/campusshare/roommate-backend/internal/adapter/postgres/user"
	"github.com/campusshare/roommate-backend/internal/auth"
	"github.com/campusshare/roommate-backend/internal/config"
	"github.com/campusshare/roommate-backend/internal/metrics"
	"github.com/campusshare/roommate-backend/internal/service/matching"
	"github.com/campusshare/roommate-backend/internal/transport/middleware"
	"github.com/campusshare/roommate-backend/internal/transport/rest"
)

// Run loads configuration, connects to PostgreSQL and serves the HTTP API
// until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer pool.Close()

	handler, cleanup, err := NewHandler(logger, cfg, pool)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// NewHandler wires repositories, the matching service and the middleware
// stack. The returned cleanup stops background workers.
func NewHandler(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool) (http.Handler, func(), error) {
	txm := postgres.NewTxManager(pool)
	profiles := roommate.New(pool)
	users := user.New(pool)

	matcher, err := matching.NewService(logger, profiles, users, txm, cfg.Matching)
	if err != nil {
		return nil, nil, err
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	router := rest.NewRouter(rest.Routes{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Matches:   rest.NewMatchHandler(matcher, logger),
		Metrics:   metrics.Handler(),
		Auth:      middleware.Auth(jwtMgr),
		RateLimit: limiter.Middleware(),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	return handler, limiter.Stop, nil
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app.serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.serve: shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
