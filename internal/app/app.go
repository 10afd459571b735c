package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"arbiter/internal/config"
	"arbiter/internal/db"
	"arbiter/internal/remote"
	"arbiter/internal/web"
)

type App struct {
	store *db.Store
	log   *zap.Logger

	janitor    *janitor
	mux        *http.ServeMux
	trustProxy bool

	closeOnce sync.Once
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	j := newJanitor(store, cfg.SessionMaxIdle, log.Named("janitor"))
	j.Start(context.Background())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := web.NewHandler(web.Options{
		Store:     store,
		Remote:    remoteFactory(cfg.RemoteURL, cfg.RequestTimeout),
		RemoteURL: cfg.RemoteURL,
		Location:  loc,
		Log:       log.Named("web"),
		Registry:  registry,
		LoginRate: cfg.LoginRate,
	})
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	return &App{
		store:      store,
		log:        log,
		janitor:    j,
		mux:        mux,
		trustProxy: cfg.TrustProxy,
	}, nil
}

func remoteFactory(baseURL string, timeout time.Duration) web.RemoteFactory {
	return func(ctx context.Context, apiToken string) web.RemoteAPI {
		return remote.NewWithToken(ctx, baseURL, apiToken, timeout)
	}
}

// Router wraps the routes in the middleware chain. Forwarding headers are
// honoured only with TrustProxy; otherwise the socket peer is the client.
func (a *App) Router() http.Handler {
	chain := chi.Chain(middleware.RequestID)
	if a.trustProxy {
		chain = append(chain, middleware.RealIP)
	}
	chain = append(chain, requestLogger(a.log.Named("http")), middleware.Recoverer)
	return chain.Handler(a.mux)
}

func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.janitor.Stop()
		_ = a.store.Close()
	})
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
