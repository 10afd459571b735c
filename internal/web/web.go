package web

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"arbiter/internal/db"
	"arbiter/internal/remote"
	"arbiter/internal/schedule"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// RemoteAPI is the part of the chess server API the console uses.
type RemoteAPI interface {
	schedule.TokenResolver
	schedule.PairingCreator
	Account(ctx context.Context) (remote.Account, error)
}

// RemoteFactory returns an API client authenticated as the token's owner.
type RemoteFactory func(ctx context.Context, apiToken string) RemoteAPI

type Options struct {
	Store     *db.Store
	Remote    RemoteFactory
	RemoteURL string
	Location  *time.Location
	Log       *zap.Logger
	Registry  *prometheus.Registry
	LoginRate int // attempts per minute and client
}

type Handler struct {
	store     *db.Store
	remote    RemoteFactory
	remoteURL string
	loc       *time.Location
	log       *zap.Logger

	registry *prometheus.Registry
	metrics  *metrics
	limiter  *ipRateLimiter

	tpl *template.Template
}

func NewHandler(opts Options) *Handler {
	tpl := template.Must(template.New("base").ParseFS(templatesFS, "templates/*.html"))
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.LoginRate <= 0 {
		opts.LoginRate = 10
	}
	return &Handler{
		store:     opts.Store,
		remote:    opts.Remote,
		remoteURL: opts.RemoteURL,
		loc:       opts.Location,
		log:       opts.Log,
		registry:  opts.Registry,
		metrics:   newMetrics(opts.Registry),
		limiter:   newIPRateLimiter(opts.LoginRate),
		tpl:       tpl,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticSub)))

	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET /login", h.handleLoginPage)
	mux.HandleFunc("POST /login", h.rateLimited(h.handleLogin))
	mux.HandleFunc("POST /logout", h.requireSession(h.handleLogout))

	mux.HandleFunc("GET /endpoint/schedule-games", h.requireSession(h.handleScheduleGames))
	mux.HandleFunc("POST /endpoint/schedule-games", h.requireSession(h.handleScheduleGamesSubmit))
	mux.HandleFunc("GET /endpoint/settings", h.requireSession(h.handleSettings))
	mux.HandleFunc("POST /endpoint/settings", h.requireSession(h.handleSettingsSave))
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/endpoint/schedule-games", http.StatusSeeOther)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("render template", zap.String("template", name), zap.Error(err))
	}
}
