package router

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "pet-adoption/docs" // swagger spec
	"pet-adoption/internal/adapters/capabilities/roles"
	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/messages"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/stats"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Tokens auth.TokenService

	// DevHeaders acepta X-Debug-User-ID / X-Debug-User-Role además del token.
	DevHeaders bool

	// Opcional: si viene, usa Postgres. Si no, in-memory con datos de demo.
	DB *pg.DB

	// Opcional: sin Metrics no se expone /metrics.
	Metrics     *metrics.Metrics
	MetricsPath string

	PlatformName       string
	MaxApplicationDays int
	SecureCookie       bool

	Now func() time.Time
}

// App es el handler HTTP más los servicios que usan los jobs de fondo.
type App struct {
	Handler http.Handler
	Stats   *stats.Service
}

func NewRouter(opts Options) (http.Handler, error) {
	app, err := New(opts)
	if err != nil {
		return nil, err
	}
	return app.Handler, nil
}

func New(opts Options) (*App, error) {
	if opts.Tokens == nil {
		return nil, errors.New("router: token service is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	var repos mem.Repos
	if opts.DB != nil {
		repos = mem.Repos{
			Users:        pg.NewUsersRepo(opts.DB),
			Pets:         pg.NewPetsRepo(opts.DB),
			Applications: pg.NewApplicationsRepo(opts.DB),
			Messages:     pg.NewMessagesRepo(opts.DB),
		}
	} else {
		repos = mem.NewSeededRepos(opts.Now())
	}

	// Services por módulo
	usersSvc := users.NewService(repos.Users, opts.Metrics)
	petsSvc := pets.NewService(repos.Pets, opts.Metrics)
	appsSvc := applications.NewService(repos.Applications, petsSvc, opts.Metrics)
	msgsSvc := messages.NewService(repos.Messages, usersSvc, opts.Metrics)
	statsSvc := stats.NewService(usersSvc, petsSvc, appsSvc)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Recover)
	r.Use(opts.Metrics.Instrument)

	r.Use(middleware.AuthContext(middleware.AuthOptions{
		Verifier:   opts.Tokens,
		Roles:      usersSvc,
		DevHeaders: opts.DevHeaders,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle(opts.MetricsPath, opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	caps := roles.NewResolver()

	// API JSON
	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc, opts.Tokens, caps)
		pets.RegisterRoutes(api, petsSvc, caps)
		applications.RegisterRoutes(api, appsSvc, caps)
		messages.RegisterRoutes(api, msgsSvc, caps)
		stats.RegisterRoutes(api, statsSvc, caps)
	})

	// Dashboards HTML
	site, err := web.New(web.Options{
		Users:              usersSvc,
		Pets:               petsSvc,
		Applications:       appsSvc,
		Messages:           msgsSvc,
		Stats:              statsSvc,
		Issuer:             opts.Tokens,
		Capabilities:       caps,
		SessionTTL:         opts.Tokens.TTL(),
		SecureCookie:       opts.SecureCookie,
		PlatformName:       opts.PlatformName,
		MaxApplicationDays: opts.MaxApplicationDays,
	})
	if err != nil {
		return nil, fmt.Errorf("could not build web handler: %w", err)
	}
	site.RegisterRoutes(r)

	return &App{Handler: r, Stats: statsSvc}, nil
}
