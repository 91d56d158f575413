package app

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/hamkee/internal/config"
	myHTTP "github.com/MKhiriev/hamkee/internal/handler/http"
	"github.com/MKhiriev/hamkee/internal/httpclient"
	"github.com/MKhiriev/hamkee/internal/logger"
	"github.com/MKhiriev/hamkee/internal/metrics"
	"github.com/MKhiriev/hamkee/internal/server"
	"github.com/MKhiriev/hamkee/internal/service"
	"github.com/MKhiriev/hamkee/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	healthzPath = "/healthz"
	debugPath   = "/debug"
)

// App is the assembled service.
type App struct {
	settings *config.Settings

	router   *chi.Mux
	client   *httpclient.Client
	registry *prometheus.Registry

	logger *logger.Logger
}

// Option customises [New].
type Option func(*options)

type options struct {
	build      models.AppBuildInfo
	clientOpts []httpclient.Option
}

// WithBuildInfo sets the build metadata reported by the info route.
func WithBuildInfo(build models.AppBuildInfo) Option {
	return func(o *options) {
		o.build = build
	}
}

// WithClientOptions passes extra options to the shared HTTP client.
func WithClientOptions(opts ...httpclient.Option) Option {
	return func(o *options) {
		o.clientOpts = append(o.clientOpts, opts...)
	}
}

// New builds the root router and the shared HTTP client from settings.
func New(settings *config.Settings, log *logger.Logger, opts ...Option) (*App, error) {
	o := options{build: models.NewAppBuildInfo("", "", "")}
	for _, opt := range opts {
		opt(&o)
	}

	services, err := service.NewServices(settings, o.build, log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	a := &App{settings: settings, logger: log}

	var handlerOpts []myHTTP.HandlerOption
	clientOpts := o.clientOpts
	if settings.Metrics.Enabled {
		a.registry = metrics.NewRegistry()
		handlerOpts = append(handlerOpts, myHTTP.WithRequestObserver(metrics.NewServerMetrics(a.registry)))
		clientOpts = append(clientOpts, httpclient.WithMetrics(metrics.NewClientMetrics(a.registry)))
	}

	h := myHTTP.NewHandler(services, log, handlerOpts...)
	a.router = a.newRouter(h)
	a.client = httpclient.New(ClientConfig(settings), log, clientOpts...)

	return a, nil
}

func (a *App) newRouter(h *myHTTP.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.Middlewares()...)

	if a.settings.CORSAllowAllOrigins {
		router.Use(allowAllOrigins())
		a.logger.Info().Msg("CORS allowed for all origins.")
	} else {
		a.logger.Info().Msg("CORS not allowed for all origins.")
	}

	router.Get(healthzPath, h.Healthz)

	if a.settings.Debug {
		router.Mount(debugPath, middleware.Profiler())
	}
	if a.registry != nil {
		router.Method(http.MethodGet, a.settings.Metrics.Path, metrics.Handler(a.registry))
	}

	router.Mount(mountPoint(a.settings.APIPrefix), h.Init())

	router.NotFound(h.NotFound)
	router.MethodNotAllowed(myHTTP.CheckHTTPMethod(router))

	return router
}

// allowAllOrigins is the wildcard policy: every origin, method and header,
// credentials included. The request origin is echoed back since browsers
// reject "*" on credentialed requests.
func allowAllOrigins() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(*http.Request, string) bool { return true },
		AllowedMethods:  []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
}

func mountPoint(prefix string) string {
	if prefix == "" {
		return "/"
	}
	return prefix
}

// Handler returns the root router.
func (a *App) Handler() http.Handler {
	return a.router
}

// HTTPClient returns the shared outbound client.
func (a *App) HTTPClient() *httpclient.Client {
	return a.client
}

// Run opens the client pool, serves until a termination signal and closes
// the pool on the way out.
func (a *App) Run() error {
	srv, err := server.NewServer(a.router, a.settings, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	a.client.Open()
	defer a.client.Close()

	a.logger.Info().
		Str("address", a.settings.Address()).
		Str("prefix", a.settings.APIPrefix).
		Str("environment", a.settings.Environment.String()).
		Msg("starting application")

	return srv.RunServer()
}
