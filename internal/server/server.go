package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/resumio/internal/activity"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/app"
	"github.com/nfrund/resumio/internal/config"
	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/internal/metrics"
	"github.com/nfrund/resumio/internal/middleware"
	"github.com/nfrund/resumio/internal/module"
	"github.com/nfrund/resumio/internal/pubsub"
	"github.com/nfrund/resumio/internal/registry"
	"github.com/nfrund/resumio/internal/rendering"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/internal/tracing"
	"github.com/nfrund/resumio/internal/view"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/trace"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry
	Client   *apiclient.Client
	Bridge   *pubsub.WatermillBridge
	Metrics  *metrics.Metrics

	modules     []module.Module
	stopTracing func(context.Context)
	// bootCtx is cancelled on shutdown and stops the background workers.
	bootCtx        context.Context
	stopBackground context.CancelFunc
}

// Option customises a Server before it is wired.
type Option func(*options)

type options struct {
	tracer     trace.Tracer
	httpClient *http.Client
}

// WithTracer uses tracer for the event bus instead of the configured exporter.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

// WithHTTPClient overrides the HTTP client used to reach the backend.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// New creates a new Server instance with every core service wired.
func New(cfg config.Provider, opts ...Option) (*Server, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	stopTracing := func(context.Context) {}
	if o.tracer == nil {
		tc := tracing.DefaultConfig()
		tcfg := cfg.GetTracing()
		tc.Enabled = tcfg.Enabled
		tc.ServiceName = tcfg.ServiceName
		tc.ZipkinURL = tcfg.ZipkinURL
		tracer, stop, err := tracing.Setup(context.Background(), tc)
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		o.tracer, stopTracing = tracer, stop
	}

	m := metrics.New()
	var breaker *apiclient.Breaker
	if b := cfg.GetBreaker(); b.Enabled {
		breaker = apiclient.NewBreaker(apiclient.BreakerSettings{
			MaxFailures:   b.MaxFailures,
			Cooldown:      b.Cooldown,
			OnStateChange: func(_, to gobreaker.State) { m.SetBreakerState(to) },
		})
	}
	client := apiclient.New(apiclient.Options{
		BaseURL:    cfg.GetAPIBaseURL(),
		Timeout:    cfg.GetAPITimeout(),
		HTTPClient: o.httpClient,
		Breaker:    breaker,
		Observer:   m,
	})

	bridge := pubsub.NewWatermillBridgeWithTracer(o.tracer)
	renderer := rendering.NewUniversalRenderer()

	reg := registry.New(cfg)
	registry.Set(reg, registry.APIClientKey, client)
	registry.Set[pubsub.Publisher](reg, registry.PublisherKey, bridge)
	registry.Set[pubsub.Subscriber](reg, registry.SubscriberKey, bridge)
	registry.Set[rendering.Renderer](reg, registry.RendererKey, renderer)
	registry.Set(reg, registry.MetricsKey, m)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit(bodyLimit(cfg.GetMaxUploadBytes())))

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(view.Visitor())
	e.Use(theme.Provider())
	e.Use(postOnly(middleware.RateLimiter(cfg.GetRateLimitPerMinute()), unmetered...))

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		E:        e,
		Cfg:      cfg,
		Registry: reg,
		Client:   client,
		Bridge:   bridge,
		Metrics:  m,
		modules: app.NewModules(app.Dependencies{
			Client:         client,
			Publisher:      bridge,
			MaxUploadBytes: cfg.GetMaxUploadBytes(),
			StateTTL:       cfg.GetPageStateTTL(),
		}),
		stopTracing:    stopTracing,
		bootCtx:        ctx,
		stopBackground: cancel,
	}

	recorder := activity.NewRecorder(slog.Default(), m)
	if err := recorder.Start(ctx, bridge); err != nil {
		cancel()
		return nil, fmt.Errorf("server: starting activity recorder: %w", err)
	}
	return s, nil
}

// Modules returns the feature modules in mount order.
func (s *Server) Modules() []module.Module {
	return s.modules
}

// bodyLimit leaves room for the multipart envelope around the largest upload.
func bodyLimit(maxUpload int64) string {
	return fmt.Sprintf("%dK", (maxUpload+1<<20)/1024)
}

// unmetered are POST routes that never call the backend.
var unmetered = []string{"/resume-roaster/select", "/resume-roaster/reset"}

// postOnly applies mw to POST requests, which are the ones that reach the
// backend, except for the exempt paths.
func postOnly(mw echo.MiddlewareFunc, exempt ...string) echo.MiddlewareFunc {
	skip := make(map[string]bool, len(exempt))
	for _, p := range exempt {
		skip[p] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		limited := mw(next)
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodPost && !skip[c.Request().URL.Path] {
				return limited(c)
			}
			return next(c)
		}
	}
}
