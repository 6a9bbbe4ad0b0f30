package builder

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/feature"
	"github.com/nfrund/resumio/internal/module"
	"github.com/nfrund/resumio/internal/pagestate"
	"github.com/nfrund/resumio/internal/pubsub"
	"github.com/nfrund/resumio/internal/registry"
)

// PageName identifies the resume builder in logs, events and metrics.
const PageName = "builder"

// StoreKey exposes the page state to other components.
var StoreKey = registry.Key[*pagestate.Store[[]string]]("builder.store")

// Backend is the part of the API client the page uses.
type Backend interface {
	Suggest(ctx context.Context, req apiclient.SuggestRequest) (*apiclient.SuggestResponse, error)
}

// Dependencies holds all the services that the module requires to operate.
type Dependencies struct {
	Backend   Backend
	Publisher pubsub.Publisher
	StateTTL  time.Duration
}

// BuilderModule implements the module.Module interface.
type BuilderModule struct {
	module.BaseModule
	deps  Dependencies
	store *pagestate.Store[[]string]
}

// New creates a new instance of the BuilderModule, injecting its dependencies.
func New(deps Dependencies) *BuilderModule {
	return &BuilderModule{deps: deps, store: pagestate.New[[]string]()}
}

// Name returns the module name.
func (m *BuilderModule) Name() string { return PageName }

// Path returns the mount prefix.
func (m *BuilderModule) Path() string { return "/builder" }

// Register publishes the page state store.
func (m *BuilderModule) Register(reg *registry.Registry) error {
	registry.Set(reg, StoreKey, m.store)
	return nil
}

// Boot sets up the routes and starts the idle-state sweeper.
func (m *BuilderModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.deps.StateTTL > 0 {
		go m.store.Run(ctx, m.deps.StateTTL/2, m.deps.StateTTL)
	}

	slog.Info("Booting BuilderModule: Setting up routes...")
	h := NewHandler(m.deps.Backend, &feature.Submitter[[]string]{
		Page:           PageName,
		Store:          m.store,
		Publisher:      m.deps.Publisher,
		FailureMessage: MsgFailed,
	})
	g.GET("", h.Get)
	g.POST("/suggest", h.Suggest)
	return nil
}
