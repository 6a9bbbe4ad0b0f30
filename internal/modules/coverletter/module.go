package coverletter

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

// PageName identifies the cover letter page in logs, events and metrics.
const PageName = "cover-letter"

// StoreKey exposes the page state to other components, e.g. tests.
var StoreKey = registry.Key[*pagestate.Store[string]]("coverletter.store")

// Backend is the part of the API client the page uses.
type Backend interface {
	GenerateCoverLetter(ctx context.Context, req apiclient.CoverLetterRequest) (*apiclient.CoverLetterResponse, error)
}

// Dependencies holds all the services that the module requires to operate.
type Dependencies struct {
	Backend   Backend
	Publisher pubsub.Publisher
	// StateTTL evicts visitors idle for longer. Zero keeps them forever.
	StateTTL time.Duration
}

// CoverLetterModule implements the module.Module interface.
type CoverLetterModule struct {
	module.BaseModule
	deps  Dependencies
	store *pagestate.Store[string]
}

// New creates a new instance of the CoverLetterModule, injecting its dependencies.
func New(deps Dependencies) *CoverLetterModule {
	return &CoverLetterModule{deps: deps, store: pagestate.New[string]()}
}

// Name returns the module name.
func (m *CoverLetterModule) Name() string { return PageName }

// Path returns the mount prefix.
func (m *CoverLetterModule) Path() string { return "/cover-letter" }

// Register publishes the page state store.
func (m *CoverLetterModule) Register(reg *registry.Registry) error {
	registry.Set(reg, StoreKey, m.store)
	return nil
}

// Boot sets up the routes and starts the idle-state sweeper.
func (m *CoverLetterModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.deps.StateTTL > 0 {
		go m.store.Run(ctx, m.deps.StateTTL/2, m.deps.StateTTL)
	}

	slog.Info("Booting CoverLetterModule: Setting up routes...")
	h := NewHandler(m.deps.Backend, &feature.Submitter[string]{
		Page:           PageName,
		Store:          m.store,
		Publisher:      m.deps.Publisher,
		FailureMessage: MsgFailed,
	})
	g.GET("", h.Get)
	g.POST("/generate", h.Generate)
	return nil
}
