package roaster

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
	"github.com/nfrund/resumio/internal/upload"
)

// PageName identifies the roaster page in logs, events and metrics.
const PageName = "resume-roaster"

// StoreKey exposes the page state to other components.
var StoreKey = registry.Key[*pagestate.Store[string]]("roaster.store")

// Backend is the part of the API client the page uses.
type Backend interface {
	RoastResume(ctx context.Context, file apiclient.Upload) (*apiclient.RoastResponse, error)
}

// Dependencies holds all the services that the module requires to operate.
type Dependencies struct {
	Backend        Backend
	Publisher      pubsub.Publisher
	MaxUploadBytes int64
	StateTTL       time.Duration
}

// RoasterModule implements the module.Module interface.
type RoasterModule struct {
	module.BaseModule
	deps  Dependencies
	store *pagestate.Store[string]
}

// New creates a new instance of the RoasterModule, injecting its dependencies.
func New(deps Dependencies) *RoasterModule {
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = upload.DefaultMaxBytes
	}
	return &RoasterModule{deps: deps, store: pagestate.New[string]()}
}

// Name returns the module name.
func (m *RoasterModule) Name() string { return PageName }

// Path returns the mount prefix.
func (m *RoasterModule) Path() string { return "/resume-roaster" }

// Register publishes the page state store.
func (m *RoasterModule) Register(reg *registry.Registry) error {
	registry.Set(reg, StoreKey, m.store)
	return nil
}

// Boot sets up the routes and starts the idle-state sweeper.
func (m *RoasterModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.deps.StateTTL > 0 {
		go m.store.Run(ctx, m.deps.StateTTL/2, m.deps.StateTTL)
	}

	slog.Info("Booting RoasterModule: Setting up routes...")
	h := NewHandler(m.deps.Backend, m.deps.MaxUploadBytes, &feature.Submitter[string]{
		Page:           PageName,
		Store:          m.store,
		Publisher:      m.deps.Publisher,
		FailureMessage: MsgFailed,
		ClearOnSubmit:  true,
	})
	g.GET("", h.Get)
	g.POST("/select", h.Select)
	g.POST("/roast", h.Roast)
	g.GET("/download", h.Download)
	g.POST("/reset", h.Reset)
	return nil
}
