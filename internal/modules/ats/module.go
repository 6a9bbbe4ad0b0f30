package ats

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

// PageName identifies the ATS checker in logs, events and metrics.
const PageName = "ats-checker"

// StoreKey exposes the page state to other components.
var StoreKey = registry.Key[*pagestate.Store[apiclient.ATSResponse]]("ats.store")

// Backend is the part of the API client the page uses.
type Backend interface {
	ScoreATSFromFile(ctx context.Context, file apiclient.Upload, jobDesc string) (*apiclient.ATSResponse, error)
}

// Dependencies holds all the services that the module requires to operate.
type Dependencies struct {
	Backend        Backend
	Publisher      pubsub.Publisher
	MaxUploadBytes int64
	StateTTL       time.Duration
}

// ATSModule implements the module.Module interface.
type ATSModule struct {
	module.BaseModule
	deps  Dependencies
	store *pagestate.Store[apiclient.ATSResponse]
}

// New creates a new instance of the ATSModule, injecting its dependencies.
func New(deps Dependencies) *ATSModule {
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = upload.DefaultMaxBytes
	}
	return &ATSModule{deps: deps, store: pagestate.New[apiclient.ATSResponse]()}
}

// Name returns the module name.
func (m *ATSModule) Name() string { return PageName }

// Path returns the mount prefix.
func (m *ATSModule) Path() string { return "/ats-checker" }

// Register publishes the page state store.
func (m *ATSModule) Register(reg *registry.Registry) error {
	registry.Set(reg, StoreKey, m.store)
	return nil
}

// Boot sets up the routes and starts the idle-state sweeper.
func (m *ATSModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.deps.StateTTL > 0 {
		go m.store.Run(ctx, m.deps.StateTTL/2, m.deps.StateTTL)
	}

	slog.Info("Booting ATSModule: Setting up routes...")
	h := NewHandler(m.deps.Backend, m.deps.MaxUploadBytes, &feature.Submitter[apiclient.ATSResponse]{
		Page:           PageName,
		Store:          m.store,
		Publisher:      m.deps.Publisher,
		FailureMessage: MsgFailed,
		ClearOnSubmit:  true,
	})
	g.GET("", h.Get)
	g.POST("/score", h.Score)
	return nil
}
