package interview

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

// PageName identifies the interview prep page in logs, events and metrics.
const PageName = "interview-questions"

// StoreKey exposes the page state to other components.
var StoreKey = registry.Key[*pagestate.Store[apiclient.InterviewQuestionsResponse]]("interview.store")

// Backend is the part of the API client the page uses.
type Backend interface {
	GenerateInterviewQuestions(ctx context.Context, req apiclient.InterviewQuestionsRequest) (*apiclient.InterviewQuestionsResponse, error)
	GenerateInterviewQuestionsFromFile(ctx context.Context, req apiclient.InterviewFileRequest) (*apiclient.InterviewQuestionsResponse, error)
}

// Dependencies holds all the services that the module requires to operate.
type Dependencies struct {
	Backend        Backend
	Publisher      pubsub.Publisher
	MaxUploadBytes int64
	StateTTL       time.Duration
}

// InterviewModule implements the module.Module interface.
type InterviewModule struct {
	module.BaseModule
	deps  Dependencies
	store *pagestate.Store[apiclient.InterviewQuestionsResponse]
}

// New creates a new instance of the InterviewModule, injecting its dependencies.
func New(deps Dependencies) *InterviewModule {
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = upload.DefaultMaxBytes
	}
	return &InterviewModule{deps: deps, store: pagestate.New[apiclient.InterviewQuestionsResponse]()}
}

// Name returns the module name.
func (m *InterviewModule) Name() string { return PageName }

// Path returns the mount prefix.
func (m *InterviewModule) Path() string { return "/interview-questions" }

// Register publishes the page state store.
func (m *InterviewModule) Register(reg *registry.Registry) error {
	registry.Set(reg, StoreKey, m.store)
	return nil
}

// Boot sets up the routes and starts the idle-state sweeper.
func (m *InterviewModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.deps.StateTTL > 0 {
		go m.store.Run(ctx, m.deps.StateTTL/2, m.deps.StateTTL)
	}

	slog.Info("Booting InterviewModule: Setting up routes...")
	h := NewHandler(m.deps.Backend, m.deps.MaxUploadBytes, &feature.Submitter[apiclient.InterviewQuestionsResponse]{
		Page:           PageName,
		Store:          m.store,
		Publisher:      m.deps.Publisher,
		FailureMessage: MsgFailed,
	})
	g.GET("", h.Get)
	g.POST("/generate", h.Generate)
	return nil
}
