package app

import (
	"time"

	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/module"
	"github.com/nfrund/resumio/internal/modules/ats"
	"github.com/nfrund/resumio/internal/modules/builder"
	"github.com/nfrund/resumio/internal/modules/coverletter"
	"github.com/nfrund/resumio/internal/modules/interview"
	"github.com/nfrund/resumio/internal/modules/roaster"
	"github.com/nfrund/resumio/internal/pubsub"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Client         *apiclient.Client
	Publisher      pubsub.Publisher
	MaxUploadBytes int64
	StateTTL       time.Duration
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		builder.New(builder.Dependencies{
			Backend:   deps.Client,
			Publisher: deps.Publisher,
			StateTTL:  deps.StateTTL,
		}),
		ats.New(ats.Dependencies{
			Backend:        deps.Client,
			Publisher:      deps.Publisher,
			MaxUploadBytes: deps.MaxUploadBytes,
			StateTTL:       deps.StateTTL,
		}),
		coverletter.New(coverletter.Dependencies{
			Backend:   deps.Client,
			Publisher: deps.Publisher,
			StateTTL:  deps.StateTTL,
		}),
		interview.New(interview.Dependencies{
			Backend:        deps.Client,
			Publisher:      deps.Publisher,
			MaxUploadBytes: deps.MaxUploadBytes,
			StateTTL:       deps.StateTTL,
		}),
		roaster.New(roaster.Dependencies{
			Backend:        deps.Client,
			Publisher:      deps.Publisher,
			MaxUploadBytes: deps.MaxUploadBytes,
			StateTTL:       deps.StateTTL,
		}),
	}
}
