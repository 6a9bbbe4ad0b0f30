package registry

import (
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/config"
	"github.com/nfrund/resumio/internal/metrics"
	"github.com/nfrund/resumio/internal/pubsub"
	"github.com/nfrund/resumio/internal/rendering"
)

// Service keys shared by the core and the feature modules.
var (
	ConfigKey     = Key[config.Provider]("core.config")
	APIClientKey  = Key[*apiclient.Client]("core.apiclient")
	PublisherKey  = Key[pubsub.Publisher]("core.publisher")
	SubscriberKey = Key[pubsub.Subscriber]("core.subscriber")
	RendererKey   = Key[rendering.Renderer]("core.renderer")
	MetricsKey    = Key[*metrics.Metrics]("core.metrics")
)
