package embedding

import (
	"go.uber.org/fx"
)

// FXModule wires the embedding system into Fx. It provides the Config (from
// environment), the *Client, and the Provider interface binding consumed by
// the search orchestrator.
var FXModule = fx.Module("embedding",
	fx.Provide(
		NewConfig,
		NewClient,
		func(c *Client) Provider { return c },
	),
)
