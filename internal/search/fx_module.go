package search

import "go.uber.org/fx"

// FXModule provides the search orchestrator.
var FXModule = fx.Module("search",
	fx.Provide(NewService),
)
