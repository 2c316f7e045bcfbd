package httpapi

import (
	"go.uber.org/fx"

	"github.com/AlexPavAi/dog-finder/internal/dogstore"
	"github.com/AlexPavAi/dog-finder/internal/embedding"
	"github.com/AlexPavAi/dog-finder/internal/search"
	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

// FXModule wires the transport: interface bindings for the two services, the
// handler, the echo server, and its lifecycle.
var FXModule = fx.Module("httpapi",
	fx.Provide(
		NewConfig,
		func(s *search.Service) Searcher { return s },
		func(s *dogstore.Service) DogService { return s },
		func(p embedding.Provider) vectordb.Schema {
			return dogstore.VectorSchema(uint64(p.Dimension()))
		},
		NewHandler,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)
