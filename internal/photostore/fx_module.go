package photostore

import (
	"go.uber.org/fx"

	"github.com/AlexPavAi/dog-finder/internal/dogstore"
)

// FXModule provides the photo archive client and its binding as the archiver
// consumed by the dog service. The binding stays valid when the archive is
// disabled: a nil *Client is a no-op archiver.
var FXModule = fx.Module("photostore",
	fx.Provide(
		NewConfig,
		NewClient,
		func(c *Client) dogstore.PhotoArchiver { return c },
	),
)
