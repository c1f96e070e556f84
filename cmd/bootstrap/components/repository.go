package components

import (
	"rembayung-api/internal/infra/readstore"
	"rembayung-api/internal/infra/writerepo"
	"rembayung-api/internal/usecase/commands"
	"rembayung-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
		// Write side
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			writerepo.NewAdminRepository,
			fx.As(new(commands.AdminRepository)),
		),
	),
)
