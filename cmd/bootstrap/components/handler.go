package components

import (
	"rembayung-api/internal/handler"
	"rembayung-api/internal/handler/api"
	"rembayung-api/internal/handler/middleware"
	"rembayung-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.TokenValidator)),
		),
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewAdminBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
