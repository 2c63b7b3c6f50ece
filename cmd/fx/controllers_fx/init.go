package controllers_fx

import (
	"go.uber.org/fx"

	"globetrotter/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(fx.Annotate(controllers.NewHealthController, fx.ParamTags(`group:"health"`))))
