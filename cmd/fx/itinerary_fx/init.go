package itinerary_fx

import (
	"go.uber.org/fx"

	"globetrotter/internal/services"
)

var Module = fx.Provide(
	services.NewItineraryService,
	services.NewExportService,
)
