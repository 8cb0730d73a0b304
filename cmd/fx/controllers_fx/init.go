package controllers_fx

import (
	"go.uber.org/fx"

	"travelog/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewTripsController,
	controllers.NewItinerariesController,
	controllers.NewActivitiesController,
	controllers.NewCatalogController,
	controllers.NewFilesController,
	controllers.NewFutureController,
	controllers.NewChatController,
)
