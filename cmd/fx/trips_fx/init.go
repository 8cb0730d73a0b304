package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelog/internal/repositories"
	"travelog/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideItineraryRepo,
	provideActivityRepo,
	provideTripService,
	provideItineraryService,
	provideActivityService,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, tripRepo)
}

func provideActivityService(
	activityRepo repositories.ActivityRepository,
	itineraryRepo repositories.ItineraryRepository,
) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, itineraryRepo)
}
