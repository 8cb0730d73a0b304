package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelog/cmd/fx/catalog_fx"
	"travelog/cmd/fx/chat_fx"
	"travelog/cmd/fx/controllers_fx"
	"travelog/cmd/fx/db_fx"
	"travelog/cmd/fx/files_fx"
	"travelog/cmd/fx/future_fx"
	"travelog/cmd/fx/trips_fx"
	"travelog/internal/api/controllers"
	"travelog/internal/infra"
	"travelog/internal/repositories"
	"travelog/pkg/middleware"
	"travelog/pkg/utils"
)

func main() {
	app := fx.New(
		db_fx.Module,
		trips_fx.Module,
		catalog_fx.Module,
		files_fx.Module,
		future_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, cfg *utils.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Schema migrations run to completion before the listener opens.
			if err := infra.RunMigrations(db); err != nil {
				return err
			}

			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.CloseSQLite(db)
			return nil
		},
	})
}

// RouterParams collects everything the route table needs; fx fills it in.
type RouterParams struct {
	fx.In

	Cfg      *utils.Config
	Limiter  *middleware.RateLimiter
	ChatRepo repositories.ChatRepository

	Trips       *controllers.TripsController
	Itineraries *controllers.ItinerariesController
	Activities  *controllers.ActivitiesController
	Catalog     *controllers.CatalogController
	Files       *controllers.FilesController
	Future      *controllers.FutureController
	Chat        *controllers.ChatController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(p.Cfg))
	r.Use(middleware.CSPMiddleware(p.Cfg))

	r.Static("/uploads", p.Cfg.UploadDir)

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	api := r.Group("/api")

	trips := api.Group("/viajes")
	trips.GET("", p.Trips.ListTrips)
	trips.POST("", p.Trips.CreateTrip)
	trips.GET("/:id", p.Trips.GetTrip)
	trips.PUT("/:id", p.Trips.UpdateTrip)
	trips.DELETE("/:id", p.Trips.DeleteTrip)
	trips.GET("/:id/itinerarios", p.Itineraries.ListByTrip)
	trips.POST("/:id/itinerarios", p.Itineraries.Create)

	itineraries := api.Group("/itinerarios")
	itineraries.PUT("/:id", p.Itineraries.Update)
	itineraries.DELETE("/:id", p.Itineraries.Delete)
	itineraries.GET("/:id/actividades", p.Activities.ListByItinerary)
	itineraries.POST("/:id/actividades", p.Activities.Create)

	activities := api.Group("/actividades")
	activities.PUT("/:id", p.Activities.Update)
	activities.DELETE("/:id", p.Activities.Delete)

	api.GET("/tipos-actividad", p.Catalog.ListActivityTypes)
	api.POST("/tipos-actividad", p.Catalog.CreateActivityType)
	api.GET("/actividades-disponibles", p.Catalog.ListAvailableActivities)
	api.POST("/actividades-disponibles", p.Catalog.CreateAvailableActivity)

	files := api.Group("/archivos")
	files.POST("", p.Files.Upload)
	files.GET("", p.Files.List)
	files.GET("/:id", p.Files.Get)
	files.PUT("/:id", p.Files.Update)
	files.DELETE("/:id", p.Files.Delete)
	files.POST("/:id/asociados", p.Files.AddAssociated)
	api.DELETE("/asociados/:id", p.Files.DeleteAssociated)

	futureTrips := api.Group("/viajes-futuros")
	futureTrips.GET("", p.Future.ListTrips)
	futureTrips.POST("", p.Future.CreateTrip)
	futureTrips.GET("/:id", p.Future.GetTrip)
	futureTrips.PUT("/:id", p.Future.UpdateTrip)
	futureTrips.DELETE("/:id", p.Future.DeleteTrip)
	futureTrips.GET("/:id/itinerarios", p.Future.ListItineraries)
	futureTrips.POST("/:id/itinerarios", p.Future.CreateItinerary)
	futureTrips.POST("/:id/migrar", p.Future.MigrateTrip)
	futureTrips.GET("/:id/migraciones", p.Future.ListMigrationLogs)

	futureItineraries := api.Group("/itinerarios-futuros")
	futureItineraries.PUT("/:id", p.Future.UpdateItinerary)
	futureItineraries.DELETE("/:id", p.Future.DeleteItinerary)
	futureItineraries.GET("/:id/actividades", p.Future.ListActivities)
	futureItineraries.POST("/:id/actividades", p.Future.CreateActivity)

	futureActivities := api.Group("/actividades-futuras")
	futureActivities.PUT("/:id", p.Future.UpdateActivity)
	futureActivities.DELETE("/:id", p.Future.DeleteActivity)

	// The rate guard covers the whole AI surface; the token budget guard only
	// fronts the endpoint that spends upstream tokens.
	ia := api.Group("/ia")
	ia.Use(p.Limiter.Middleware())
	ia.POST("/chat", middleware.TokenBudgetMiddleware(p.ChatRepo, p.Cfg), p.Chat.Chat)
	ia.POST("/validar-apikey", p.Chat.ValidateAPIKey)
	ia.GET("/historial/:sessionId", p.Chat.GetHistory)
	ia.DELETE("/historial/:sessionId", p.Chat.DeleteHistory)
	ia.GET("/sesiones-activas", p.Chat.ActiveSessions)
}
