package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelog/internal/models/request_models"
	"travelog/internal/services"
	"travelog/pkg/utils"
)

type FutureController struct {
	futureService    services.FutureServiceInterface
	migrationService services.MigrationServiceInterface
}

func NewFutureController(
	futureService services.FutureServiceInterface,
	migrationService services.MigrationServiceInterface,
) *FutureController {
	return &FutureController{
		futureService:    futureService,
		migrationService: migrationService,
	}
}

func (f *FutureController) ListTrips(c *gin.Context) {
	trips, err := f.futureService.ListTrips(c.Request.Context(), c.Query("estado"), c.Query("session_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "Viajes futuros recuperados")
}

func (f *FutureController) GetTrip(c *gin.Context) {
	trip, err := f.futureService.GetTripDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Viaje futuro recuperado")
}

func (f *FutureController) CreateTrip(c *gin.Context) {
	var req request_models.FutureTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	trip, err := f.futureService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, trip, "Viaje futuro creado")
}

func (f *FutureController) UpdateTrip(c *gin.Context) {
	var req request_models.FutureTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	trip, err := f.futureService.UpdateTrip(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Viaje futuro actualizado")
}

func (f *FutureController) DeleteTrip(c *gin.Context) {
	if err := f.futureService.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Viaje futuro eliminado")
}

// MigrateTrip promotes a planned trip into the real schema. The response
// carries the counts from the audit log entry produced by the run.
func (f *FutureController) MigrateTrip(c *gin.Context) {
	result, err := f.migrationService.MigrateTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Viaje futuro migrado")
}

func (f *FutureController) ListMigrationLogs(c *gin.Context) {
	logs, err := f.migrationService.ListLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, logs, "Registros de migración recuperados")
}

func (f *FutureController) ListItineraries(c *gin.Context) {
	itineraries, err := f.futureService.ListItineraries(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itineraries, "Itinerarios futuros recuperados")
}

func (f *FutureController) CreateItinerary(c *gin.Context) {
	var req request_models.FutureItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	itinerary, err := f.futureService.CreateItinerary(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, itinerary, "Itinerario futuro creado")
}

func (f *FutureController) UpdateItinerary(c *gin.Context) {
	var req request_models.FutureItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	itinerary, err := f.futureService.UpdateItinerary(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itinerary, "Itinerario futuro actualizado")
}

func (f *FutureController) DeleteItinerary(c *gin.Context) {
	if err := f.futureService.DeleteItinerary(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerario futuro eliminado")
}

func (f *FutureController) ListActivities(c *gin.Context) {
	activities, err := f.futureService.ListActivities(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Actividades futuras recuperadas")
}

func (f *FutureController) CreateActivity(c *gin.Context) {
	var req request_models.FutureActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	activity, err := f.futureService.CreateActivity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, activity, "Actividad futura creada")
}

func (f *FutureController) UpdateActivity(c *gin.Context) {
	var req request_models.FutureActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	activity, err := f.futureService.UpdateActivity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Actividad futura actualizada")
}

func (f *FutureController) DeleteActivity(c *gin.Context) {
	if err := f.futureService.DeleteActivity(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Actividad futura eliminada")
}
