package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelog/internal/models/request_models"
	"travelog/internal/services"
	"travelog/pkg/utils"
)

type ItinerariesController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItinerariesController(itineraryService services.ItineraryServiceInterface) *ItinerariesController {
	return &ItinerariesController{itineraryService: itineraryService}
}

func (i *ItinerariesController) ListByTrip(c *gin.Context) {
	itineraries, err := i.itineraryService.ListByTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itineraries, "Itinerarios recuperados")
}

func (i *ItinerariesController) Create(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	itinerary, err := i.itineraryService.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, itinerary, "Itinerario creado")
}

func (i *ItinerariesController) Update(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	itinerary, err := i.itineraryService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itinerary, "Itinerario actualizado")
}

func (i *ItinerariesController) Delete(c *gin.Context) {
	if err := i.itineraryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerario eliminado")
}
