package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelog/internal/models/request_models"
	"travelog/internal/services"
	"travelog/pkg/utils"
)

type ActivitiesController struct {
	activityService services.ActivityServiceInterface
}

func NewActivitiesController(activityService services.ActivityServiceInterface) *ActivitiesController {
	return &ActivitiesController{activityService: activityService}
}

func (a *ActivitiesController) ListByItinerary(c *gin.Context) {
	activities, err := a.activityService.ListByItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Actividades recuperadas")
}

func (a *ActivitiesController) Create(c *gin.Context) {
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	activity, err := a.activityService.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, activity, "Actividad creada")
}

func (a *ActivitiesController) Update(c *gin.Context) {
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	activity, err := a.activityService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Actividad actualizada")
}

func (a *ActivitiesController) Delete(c *gin.Context) {
	if err := a.activityService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Actividad eliminada")
}
