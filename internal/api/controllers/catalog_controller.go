package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelog/internal/models/request_models"
	"travelog/internal/services"
	"travelog/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func (ct *CatalogController) ListActivityTypes(c *gin.Context) {
	types, err := ct.catalogService.ListActivityTypes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, types, "Tipos de actividad recuperados")
}

func (ct *CatalogController) ListAvailableActivities(c *gin.Context) {
	entries, err := ct.catalogService.ListAvailableActivities(c.Request.Context(), c.Query("tipo_actividad_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "Actividades disponibles recuperadas")
}

func (ct *CatalogController) CreateActivityType(c *gin.Context) {
	var req request_models.CatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	entry, err := ct.catalogService.CreateActivityType(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, entry, "Tipo de actividad creado")
}

func (ct *CatalogController) CreateAvailableActivity(c *gin.Context) {
	var req request_models.CatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	entry, err := ct.catalogService.CreateAvailableActivity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, entry, "Actividad disponible creada")
}
