package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travelog/internal/models/request_models"
	"travelog/internal/services"
	"travelog/pkg/utils"
)

type FilesController struct {
	fileService services.FileServiceInterface
}

func NewFilesController(fileService services.FileServiceInterface) *FilesController {
	return &FilesController{fileService: fileService}
}

// Upload takes a multipart form: the blob under "archivo" plus optional
// metadata fields. "actividad_id" may be omitted; orphan uploads are assigned
// later via PUT.
func (f *FilesController) Upload(c *gin.Context) {
	header, err := c.FormFile("archivo")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "el campo archivo es obligatorio")
		return
	}

	meta := request_models.FileUpdateRequest{
		Type:        c.PostForm("tipo"),
		CapturedAt:  c.PostForm("fecha_captura"),
		Geolocation: c.PostForm("geolocalizacion"),
		Metadata:    c.PostForm("metadatos"),
	}
	if raw := c.PostForm("actividad_id"); raw != "" {
		activityID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			utils.RespondError(c, http.StatusBadRequest, "actividad_id no es un identificador válido")
			return
		}
		meta.ActivityID = &activityID
	}

	file, err := f.fileService.StoreUpload(c.Request.Context(), header, meta)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, file, "Archivo subido")
}

func (f *FilesController) List(c *gin.Context) {
	unassigned := c.Query("sin_asignar") == "true"
	files, err := f.fileService.List(c.Request.Context(), c.Query("actividad_id"), unassigned)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, files, "Archivos recuperados")
}

func (f *FilesController) Get(c *gin.Context) {
	file, err := f.fileService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, file, "Archivo recuperado")
}

func (f *FilesController) Update(c *gin.Context) {
	var req request_models.FileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	file, err := f.fileService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, file, "Archivo actualizado")
}

func (f *FilesController) Delete(c *gin.Context) {
	if err := f.fileService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Archivo eliminado")
}

func (f *FilesController) AddAssociated(c *gin.Context) {
	var req request_models.AssociatedFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	associated, err := f.fileService.AddAssociated(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, associated, "Archivo asociado creado")
}

func (f *FilesController) DeleteAssociated(c *gin.Context) {
	if err := f.fileService.DeleteAssociated(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Archivo asociado eliminado")
}
