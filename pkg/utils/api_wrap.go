package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError translates service errors into the API taxonomy:
// validation -> 400, not-found -> 404, state conflict -> 400, upstream AI
// failures -> the mirrored status. Persistence detail never reaches clients.
func HandleServiceError(c *gin.Context, err error) {
	var validationErr *ValidationError
	var upstreamErr *UpstreamError

	switch {
	case errors.As(err, &validationErr):
		RespondError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &upstreamErr):
		RespondError(c, upstreamErr.Status, upstreamErr.Message)
	case errors.Is(err, ErrFutureTripMigrated):
		RespondError(c, http.StatusBadRequest, "El viaje futuro ya fue migrado y no puede modificarse")
	case errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrItineraryNotFound),
		errors.Is(err, ErrActivityNotFound),
		errors.Is(err, ErrFileNotFound),
		errors.Is(err, ErrFutureTripNotFound),
		errors.Is(err, ErrCatalogEntryNotFound),
		errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
