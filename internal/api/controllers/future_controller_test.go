package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travelog/internal/infra"
	"travelog/internal/repositories"
	"travelog/internal/services"
	"travelog/pkg/utils"
)

// futureTestRouter wires the planning endpoints against a real throwaway
// database, the same stack fx assembles at startup.
func futureTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	controller := NewFutureController(
		services.NewFutureService(repositories.NewFutureRepository(db)),
		services.NewMigrationService(repositories.NewMigrationRepository(db), &utils.Config{}),
	)

	r := gin.New()
	trips := r.Group("/api/viajes-futuros")
	trips.POST("", controller.CreateTrip)
	trips.GET("/:id", controller.GetTrip)
	trips.PUT("/:id", controller.UpdateTrip)
	trips.POST("/:id/itinerarios", controller.CreateItinerary)
	trips.POST("/:id/migrar", controller.MigrateTrip)
	trips.GET("/:id/migraciones", controller.ListMigrationLogs)
	return r
}

func doJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestCreateFutureTripEndpoint(t *testing.T) {
	r := futureTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/viajes-futuros", gin.H{
		"nombre":       "Ruta por Galicia",
		"destino":      "Galicia",
		"fecha_inicio": "2026-09-01",
		"fecha_fin":    "2026-09-08",
		"session_id":   "s1",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "planificado", data["estado"])
	assert.Equal(t, "Ruta por Galicia", data["nombre"])
	assert.Nil(t, data["viaje_real_id"])
}

func TestCreateFutureTripMissingField(t *testing.T) {
	r := futureTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/viajes-futuros", gin.H{
		"nombre":       "Sin fecha de vuelta",
		"fecha_inicio": "2026-09-01",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fecha_fin")
}

func TestMigrateThenEditEndpoint(t *testing.T) {
	r := futureTestRouter(t)

	created := doJSON(r, http.MethodPost, "/api/viajes-futuros", gin.H{
		"nombre":       "Ruta por Galicia",
		"fecha_inicio": "2026-09-01",
		"fecha_fin":    "2026-09-08",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	tripID := decodeData(t, created)["id"].(string)

	itinerary := doJSON(r, http.MethodPost, "/api/viajes-futuros/"+tripID+"/itinerarios", gin.H{
		"fecha_inicio": "2026-09-01",
		"fecha_fin":    "2026-09-04",
		"tipo_viaje":   "rural",
	})
	require.Equal(t, http.StatusCreated, itinerary.Code)

	migrated := doJSON(r, http.MethodPost, "/api/viajes-futuros/"+tripID+"/migrar", nil)
	require.Equal(t, http.StatusOK, migrated.Code)
	data := decodeData(t, migrated)
	assert.EqualValues(t, 1, data["itinerarios_migrados"])
	assert.NotEmpty(t, data["viaje_real_id"])

	// The planning row is frozen after migration; edits get rejected.
	edit := doJSON(r, http.MethodPut, "/api/viajes-futuros/"+tripID, gin.H{
		"nombre":       "Otro nombre",
		"fecha_inicio": "2026-09-01",
		"fecha_fin":    "2026-09-08",
	})
	assert.Equal(t, http.StatusBadRequest, edit.Code)

	logs := doJSON(r, http.MethodGet, "/api/viajes-futuros/"+tripID+"/migraciones", nil)
	require.Equal(t, http.StatusOK, logs.Code)

	state := doJSON(r, http.MethodGet, "/api/viajes-futuros/"+tripID, nil)
	require.Equal(t, http.StatusOK, state.Code)
	assert.Equal(t, "migrado", decodeData(t, state)["estado"])
}
