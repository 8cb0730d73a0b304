package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelog/internal/models/db_models"
	"travelog/internal/models/request_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("archivo", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/archivos", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["archivo"][0]
}

func fileTestService(t *testing.T, db *gorm.DB) (FileServiceInterface, string) {
	t.Helper()
	uploadDir := t.TempDir()
	svc := NewFileService(repositories.NewFileRepository(db), &utils.Config{UploadDir: uploadDir})
	return svc, uploadDir
}

func seedActivity(t *testing.T, db *gorm.DB) *db_models.Activity {
	t.Helper()

	trip := db_models.Trip{Name: "Sierra", StartDate: "2025-10-01", EndDate: "2025-10-03"}
	require.NoError(t, db.Create(&trip).Error)
	itinerary := db_models.Itinerary{TripID: trip.ID, StartDate: "2025-10-01", EndDate: "2025-10-03"}
	require.NoError(t, db.Create(&itinerary).Error)
	activity := db_models.Activity{ItineraryID: itinerary.ID, TripID: trip.ID, Name: "Subida", StartTime: "08:00"}
	require.NoError(t, db.Create(&activity).Error)
	return &activity
}

func TestStoreUploadUnassignedThenAssign(t *testing.T) {
	db := setupTestDB(t)
	svc, uploadDir := fileTestService(t, db)
	ctx := context.Background()

	file, err := svc.StoreUpload(ctx, uploadHeader(t, "cumbre.jpg", []byte("jpegdata")), request_models.FileUpdateRequest{})
	require.NoError(t, err)

	assert.Nil(t, file.ActivityID)
	assert.Equal(t, db_models.FileTypePhoto, file.Type, "type inferred from extension")
	assert.Equal(t, "cumbre.jpg", file.OriginalName)
	assert.Equal(t, 1, file.Version)

	// The blob lands on disk under the uuid name the path points at.
	onDisk := filepath.Join(uploadDir, filepath.Base(file.Path))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpegdata"), data)

	orphans, err := svc.List(ctx, "", true)
	require.NoError(t, err)
	require.Len(t, orphans, 1)

	activity := seedActivity(t, db)
	updated, err := svc.Update(ctx, file.ID.String(), request_models.FileUpdateRequest{
		ActivityID: &activity.ID,
		Type:       string(file.Type),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ActivityID)
	assert.Equal(t, activity.ID, *updated.ActivityID)
	assert.Equal(t, 2, updated.Version)

	orphans, err = svc.List(ctx, "", true)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	assigned, err := svc.List(ctx, activity.ID.String(), false)
	require.NoError(t, err)
	assert.Len(t, assigned, 1)
}

func TestDeleteFileCascadesAssociated(t *testing.T) {
	db := setupTestDB(t)
	svc, uploadDir := fileTestService(t, db)
	ctx := context.Background()

	file, err := svc.StoreUpload(ctx, uploadHeader(t, "nota.mp3", []byte("audio")), request_models.FileUpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, db_models.FileTypeAudio, file.Type)

	_, err = svc.AddAssociated(ctx, file.ID.String(), request_models.AssociatedFileRequest{
		Type:        "texto",
		Path:        "/uploads/transcripcion.txt",
		Description: "Transcripción de la nota",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, file.ID.String()))

	var associated int64
	require.NoError(t, db.Model(&db_models.AssociatedFile{}).
		Where("file_id = ?", file.ID).Count(&associated).Error)
	assert.Zero(t, associated, "associated files should go with their parent")

	onDisk := filepath.Join(uploadDir, filepath.Base(file.Path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err), "the stored blob should be removed")

	_, err = svc.Get(ctx, file.ID.String())
	assert.ErrorIs(t, err, utils.ErrFileNotFound)
}

func TestAddAssociatedValidation(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := fileTestService(t, db)
	ctx := context.Background()

	file, err := svc.StoreUpload(ctx, uploadHeader(t, "apunte.txt", []byte("texto")), request_models.FileUpdateRequest{})
	require.NoError(t, err)

	var validationErr *utils.ValidationError
	_, err = svc.AddAssociated(ctx, file.ID.String(), request_models.AssociatedFileRequest{Type: "texto"})
	assert.ErrorAs(t, err, &validationErr)
}
