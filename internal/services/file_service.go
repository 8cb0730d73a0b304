package services

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"travelog/internal/models/db_models"
	"travelog/internal/models/request_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

type FileServiceInterface interface {
	StoreUpload(ctx context.Context, header *multipart.FileHeader, meta request_models.FileUpdateRequest) (*db_models.File, error)
	List(ctx context.Context, activityID string, unassigned bool) ([]db_models.File, error)
	Get(ctx context.Context, fileID string) (*db_models.File, error)
	Update(ctx context.Context, fileID string, req request_models.FileUpdateRequest) (*db_models.File, error)
	Delete(ctx context.Context, fileID string) error
	AddAssociated(ctx context.Context, fileID string, req request_models.AssociatedFileRequest) (*db_models.AssociatedFile, error)
	DeleteAssociated(ctx context.Context, associatedID string) error
}

type FileService struct {
	fileRepo  repositories.FileRepository
	uploadDir string
}

func NewFileService(fileRepo repositories.FileRepository, cfg *utils.Config) FileServiceInterface {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Printf("Could not create upload directory %s: %v", cfg.UploadDir, err)
	}
	return &FileService{
		fileRepo:  fileRepo,
		uploadDir: cfg.UploadDir,
	}
}

// StoreUpload streams the uploaded file into the upload directory under a
// collision-resistant uuid name, keeping the original extension.
func (s *FileService) StoreUpload(ctx context.Context, header *multipart.FileHeader, meta request_models.FileUpdateRequest) (*db_models.File, error) {
	if header == nil {
		return nil, utils.MissingField("archivo")
	}

	src, err := header.Open()
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		log.Printf("Failed to create upload %s: %v", dstPath, err)
		return nil, utils.ErrDatabaseError
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Printf("Failed to write upload %s: %v", dstPath, err)
		return nil, utils.ErrDatabaseError
	}

	fileType := db_models.FileType(meta.Type)
	if fileType == "" {
		fileType = inferFileType(ext)
	}

	file := db_models.File{
		ActivityID:   meta.ActivityID,
		Type:         fileType,
		Path:         "/uploads/" + storedName,
		OriginalName: header.Filename,
		CapturedAt:   meta.CapturedAt,
		Version:      1,
		Geolocation:  meta.Geolocation,
		Metadata:     meta.Metadata,
	}
	if err := s.fileRepo.Create(ctx, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

func inferFileType(ext string) db_models.FileType {
	switch ext {
	case ".jpg", ".jpeg", ".heic":
		return db_models.FileTypePhoto
	case ".png", ".gif", ".webp", ".svg":
		return db_models.FileTypeImage
	case ".mp4", ".mov", ".webm":
		return db_models.FileTypeVideo
	case ".mp3", ".wav", ".m4a", ".ogg":
		return db_models.FileTypeAudio
	default:
		return db_models.FileTypeText
	}
}

func (s *FileService) List(ctx context.Context, activityID string, unassigned bool) ([]db_models.File, error) {
	return s.fileRepo.ListFiles(ctx, activityID, unassigned)
}

func (s *FileService) Get(ctx context.Context, fileID string) (*db_models.File, error) {
	return s.fileRepo.GetByID(ctx, fileID)
}

// Update replaces the mutable metadata and bumps the version counter.
// Assigning an orphan upload to an activity happens here.
func (s *FileService) Update(ctx context.Context, fileID string, req request_models.FileUpdateRequest) (*db_models.File, error) {
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	file.ActivityID = req.ActivityID
	if req.Type != "" {
		file.Type = db_models.FileType(req.Type)
	}
	file.CapturedAt = req.CapturedAt
	file.Geolocation = req.Geolocation
	file.Metadata = req.Metadata
	file.Version++

	if err := s.fileRepo.Save(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

func (s *FileService) Delete(ctx context.Context, fileID string) error {
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}

	if err := s.fileRepo.Delete(ctx, fileID); err != nil {
		return err
	}

	// Best-effort removal of the blob; the row is already gone.
	onDisk := filepath.Join(s.uploadDir, filepath.Base(file.Path))
	if err := os.Remove(onDisk); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not remove stored file %s: %v", onDisk, err)
	}
	return nil
}

func (s *FileService) AddAssociated(ctx context.Context, fileID string, req request_models.AssociatedFileRequest) (*db_models.AssociatedFile, error) {
	if req.Path == "" {
		return nil, utils.MissingField("ruta")
	}

	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	associated := db_models.AssociatedFile{
		FileID:      file.ID,
		Type:        db_models.FileType(req.Type),
		Path:        req.Path,
		Version:     1,
		Description: req.Description,
	}
	if err := s.fileRepo.CreateAssociated(ctx, &associated); err != nil {
		return nil, err
	}
	return &associated, nil
}

func (s *FileService) DeleteAssociated(ctx context.Context, associatedID string) error {
	return s.fileRepo.DeleteAssociated(ctx, associatedID)
}
