package services

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/ghuser/swapspace/internal/logger"
)

var (
	// ErrNoFile is returned when a request carries no file.
	ErrNoFile = errors.New("no file uploaded")
	// ErrInvalidFileType is returned before any bytes are persisted.
	ErrInvalidFileType = errors.New("invalid file type, only JPEG and PNG are allowed")
	// ErrFileTooLarge is returned when the file exceeds MaxUploadSize.
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
)

// MaxUploadSize is the per-file upload cap.
const MaxUploadSize = 5 << 20 // 5 MiB

// uploadURLPrefix is where the router serves stored files from.
const uploadURLPrefix = "/uploads"

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

// FileSaver persists an uploaded file and returns its stored name.
type FileSaver interface {
	Save(ctx context.Context, originalName string, src io.Reader) (string, error)
}

// UploadService validates and stores a single image per request.
type UploadService struct {
	files FileSaver
}

// NewUploadService creates a new UploadService instance.
func NewUploadService(files FileSaver) *UploadService {
	return &UploadService{files: files}
}

// Store validates the declared content type and size, persists the file and
// returns the relative URL the static layer serves it under. Validation runs
// before any bytes touch disk.
func (svc *UploadService) Store(ctx context.Context, filename, contentType string, size int64, src io.Reader) (string, error) {
	if _, ok := allowedImageTypes[contentType]; !ok {
		logger.Log.Infow("upload rejected, bad content type", "content_type", contentType)
		return "", ErrInvalidFileType
	}
	if size > MaxUploadSize {
		logger.Log.Infow("upload rejected, too large", "size", size)
		return "", ErrFileTooLarge
	}

	stored, err := svc.files.Save(ctx, filename, src)
	if err != nil {
		logger.Log.Errorw("failed to store upload", "filename", filename, "error", err)
		return "", err
	}

	return path.Join(uploadURLPrefix, stored), nil
}
