package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/services"
)

// uploadFieldName is the fixed multipart field carrying the image.
const uploadFieldName = "image"

// Uploader defines the interface that the upload service must implement.
type Uploader interface {
	Store(ctx context.Context, filename, contentType string, size int64, src io.Reader) (string, error)
}

// UploadResponse carries the relative URL of the stored image
// swagger:model UploadResponse
type UploadResponse struct {
	// Relative URL served by the static file layer
	// default: /uploads/1700000000000-bike.png
	URL string `json:"url"`
}

// NewUploadHandler returns an HTTP handler for single-image uploads.
// @Summary Upload an image
// @Description Accepts one JPEG or PNG up to 5 MiB under the "image" field and returns its URL.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image to upload"
// @Success 200 {object} handlers.UploadResponse "Image stored"
// @Failure 400 {object} handlers.ErrorResponse "No file or invalid file type"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 413 {object} handlers.ErrorResponse "File too large"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /upload [post]
// @Security BearerAuth
func NewUploadHandler(svc Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Cap the whole request body; the slack covers multipart framing.
		r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadSize+(1<<20))

		file, header, err := r.FormFile(uploadFieldName)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "File exceeds the 5 MB limit")
				return
			}
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		url, err := svc.Store(r.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidFileType):
				writeError(w, http.StatusBadRequest, "Invalid file type. Only JPEG and PNG are allowed.")
			case errors.Is(err, services.ErrFileTooLarge):
				writeError(w, http.StatusRequestEntityTooLarge, "File exceeds the 5 MB limit")
			case errors.Is(err, services.ErrNoFile):
				writeError(w, http.StatusBadRequest, "No file uploaded")
			default:
				logger.Log.Errorw("upload failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, UploadResponse{URL: url})
	}
}
