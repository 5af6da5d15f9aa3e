package repositories

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ghuser/swapspace/internal/logger"
)

// UploadFileRepository stores uploaded images on local disk under a single
// server-managed directory. Names are timestamp-prefixed so two uploads of
// the same file never collide.
type UploadFileRepository struct {
	baseDir string
}

// NewUploadFileRepository creates the upload directory if missing.
func NewUploadFileRepository(baseDir string) (*UploadFileRepository, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &UploadFileRepository{baseDir: baseDir}, nil
}

// Save writes the file under a generated unique name and returns that name.
// A failed write leaves no partial file behind.
func (r *UploadFileRepository) Save(ctx context.Context, originalName string, src io.Reader) (string, error) {
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(originalName))
	path := filepath.Join(r.baseDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		logger.Log.Errorw("upload create failed", "path", path, "error", err)
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		logger.Log.Errorw("upload write failed", "path", path, "error", err)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		logger.Log.Errorw("upload close failed", "path", path, "error", err)
		return "", err
	}

	logger.Log.Infow("file stored", "filename", filename)
	return filename, nil
}

// sanitizeName strips any path components from a client-supplied filename.
func sanitizeName(name string) string {
	name = filepath.Base(filepath.Clean(name))
	name = strings.ReplaceAll(name, string(filepath.Separator), "")
	if name == "." || name == ".." || name == "" {
		return "upload"
	}
	return name
}
