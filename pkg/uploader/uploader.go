package uploader

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores an incoming image and returns the public URL it will be
// served from.
type Uploader interface {
	Save(file *multipart.FileHeader) (string, error)
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".svg":  true,
}

// localUploader writes files to a directory served by the static route.
type localUploader struct {
	dir     string
	baseURL string
}

func NewLocalUploader(dir, baseURL string) (Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localUploader{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (u *localUploader) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	// uuid prefix avoids collisions and hides original names
	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(u.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s", u.baseURL, filename), nil
}
