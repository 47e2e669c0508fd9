package infra

// storage.go — local disk storage for attachment uploads.
// Files are written under basePath/{anexoID}{ext}; the stored URL is the
// relative path served back through the download endpoint.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStorage persists uploaded attachment bytes.
type FileStorage struct {
	basePath string
}

func NewFileStorage(basePath string) *FileStorage {
	return &FileStorage{basePath: basePath}
}

// Save streams src to disk and returns the stored relative path.
func (s *FileStorage) Save(anexoID uuid.UUID, originalName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	name := anexoID.String() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.basePath, name))
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return name, nil
}

// Path resolves a stored relative path to its absolute location.
func (s *FileStorage) Path(stored string) string {
	return filepath.Join(s.basePath, filepath.Base(stored))
}

// Remove deletes a stored file; missing files are not an error.
func (s *FileStorage) Remove(stored string) error {
	err := os.Remove(s.Path(stored))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
