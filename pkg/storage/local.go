package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalStorage saves uploaded files to a directory on disk and maps them to
// public URLs under a fixed prefix.
type LocalStorage struct {
	dir       string
	publicURL string
	log       *zap.Logger
}

func NewLocalStorage(dir, publicURL string, log *zap.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}

	return &LocalStorage{
		dir:       dir,
		publicURL: publicURL,
		log:       log.With(zap.String("storage", "local")),
	}, nil
}

// Dir returns the directory files are stored in, for static file serving.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes one multipart file to disk under a timestamp-keyed name,
// keeping the original extension. Returns the public URL of the file.
func (s *LocalStorage) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file %s: %w", fh.Filename, err)
	}
	defer src.Close()

	// Timestamp plus a random suffix; two files saved in the same
	// nanosecond must not collide.
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], filepath.Ext(fh.Filename))
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file %s: %w", path, err)
	}

	s.log.Debug("File stored",
		zap.String("original", fh.Filename),
		zap.String("stored", name),
		zap.Int64("size", fh.Size),
	)

	return s.publicURL + "/" + name, nil
}

// Remove deletes a previously stored file by its public URL. Used to clean
// up after a failed product insert; errors are reported but non-fatal.
func (s *LocalStorage) Remove(publicURL string) error {
	name := filepath.Base(publicURL)
	if name == "." || name == "/" {
		return fmt.Errorf("invalid file URL %q", publicURL)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("remove file %s: %w", name, err)
	}

	return nil
}
