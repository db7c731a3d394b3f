package filestorage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"
)

// PublicPrefix is the URL path under which local uploads are served.
const PublicPrefix = "/uploads"

// LocalStorage writes files below a root directory and returns "/uploads/<folder>/<name>" URLs.
type LocalStorage struct {
	root string
	now  func() time.Time
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if root == "" {
		return nil, errors.New("uploads directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{root: root, now: time.Now}, nil
}

// Root is the directory served under PublicPrefix.
func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) Save(ctx context.Context, folder, contentType string, r io.Reader) (string, error) {
	dir, err := cleanFolder(folder)
	if err != nil {
		return "", err
	}
	if err = ctx.Err(); err != nil {
		return "", err
	}

	target := filepath.Join(s.root, filepath.FromSlash(dir))
	if err = os.MkdirAll(target, 0o755); err != nil {
		return "", err
	}

	name := objectName(s.now(), contentType)
	f, err := os.OpenFile(filepath.Join(target, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}

	return PublicPrefix + "/" + dir + "/" + name, nil
}
