// Package filestorage implements ports.FileStorage on the local disk and on S3.
//
// Both backends name objects "<unix nanos>-<random><ext>" under the requested folder.
// The extension comes from the content type only; client file names are never used.
package filestorage

import (
	"fmt"
	"path"
	"strings"
	"time"

	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultExtension = ".bin"

var extensionsByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

func objectName(now time.Time, contentType string) string {
	ext := extensionsByContentType[strings.ToLower(strings.TrimSpace(contentType))]
	if ext == "" {
		ext = defaultExtension
	}
	return fmt.Sprintf("%d-%s%s", now.UnixNano(), strings.ReplaceAll(uuid.NewString(), "-", "")[:10], ext)
}

// cleanFolder rejects folders that would escape the storage root.
func cleanFolder(folder string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimSpace(folder))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.Contains(folder, "..") {
		return "", errs.NewValueIsInvalidError("folder")
	}
	return cleaned, nil
}
