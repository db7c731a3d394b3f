package http

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// UploadPolicy describes which multipart files an endpoint accepts and where they go.
type UploadPolicy struct {
	Field       string
	MaxFiles    int
	MaxFileSize int64
	Folder      string
}

var (
	// ProofUploadPolicy accepts up to five images in the "files" field.
	ProofUploadPolicy = UploadPolicy{
		Field:       "files",
		MaxFiles:    5,
		MaxFileSize: 10 << 20,
		Folder:      "proofs",
	}

	// AvatarUploadPolicy accepts a single image of at most 3 MB in the "file" field.
	AvatarUploadPolicy = UploadPolicy{
		Field:       "file",
		MaxFiles:    1,
		MaxFileSize: 3 << 20,
		Folder:      "avatars",
	}
)

// sniffLen is how much of a file http.DetectContentType looks at.
const sniffLen = 512

var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Upload is a multipart file whose content has been identified as an accepted image.
type Upload struct {
	Header      *multipart.FileHeader
	ContentType string
}

// Files returns the files of the policy's field after checking count, size and type.
// The type is sniffed from the content; the declared Content-Type and the file
// name are ignored. A form without the field yields no files and no error.
func (p UploadPolicy) Files(form *multipart.Form) ([]Upload, error) {
	if form == nil {
		return nil, nil
	}

	files := form.File[p.Field]
	if len(files) > p.MaxFiles {
		return nil, errs.NewValueIsOutOfRangeError(p.Field+" count", len(files), 0, p.MaxFiles)
	}

	uploads := make([]Upload, 0, len(files))
	for _, fh := range files {
		if p.MaxFileSize > 0 && fh.Size > p.MaxFileSize {
			return nil, errs.NewValueIsOutOfRangeError(p.Field+" size", fh.Size, 0, p.MaxFileSize)
		}

		contentType, err := sniffContentType(fh)
		if err != nil {
			return nil, err
		}
		if !acceptedImageTypes[contentType] {
			return nil, errs.NewValueIsInvalidError(p.Field + ": only jpg, jpeg, png or webp images are allowed")
		}
		uploads = append(uploads, Upload{Header: fh, ContentType: contentType})
	}

	return uploads, nil
}

// Store saves every upload through storage and returns the URLs in upload order.
func (p UploadPolicy) Store(ctx context.Context, storage ports.FileStorage, uploads []Upload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	for _, u := range uploads {
		url, err := p.storeOne(ctx, storage, u)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (p UploadPolicy) storeOne(ctx context.Context, storage ports.FileStorage, u Upload) (string, error) {
	f, err := u.Header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return storage.Save(ctx, p.Folder, u.ContentType, f)
}

func sniffContentType(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}
