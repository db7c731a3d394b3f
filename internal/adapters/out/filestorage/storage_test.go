package filestorage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"orderdesk/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	now := time.Unix(0, 1_700_000_000_000_000_123)

	tests := []struct {
		name        string
		contentType string
		wantExt     string
	}{
		{"png", "image/png", ".png"},
		{"jpeg", "image/jpeg", ".jpg"},
		{"webp upper case", "IMAGE/WEBP", ".webp"},
		{"html is not served as html", "text/html; charset=utf-8", ".bin"},
		{"unknown type", "application/octet-stream", ".bin"},
		{"empty type", "", ".bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := objectName(now, tt.contentType)

			assert.True(t, strings.HasPrefix(name, "1700000000000000123-"), name)
			assert.True(t, strings.HasSuffix(name, tt.wantExt), name)
			assert.NotContains(t, name, "/")
		})
	}

	assert.NotEqual(t, objectName(now, "image/jpeg"), objectName(now, "image/jpeg"))
}

func TestCleanFolder(t *testing.T) {
	got, err := cleanFolder("proofs")
	require.NoError(t, err)
	assert.Equal(t, "proofs", got)

	got, err = cleanFolder("/avatars/")
	require.NoError(t, err)
	assert.Equal(t, "avatars", got)

	for _, bad := range []string{"", " ", "../secrets", "proofs/../../x"} {
		_, err = cleanFolder(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}

func TestLocalStorage_Save(t *testing.T) {
	root := t.TempDir()
	storage, err := NewLocalStorage(root)
	require.NoError(t, err)

	url, err := storage.Save(context.Background(), "proofs", "image/png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/proofs/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	content, err := os.ReadFile(filepath.Join(root, "proofs", filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestLocalStorage_Save_CancelledContext(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = storage.Save(ctx, "proofs", "image/png", strings.NewReader("x"))

	require.ErrorIs(t, err, context.Canceled)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("client went away")
}

func TestLocalStorage_Save_ReadFailure_RemovesPartialFile(t *testing.T) {
	root := t.TempDir()
	storage, err := NewLocalStorage(root)
	require.NoError(t, err)

	_, err = storage.Save(context.Background(), "avatars", "image/jpeg", failingReader{})

	require.Error(t, err)
	entries, err := os.ReadDir(filepath.Join(root, "avatars"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewLocalStorage_RequiresRoot(t *testing.T) {
	_, err := NewLocalStorage("")

	require.Error(t, err)
}

type fakeS3 struct {
	puts []*s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, in)
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("multipart upload not expected")
}

func (f *fakeS3) CreateMultipartUpload(
	context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options),
) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("multipart upload not expected")
}

func (f *fakeS3) CompleteMultipartUpload(
	context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options),
) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("multipart upload not expected")
}

func (f *fakeS3) AbortMultipartUpload(
	context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options),
) (*s3.AbortMultipartUploadOutput, error) {
	return &s3.AbortMultipartUploadOutput{}, nil
}

func TestS3Storage_Save(t *testing.T) {
	client := &fakeS3{}
	storage, err := NewS3Storage(client, "orderdesk-media", "https://cdn.example.com/")
	require.NoError(t, err)

	url, err := storage.Save(context.Background(), "proofs", "image/webp", bytes.NewReader([]byte("webp")))

	require.NoError(t, err)
	require.Len(t, client.puts, 1)
	put := client.puts[0]
	assert.Equal(t, "orderdesk-media", aws.ToString(put.Bucket))
	assert.True(t, strings.HasPrefix(aws.ToString(put.Key), "proofs/"))
	assert.Equal(t, "image/webp", aws.ToString(put.ContentType))
	assert.Equal(t, "https://cdn.example.com/"+aws.ToString(put.Key), url)
	assert.Equal(t, []byte("webp"), client.body)
}

func TestS3Storage_Save_PropagatesUploadError(t *testing.T) {
	client := &fakeS3{err: errors.New("access denied")}
	storage, err := NewS3Storage(client, "bucket", "https://cdn.example.com")
	require.NoError(t, err)

	_, err = storage.Save(context.Background(), "avatars", "image/png", strings.NewReader("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestNewS3Storage_RequiresSettings(t *testing.T) {
	_, err := NewS3Storage(&fakeS3{}, "", "https://cdn.example.com")
	require.Error(t, err)

	_, err = NewS3Storage(&fakeS3{}, "bucket", "")
	require.Error(t, err)
}
