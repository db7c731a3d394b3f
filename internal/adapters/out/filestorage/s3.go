package filestorage

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client loads the default AWS credential chain. A non-empty endpoint points the
// client at an S3-compatible service such as LocalStack or MinIO.
func NewS3Client(ctx context.Context, endpoint string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// S3Storage uploads through the transfer manager and returns URLs below publicURL.
type S3Storage struct {
	uploader  *manager.Uploader
	bucket    string
	publicURL string
	now       func() time.Time
}

func NewS3Storage(client manager.UploadAPIClient, bucket, publicURL string) (*S3Storage, error) {
	if bucket == "" {
		return nil, errors.New("S3 bucket is required")
	}
	if publicURL == "" {
		return nil, errors.New("S3 public URL is required")
	}

	return &S3Storage{
		uploader:  manager.NewUploader(client),
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}, nil
}

func (s *S3Storage) Save(ctx context.Context, folder, contentType string, r io.Reader) (string, error) {
	dir, err := cleanFolder(folder)
	if err != nil {
		return "", err
	}

	key := dir + "/" + objectName(s.now(), contentType)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err = s.uploader.Upload(ctx, input); err != nil {
		return "", err
	}

	return s.publicURL + "/" + key, nil
}
