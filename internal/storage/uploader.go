package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/valentinobarber/site-api/internal/config"
)

// Uploader writes gallery images to an S3-compatible bucket (AWS or R2,
// depending on S3_ENDPOINT) and returns their public URLs.
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	// Without a public base URL the stored object would have no usable
	// gallery URL, so uploads stay disabled rather than serving a
	// relative path.
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" || cfg.S3PublicBaseURL == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	return &Uploader{
		client:        s3.New(opts),
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}
}

func (u *Uploader) Enabled() bool {
	return u != nil
}

func (u *Uploader) PutWebP(
	ctx context.Context,
	key string,
	data []byte,
) (string, error) {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("image/webp"),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return u.publicBaseURL + "/" + key, nil
}
