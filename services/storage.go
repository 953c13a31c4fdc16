package services

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelier/photography-site-backend/config"
)

// MediaStorage uploads image originals to the object store backing the
// site's photo ingestion.
//
// Requires environment variables:
//   - MEDIA_BUCKET: target bucket
//   - MEDIA_PUBLIC_BASE_URL: public URL prefix objects are served from
//
// Credentials come from MEDIA_ACCESS_KEY_ID/MEDIA_SECRET_ACCESS_KEY when
// set, otherwise from the AWS default chain.
type MediaStorage struct {
	client *s3.Client
	bucket string
	public string
	logger zerolog.Logger
}

func NewMediaStorage(ctx context.Context, cfg map[string]string) (*MediaStorage, error) {
	bucket := config.GetString(cfg, "MEDIA_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("MEDIA_BUCKET environment variable is required")
	}
	publicBase := config.GetString(cfg, "MEDIA_PUBLIC_BASE_URL", "")
	if publicBase == "" {
		return nil, fmt.Errorf("MEDIA_PUBLIC_BASE_URL environment variable is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.GetString(cfg, "MEDIA_REGION", "us-east-1")),
	}
	accessKey := config.GetString(cfg, "MEDIA_ACCESS_KEY_ID", "")
	secretKey := config.GetString(cfg, "MEDIA_SECRET_ACCESS_KEY", "")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load object storage configuration: %w", err)
	}

	return &MediaStorage{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		public: publicBase,
		logger: log.With().Str("service", "mediaStorage").Logger(),
	}, nil
}

// Upload stores the object under key and returns its public URL.
func (s *MediaStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	url := fmt.Sprintf("%s/%s", s.public, key)
	s.logger.Info().Str("key", key).Str("url", url).Msg("Uploaded media object")
	return url, nil
}
