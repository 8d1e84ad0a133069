package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"

	appconfig "menu-cms/internal/config"
)

// s3Storage implements ObjectStorage against AWS S3 or any S3-compatible
// server (MinIO, localstack) via a custom endpoint.
type s3Storage struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
	logger   zerolog.Logger
}

// NewS3Storage creates an S3-backed object storage client.
func NewS3Storage(ctx context.Context, cfg appconfig.StorageConfig, logger zerolog.Logger) (ObjectStorage, error) {
	logger = logger.With().Str("component", "s3-storage").Logger()

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// S3-compatible servers generally do not support
			// virtual-hosted bucket addressing.
			o.UsePathStyle = true
		}
	})

	logger.Info().
		Str("bucket", cfg.Bucket).
		Str("region", cfg.Region).
		Msg("S3 storage initialised")

	return &s3Storage{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
		logger:   logger,
	}, nil
}

// Upload stores the file at localPath under objectID with public read access.
func (s *s3Storage) Upload(ctx context.Context, localPath, objectID string) (UploadResult, error) {
	s.logger.Info().
		Str("bucket", s.bucket).
		Str("object_id", objectID).
		Str("file", localPath).
		Msg("uploading object to S3")

	file, err := os.Open(localPath)
	if err != nil {
		s.logger.Error().Err(err).Str("file", localPath).Msg("failed to open staged file")
		return UploadResult{}, fmt.Errorf("failed to open staged file %s: %w", localPath, err)
	}
	defer file.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectID),
		Body:        file,
		ContentType: aws.String("application/pdf"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("object_id", objectID).
			Msg("failed to put object to S3")
		return UploadResult{}, fmt.Errorf("failed to put object %s (bucket=%s): %w", objectID, s.bucket, err)
	}

	result := UploadResult{
		PublicURL: s.publicURL(objectID),
		ObjectID:  objectID,
	}

	s.logger.Info().
		Str("object_id", objectID).
		Str("url", result.PublicURL).
		Msg("object uploaded successfully")

	return result, nil
}

// Delete removes the object with the given id.
func (s *s3Storage) Delete(ctx context.Context, objectID string) error {
	s.logger.Info().
		Str("bucket", s.bucket).
		Str("object_id", objectID).
		Msg("deleting object from S3")

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectID),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("object_id", objectID).
			Msg("failed to delete object from S3")
		return fmt.Errorf("failed to delete object %s (bucket=%s): %w", objectID, s.bucket, err)
	}

	return nil
}

// publicURL builds the public read URL for an object.
func (s *s3Storage) publicURL(objectID string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectID)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectID)
}
