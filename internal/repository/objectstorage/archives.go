package objectstorage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/kurochkinivan/promo_cards/internal/config"
	"github.com/kurochkinivan/promo_cards/internal/domain"
)

const archiveContentType = "application/zip"

type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// NewClient builds an S3 client for MinIO-compatible endpoints when one is configured.
func NewClient(ctx context.Context, cfg config.Storage) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

type ArchivesRepository struct {
	client Client
	bucket string
	prefix string
}

func NewArchivesRepository(client Client, bucket, prefix string) *ArchivesRepository {
	return &ArchivesRepository{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (r *ArchivesRepository) Put(ctx context.Context, key string, rd io.Reader) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.prefix + key),
		Body:        rd,
		ContentType: aws.String(archiveContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put archive %q: %w", key, err)
	}

	return nil
}

func (r *ArchivesRepository) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.prefix + key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: archive %q", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to get archive %q: %w", key, err)
	}

	return out.Body, nil
}

func (r *ArchivesRepository) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.prefix + key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete archive %q: %w", key, err)
	}

	return nil
}
