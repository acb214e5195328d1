package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Config holds S3-compatible storage configuration.
type S3Config struct {
	// Bucket name (required).
	Bucket string

	// Static credentials (required).
	AccessKey string
	SecretKey string

	// Endpoint overrides the AWS endpoint for MinIO and other
	// S3-compatible services.
	Endpoint string

	// Region defaults to us-east-1.
	Region string

	// PublicURL is a CDN or bucket website prefix used for public files.
	PublicURL string

	// PathStyle enables path-style addressing (required for MinIO).
	PathStyle bool

	// PresignExpiry bounds signed URL lifetime. Defaults to 15 minutes.
	PresignExpiry time.Duration
}

func (c *S3Config) applyDefaults() {
	if c.Region == "" {
		c.Region = "us-east-1"
	}
	if c.PresignExpiry <= 0 {
		c.PresignExpiry = 15 * time.Minute
	}
}

func (c *S3Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		return fmt.Errorf("%w: credentials are required", ErrInvalidConfig)
	}
	return nil
}

// S3Storage stores uploads in S3-compatible object storage.
type S3Storage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	cfg       S3Config
}

// NewS3Storage creates the backend from config.
func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	client := s3.New(s3.Options{}, opts...)
	return &S3Storage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		cfg:       cfg,
	}, nil
}

func (s *S3Storage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, acl ACL) error {
	cannedACL := types.ObjectCannedACLPrivate
	if acl == ACLPublicRead {
		cannedACL = types.ObjectCannedACLPublicRead
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           cannedACL,
	})
	if err != nil {
		return errors.Join(ErrUploadFailed, err)
	}
	return nil
}

func (s *S3Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapS3Error(err)
	}
	return out.Body, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Join(ErrDeleteFailed, err)
	}
	return nil
}

// URL returns the public URL for public files and a presigned URL for
// private ones.
func (s *S3Storage) URL(ctx context.Context, key string, acl ACL) (string, error) {
	if acl == ACLPublicRead {
		if s.cfg.PublicURL != "" {
			base, err := url.Parse(s.cfg.PublicURL)
			if err != nil {
				return "", fmt.Errorf("%w: bad public url: %s", ErrInvalidConfig, err)
			}
			return base.JoinPath(key).String(), nil
		}
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key), nil
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.cfg.PresignExpiry))
	if err != nil {
		return "", fmt.Errorf("upload: presigning url: %w", err)
	}
	return req.URL, nil
}

func mapS3Error(err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return ErrNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return ErrNotFound
		}
	}
	return err
}
