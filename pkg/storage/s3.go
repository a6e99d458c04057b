package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// URLExpiry bounds every presigned upload/download URL.
const URLExpiry = 15 * time.Minute

// Config holds S3 settings for the image bucket.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
}

// PresignClient signs time-bounded upload/download URLs for candidate photos
// and company logos. Key layout is owned here; the bucket only has to honor it:
//
//	candidates/<userId>/photo
//	companies/<userId>/logo
type PresignClient struct {
	bucket    string
	client    *s3.Client
	presigner *s3.PresignClient
}

func NewPresignClient(ctx context.Context, cfg Config) (*PresignClient, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &PresignClient{
		bucket:    cfg.Bucket,
		client:    client,
		presigner: s3.NewPresignClient(client),
	}, nil
}

// PhotoKey returns the object key for a candidate's profile photo.
func PhotoKey(userID string) string {
	return "candidates/" + userID + "/photo"
}

// LogoKey returns the object key for a company's logo.
func LogoKey(userID string) string {
	return "companies/" + userID + "/logo"
}

// UploadURL presigns a PUT for the given key and content type.
func (p *PresignClient) UploadURL(ctx context.Context, key, contentType string) (string, error) {
	req, err := p.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(URLExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// DownloadURL presigns a GET for the given key.
func (p *PresignClient) DownloadURL(ctx context.Context, key string) (string, error) {
	req, err := p.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(URLExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// Exists reports whether an object is present at key.
func (p *PresignClient) Exists(ctx context.Context, key string) (bool, error) {
	_, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
