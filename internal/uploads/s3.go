package uploads

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the subset of the S3 client used for archiving.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive writes originals to an S3 bucket.
type S3Archive struct {
	client PutObjectAPI
	bucket string
	now    func() time.Time
}

// NewS3Archive wraps an existing client.
func NewS3Archive(client PutObjectAPI, bucket string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket, now: time.Now}
}

// NewS3ArchiveFromEnv loads AWS credentials from the default chain.
func NewS3ArchiveFromEnv(ctx context.Context, bucket, region string) (*S3Archive, error) {
	opts := []func(*awsConfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsConfig.WithRegion(region))
	}
	cfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewS3Archive(s3.NewFromConfig(cfg), bucket), nil
}

// Store implements Archive.
func (a *S3Archive) Store(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	key := ObjectKey(fileName, a.now())
	input := &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := a.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s to s3://%s: %w", fileName, a.bucket, err)
	}
	return key, nil
}
