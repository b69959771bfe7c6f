package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var (
	s3Client *s3.Client
	bucket   string
	region   string
)

func InitStorage(bucketName, awsRegion string) error {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	bucket = bucketName
	region = awsRegion
	return nil
}

// Ready reports whether the S3 client was initialized. Upload endpoints
// return 503 when storage was never configured.
func Ready() bool {
	return s3Client != nil
}

// UploadProjectImage stores a processed image under the project's prefix and
// returns its public URL.
func UploadProjectImage(ctx context.Context, projectID uint, body *bytes.Buffer, contentType string) (string, error) {
	key := fmt.Sprintf("projects/%d/images/%s.webp", projectID, uuid.NewString())
	return upload(ctx, key, body, contentType)
}

// UploadBrochure stores a project brochure PDF and returns its public URL.
func UploadBrochure(ctx context.Context, projectID uint, body *bytes.Buffer) (string, error) {
	key := fmt.Sprintf("projects/%d/brochure/%s.pdf", projectID, uuid.NewString())
	return upload(ctx, key, body, "application/pdf")
}

func upload(ctx context.Context, key string, body *bytes.Buffer, contentType string) (string, error) {
	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key), nil
}

// DeleteObject removes a previously uploaded file by its public URL.
func DeleteObject(ctx context.Context, publicURL string) error {
	parts := strings.SplitN(publicURL, ".amazonaws.com/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("not a storage URL: %s", publicURL)
	}

	_, err := s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(parts[1]),
	})
	return err
}
