package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	awscfg "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// ErrStorageNotConfigured is returned when uploads are attempted without
// S3 credentials present.
var ErrStorageNotConfigured = errors.New("object storage not configured")

var (
	s3Client     *s3.Client
	s3Bucket     string
	s3PublicBase string
)

// InitS3 configures the client. Missing env leaves uploads disabled rather
// than failing the process.
func InitS3() {
	s3Bucket = os.Getenv("S3_BUCKET")
	if s3Bucket == "" {
		slog.Warn("S3_BUCKET not set, image uploads disabled")
		return
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	cfg, err := awscfg.LoadDefaultConfig(context.TODO(), awscfg.WithRegion(region))
	if err != nil {
		slog.Error("loading AWS config failed, image uploads disabled", "error", err)
		return
	}

	s3Client = s3.NewFromConfig(cfg)
	s3PublicBase = os.Getenv("S3_PUBLIC_BASE_URL")
	if s3PublicBase == "" {
		s3PublicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s3Bucket, region)
	}
}

func StorageAvailable() bool { return s3Client != nil }

// UploadMealImage stores the image bytes under a random key that preserves
// the original file extension and returns the public URL.
func UploadMealImage(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if s3Client == nil {
		return "", ErrStorageNotConfigured
	}

	key := objectKey(filename)
	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("uploading to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", s3PublicBase, key), nil
}

// objectKey builds a collision-resistant storage key, keeping the original
// extension so the public URL stays content-typed.
func objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("meal-images/%s%s", uuid.NewString(), ext)
}
