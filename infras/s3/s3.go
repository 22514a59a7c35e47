package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"luna/config"
	"luna/infras/otel"
	"luna/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "s3.object_key"
	otelAttrBucket    = "s3.bucket"
	otelAttrSize      = "s3.size"

	// listing photos are immutable once stored under a fresh name
	imageCacheControl = "public, max-age=31536000, immutable"
	region            = "auto"
)

// S3 stores listing photos in an S3 compatible bucket. An empty bucket name
// means the configured one.
type S3 interface {
	UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
	GetObjectNameFromURL(bucketName, url string) (objectName string)
}

type s3Impl struct {
	client       *s3.Client
	endpoint     string
	bucket       string
	publicDomain string
	otel         otel.Otel
}

func New(config *config.Config, otel otel.Otel) S3 {
	s3Config := config.External.S3

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Config.AccessKeyID, s3Config.SecretAccessKey, "")),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load object storage configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s3Config.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(s3Config.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client:       client,
		endpoint:     strings.TrimSuffix(s3Config.APIEndpoint, "/"),
		bucket:       s3Config.BucketName,
		publicDomain: strings.TrimSuffix(s3Config.PublicDomain, "/"),
		otel:         otel,
	}
}

func (svc *s3Impl) bucketOrDefault(bucketName string) string {
	if bucketName == constant.Empty {
		return svc.bucket
	}

	return bucketName
}

// publicURL is where a stored object is served from. The public domain is
// bound to the bucket, so the bucket is not part of the path.
func (svc *s3Impl) publicURL(objectKey string) string {
	return svc.publicDomain + "/" + objectKey
}

func (svc *s3Impl) UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName = svc.bucketOrDefault(bucketName)
	objectKey := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucketName,
		otelAttrSize:      fileHeader.Size,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectKey),
		Body:          file,
		ContentType:   aws.String(fileHeader.Header.Get(constant.RequestHeaderContentType)),
		ContentLength: aws.Int64(fileHeader.Size),
		CacheControl:  aws.String(imageCacheControl),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload %s: %w", objectKey, err)
	}

	return svc.publicURL(objectKey), nil
}

func (svc *s3Impl) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName = svc.bucketOrDefault(bucketName)
	objectKey := path.Join(directory, objectName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucketName,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete object")

		return fmt.Errorf("failed to delete %s: %w", objectKey, err)
	}

	return nil
}

// GetObjectNameFromURL recovers the object key from a public or path-style
// URL. URLs pointing anywhere else, such as seeded third-party images, give
// an empty name.
func (svc *s3Impl) GetObjectNameFromURL(bucketName, url string) string {
	bucketName = svc.bucketOrDefault(bucketName)

	prefixes := []string{}
	if svc.publicDomain != constant.Empty {
		prefixes = append(prefixes, svc.publicDomain+"/")
	}

	if svc.endpoint != constant.Empty {
		prefixes = append(prefixes, svc.endpoint+"/"+bucketName+"/")
	}

	for _, prefix := range prefixes {
		if key, ok := strings.CutPrefix(url, prefix); ok && key != constant.Empty {
			return key
		}
	}

	return constant.Empty
}
