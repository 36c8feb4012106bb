package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"dormy/config"
	"dormy/infras/otel"
	"dormy/shared/constant"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// S3 stores media objects and returns their public URL.
type S3 interface {
	Put(ctx context.Context, key, contentType string, body []byte, metadata map[string]string) (url string, err error)
	Delete(ctx context.Context, key string) error
	ObjectKeyFromURL(url string) string
}

// objectAPI is the part of *s3.Client used here.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Impl struct {
	client       objectAPI
	bucket       string
	publicDomain string
	apiEndpoint  string
	otel         otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) S3 {
	bucket := cfg.Media.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(bucket.AccessKeyID, bucket.SecretAccessKey, "")),
		awsConfig.WithRegion(bucket.Region),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if bucket.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(bucket.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return NewWithClient(client, bucket.BucketName, bucket.PublicDomain, bucket.APIEndpoint, ot)
}

func NewWithClient(client objectAPI, bucket, publicDomain, apiEndpoint string, ot otel.Otel) S3 {
	return &s3Impl{
		client:       client,
		bucket:       bucket,
		publicDomain: strings.TrimRight(publicDomain, "/"),
		apiEndpoint:  strings.TrimRight(apiEndpoint, "/"),
		otel:         ot,
	}
}

func (svc *s3Impl) Put(ctx context.Context, key, contentType string, body []byte, metadata map[string]string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		Metadata:      metadata,
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return svc.publicURL(key), nil
}

func (svc *s3Impl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrObjectKey, key)

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// ObjectKeyFromURL reverses publicURL for both the public domain and the
// path-style API endpoint. Foreign URLs yield "".
func (svc *s3Impl) ObjectKeyFromURL(url string) string {
	for _, prefix := range []string{svc.publicDomain + "/", svc.apiEndpoint + "/" + svc.bucket + "/"} {
		if prefix == "/" {
			continue
		}

		if key, ok := strings.CutPrefix(url, prefix); ok && key != "" {
			return key
		}
	}

	return constant.Empty
}

func (svc *s3Impl) publicURL(key string) string {
	if svc.publicDomain != "" {
		return svc.publicDomain + "/" + key
	}

	return svc.apiEndpoint + "/" + svc.bucket + "/" + key
}
