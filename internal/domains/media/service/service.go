package service

import (
	"context"
	"dormy/config"
	"dormy/infras/otel"
	"dormy/infras/s3"
	"dormy/internal/domains/media/image"
	"dormy/internal/domains/media/model"
	"dormy/internal/domains/media/model/dto"
	"dormy/shared/base64"
	"dormy/shared/constant"
	"dormy/shared/failure"
	"dormy/shared/identity"
	"dormy/shared/metrics"
	"dormy/shared/validator"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultUploadTimeout = 30 * time.Second

type Media interface {
	Upload(ctx context.Context, req dto.UploadRequest) (dto.UploadResponse, error)
	UploadBase64(ctx context.Context, req dto.UploadBase64Request) (dto.UploadResponse, error)
}

type serviceImpl struct {
	s3   s3.S3
	cfg  *config.Config
	otel otel.Otel
}

func New(s3 s3.S3, cfg *config.Config, otel otel.Otel) Media {
	return &serviceImpl{
		s3:   s3,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadRequest) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		metrics.IncMediaUpload(metrics.ResultInvalid)

		return res, err //nolint:wrapcheck
	}

	metadata := map[string]string{}
	if req.UploadPreset != constant.Empty {
		metadata[model.MetaUploadPreset] = req.UploadPreset
	}

	return s.store(ctx, req.Folder, req.Content, metadata)
}

func (s *serviceImpl) UploadBase64(ctx context.Context, req dto.UploadBase64Request) (res dto.UploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadBase64")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		metrics.IncMediaUpload(metrics.ResultInvalid)

		return res, err //nolint:wrapcheck
	}

	_, body, err := base64.Decode(req.Data)
	if err != nil {
		metrics.IncMediaUpload(metrics.ResultInvalid)

		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	return s.store(ctx, req.Folder, body, map[string]string{})
}

type outcome struct {
	res dto.UploadResponse
	err error
}

// store scales and uploads body under the upload deadline. The deadline is
// enforced here as well as through ctx, since scaling does not observe ctx.
func (s *serviceImpl) store(ctx context.Context, folder string, body []byte, metadata map[string]string) (dto.UploadResponse, error) {
	timeout := s.cfg.Media.UploadTimeout
	if timeout <= 0 {
		timeout = defaultUploadTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	metadata[model.MetaUploadedBy] = identity.FromContext(ctx).Actor()

	done := make(chan outcome, 1)

	go func() {
		res, err := s.put(ctx, folder, body, metadata)
		done <- outcome{res: res, err: err}
	}()

	select {
	case out := <-done:
		if out.err == nil {
			metrics.IncMediaUpload(metrics.ResultSuccess)

			return out.res, nil
		}

		if errors.Is(out.err, context.DeadlineExceeded) {
			return dto.UploadResponse{}, s.timedOut(folder, timeout)
		}

		if errors.Is(out.err, image.ErrUnsupported) {
			metrics.IncMediaUpload(metrics.ResultInvalid)

			return dto.UploadResponse{}, failure.BadRequest(out.err) //nolint:wrapcheck
		}

		metrics.IncMediaUpload(metrics.ResultFailure)
		log.Error().Err(out.err).Str("folder", folder).Msg("failed to upload media")

		return dto.UploadResponse{}, fmt.Errorf("failed to upload media: %w", out.err)
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return dto.UploadResponse{}, s.timedOut(folder, timeout)
		}

		return dto.UploadResponse{}, fmt.Errorf("upload aborted: %w", ctx.Err())
	}
}

func (s *serviceImpl) timedOut(folder string, timeout time.Duration) error {
	metrics.IncMediaUpload(metrics.ResultTimeout)
	log.Warn().Str("folder", folder).Dur("timeout", timeout).Msg("media upload timed out")

	return failure.GatewayTimeout(model.MessageTimedOut) //nolint:wrapcheck
}

func (s *serviceImpl) put(ctx context.Context, folder string, body []byte, metadata map[string]string) (res dto.UploadResponse, err error) {
	fitted, err := image.Fit(body, s.cfg.Media.MaxImageWidth)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	key := path.Join(folder, uuid.NewString()+fitted.Extension)

	url, err := s.s3.Put(ctx, key, fitted.ContentType, fitted.Body, metadata)
	if err != nil {
		return res, fmt.Errorf("failed to put object: %w", err)
	}

	return dto.UploadResponse{
		SecureURL: url,
		Key:       key,
		Width:     fitted.Width,
		Height:    fitted.Height,
	}, nil
}
