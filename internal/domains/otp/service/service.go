package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/rand"
	"dormy/config"
	"dormy/infras/mailer"
	"dormy/infras/otel"
	"dormy/internal/domains/otp/model"
	"dormy/internal/domains/otp/model/dto"
	"dormy/internal/domains/otp/store"
	"dormy/shared/constant"
	"dormy/shared/failure"
	"dormy/shared/metrics"
	"dormy/shared/timezone"
	"dormy/shared/validator"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
)

type OTP interface {
	Send(ctx context.Context, req dto.SendRequest) (dto.SendResponse, error)
	Verify(ctx context.Context, req dto.VerifyRequest) error
}

type serviceImpl struct {
	store  store.Store
	mailer mailer.Sender
	cfg    *config.Config
	otel   otel.Otel
	now    func() time.Time
}

func New(store store.Store, mailer mailer.Sender, cfg *config.Config, otel otel.Otel) OTP {
	return NewWithClock(store, mailer, cfg, otel, timezone.Now)
}

func NewWithClock(store store.Store, mailer mailer.Sender, cfg *config.Config, otel otel.Otel, now func() time.Time) OTP {
	return &serviceImpl{
		store:  store,
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
		now:    now,
	}
}

// Send replaces any pending code for the email.
func (s *serviceImpl) Send(ctx context.Context, req dto.SendRequest) (res dto.SendResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendOTP")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	code, err := generate(s.length())
	if err != nil {
		log.Error().Err(err).Msg("failed to generate otp")

		return res, fmt.Errorf("failed to generate otp: %w", err)
	}

	ttl := time.Duration(s.cfg.OTP.TTLMinutes) * time.Minute
	entry := model.Entry{OTP: code, ExpiresAt: s.now().Add(ttl)}

	if err = s.store.Put(ctx, req.Email, entry, ttl); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to store otp")

		return res, fmt.Errorf("failed to store otp: %w", err)
	}

	res.Message = model.MessageSent

	if !s.mailer.Configured() {
		log.Warn().Str("email", req.Email).Str("otp", code).Msg("mail not configured, returning otp in response")

		res.OTP = code
	} else {
		err = s.mailer.Send(ctx, mailer.Mail{
			To:      []string{req.Email},
			Subject: "Your Dormy verification code",
			Body:    fmt.Sprintf("Your verification code is %s. It expires in %d minutes.\n", code, s.cfg.OTP.TTLMinutes),
		})
		if err != nil {
			log.Error().Err(err).Str("email", req.Email).Msg("failed to mail otp")

			return res, fmt.Errorf("failed to send otp: %w", err)
		}
	}

	metrics.IncOTPSent()

	return res, nil
}

// Verify consumes the code on success. The consume is a compare-and-delete,
// so a racing verify or a freshly sent code makes it fail.
func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyOTP")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		metrics.IncOTPVerified(metrics.ResultInvalid)

		return err //nolint:wrapcheck
	}

	entry, err := s.store.Get(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		metrics.IncOTPVerified(metrics.ResultInvalid)

		return failure.BadRequestFromString(model.MessageInvalid) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to read otp")
		metrics.IncOTPVerified(metrics.ResultFailure)

		return fmt.Errorf("failed to read otp: %w", err)
	}

	if entry.Expired(s.now()) {
		if _, err := s.store.Consume(ctx, req.Email, entry.OTP); err != nil {
			log.Warn().Err(err).Str("email", req.Email).Msg("failed to drop expired otp")
		}

		metrics.IncOTPVerified(metrics.ResultInvalid)

		return failure.BadRequestFromString(model.MessageInvalid) // nolint:wrapcheck
	}

	if entry.OTP != req.OTP {
		metrics.IncOTPVerified(metrics.ResultInvalid)

		return failure.BadRequestFromString(model.MessageInvalid) // nolint:wrapcheck
	}

	consumed, err := s.store.Consume(ctx, req.Email, req.OTP)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to consume otp")
		metrics.IncOTPVerified(metrics.ResultFailure)

		return fmt.Errorf("failed to consume otp: %w", err)
	}

	if !consumed {
		metrics.IncOTPVerified(metrics.ResultInvalid)

		return failure.BadRequestFromString(model.MessageInvalid) // nolint:wrapcheck
	}

	metrics.IncOTPVerified(metrics.ResultSuccess)

	return nil
}

func (s *serviceImpl) length() int {
	if s.cfg.OTP.Length <= 0 {
		return 4
	}

	return s.cfg.OTP.Length
}

func generate(digits int) (string, error) {
	upper := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)

	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", digits, n), nil
}
