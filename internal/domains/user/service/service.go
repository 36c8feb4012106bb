package service

import (
	"context"
	"dormy/config"
	"dormy/infras/otel"
	"dormy/internal/domains/user/model"
	"dormy/internal/domains/user/model/dto"
	"dormy/internal/domains/user/repository"
	"dormy/internal/events"
	"dormy/shared"
	"dormy/shared/cache"
	"dormy/shared/constant"
	"dormy/shared/failure"
	"dormy/shared/identity"
	"dormy/shared/validator"
	"fmt"

	"github.com/rs/zerolog/log"
)

var cachePaymentInfo = model.CachePrefix + "payment"

type User interface {
	Profile(ctx context.Context) (dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) error
	PaymentInfo(ctx context.Context, landlordID string) (dto.PaymentInfoResponse, error)
	// Contact satisfies events.Directory for the notification worker.
	Contact(ctx context.Context, userID string) (events.Contact, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Profile(ctx context.Context) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.find(ctx, identity.FromContext(ctx).UserID)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	caller := identity.FromContext(ctx)
	if req.TouchesPaymentInfo() && !caller.Is(constant.RoleLandlord) {
		return failure.Forbidden("only landlords carry payment details") // nolint:wrapcheck
	}

	affected, err := s.repo.Update(ctx, shared.TransformFields(req, caller.Actor()),
		shared.FilterByID(caller.UserID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", caller.UserID).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cachePaymentInfo, caller.UserID)); err != nil {
		log.Error().Err(err).Msg("failed to drop cached payment info")
	}

	return nil
}

// PaymentInfo returns a landlord's GCash details. An empty landlordID means
// the caller.
func (s *serviceImpl) PaymentInfo(ctx context.Context, landlordID string) (res dto.PaymentInfoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PaymentInfo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if landlordID == constant.Empty {
		landlordID = identity.FromContext(ctx).UserID
	}

	cacheKey := shared.BuildCacheKey(cachePaymentInfo, landlordID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	user, err := s.find(ctx, landlordID)
	if err != nil {
		return res, err
	}

	if user.Role != constant.RoleLandlord {
		return res, failure.NotFound("landlord not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment info to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Contact(ctx context.Context, userID string) (res events.Contact, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Contact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.find(ctx, userID)
	if err != nil {
		return res, err
	}

	return events.Contact{Email: user.Email, Name: user.FullName}, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return user, nil
}
