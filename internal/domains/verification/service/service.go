package service

import (
	"context"
	"dormy/config"
	"dormy/infras/otel"
	"dormy/infras/postgres"
	userModel "dormy/internal/domains/user/model"
	userRepository "dormy/internal/domains/user/repository"
	"dormy/internal/domains/verification/model"
	"dormy/internal/domains/verification/model/dto"
	"dormy/internal/domains/verification/repository"
	"dormy/internal/events"
	"dormy/shared"
	"dormy/shared/cache"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/failure"
	"dormy/shared/identity"
	"dormy/shared/timezone"
	"dormy/shared/validator"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var (
	cacheStatus = model.CachePrefix + "status"
	cacheList   = model.CachePrefix + "list"
)

type Verification interface {
	Submit(ctx context.Context, req dto.SubmitRequest) (dto.VerificationResponse, error)
	Status(ctx context.Context) (dto.StatusResponse, error)
	List(ctx context.Context, params gDto.QueryParams, req dto.ListRequest) (dto.GetVerificationsResponse, error)
	Approve(ctx context.Context, id string) (dto.ResolveResponse, error)
	Reject(ctx context.Context, id string) (dto.ResolveResponse, error)
}

type serviceImpl struct {
	repo      repository.Verification
	userRepo  userRepository.User
	tx        postgres.Transactor
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Verification,
	userRepo userRepository.User,
	tx postgres.Transactor,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Verification {
	return &serviceImpl{
		repo:      repo,
		userRepo:  userRepo,
		tx:        tx,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func byLandlord(landlordID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLandlordID,
				Value:    landlordID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// Submit files a new request. A landlord holding a pending or approved
// request cannot file another; a rejected one may retry.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRequest) (res dto.VerificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitVerification")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := identity.FromContext(ctx)
	if !caller.Is(constant.RoleLandlord) {
		return res, failure.Forbidden("only landlords can request verification") // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	filter := byLandlord(caller.UserID)
	filter.Add(gDto.Filter{
		Field:    model.FieldStatus,
		Value:    model.Blocking,
		Operator: gDto.FilterOperatorIn,
		Table:    model.TableName,
	})

	blocked, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("landlord", caller.UserID).Msg("failed to check open verification requests")

		return res, fmt.Errorf("failed to check verification requests: %w", err)
	}

	if blocked {
		return res, failure.Conflict("a verification request is already pending or approved") // nolint:wrapcheck
	}

	verification := req.ToModel(caller.UserID)

	if err = s.repo.Insert(ctx, verification); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflict("a verification request is already pending or approved") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert verification request")

		return res, fmt.Errorf("failed to submit verification: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.CachePrefix)

	res.FromModel(verification)

	return res, nil
}

// Status reports the landlord's latest request, or "not submitted".
func (s *serviceImpl) Status(ctx context.Context) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerificationStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := identity.FromContext(ctx)
	if !caller.Is(constant.RoleLandlord) {
		return res, failure.Forbidden("only landlords are verified") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheStatus, caller.UserID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	latest, err := s.repo.GetAll(ctx, gDto.QueryParams{
		Page:    1,
		Limit:   1,
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, byLandlord(caller.UserID))
	if err != nil {
		log.Error().Err(err).Str("landlord", caller.UserID).Msg("failed to get verification requests")

		return res, fmt.Errorf("failed to get verification status: %w", err)
	}

	res.Status = model.StatusNotSubmitted
	if len(latest) > 0 {
		res.Status = latest[0].Status
		res.RequestID = latest[0].ID
		res.Verified = latest[0].Status == model.StatusApproved
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save verification status to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, req dto.ListRequest) (res dto.GetVerificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListVerifications")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !identity.FromContext(ctx).Is(constant.RoleAdmin) {
		return res, failure.ForbiddenError
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	params.RestrictSort(model.FieldCreatedAt, model.FieldStatus)
	if params.SortBy == constant.Empty {
		params.SortBy, params.SortDir = constant.DefaultValueSortBy, constant.DefaultValueSortDir
	}

	filter := req.Filter()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheList, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count verification requests")

		return res, fmt.Errorf("failed to count verification requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get verification requests")

		return res, fmt.Errorf("failed to get verification requests: %w", err)
	}

	res.FromModels(models, params, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save verification requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) (res dto.ResolveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApproveVerification")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.resolve(ctx, id, model.StatusApproved)
}

func (s *serviceImpl) Reject(ctx context.Context, id string) (res dto.ResolveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RejectVerification")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.resolve(ctx, id, model.StatusRejected)
}

// resolve moves a pending request to status. Approval flips the landlord's
// verified flag in the same transaction.
func (s *serviceImpl) resolve(ctx context.Context, id, status string) (res dto.ResolveResponse, err error) {
	caller := identity.FromContext(ctx)
	if !caller.Is(constant.RoleAdmin) {
		return res, failure.ForbiddenError
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var resolved model.Verification

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		request, err := s.repo.GetTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get verification request: %w", err)
		}

		if request.ID == constant.Empty {
			return failure.NotFound("verification request not found") // nolint:wrapcheck
		}

		if request.Status != model.StatusPending {
			return failure.Conflict("verification request already " + request.Status) // nolint:wrapcheck
		}

		now := timezone.Now()
		reviewer := caller.Actor()

		fields := map[string]any{
			model.FieldStatus:        status,
			model.FieldReviewedBy:    reviewer,
			model.FieldReviewedAt:    now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: reviewer,
		}

		if _, err = s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update verification request: %w", err)
		}

		if status == model.StatusApproved {
			userFields := map[string]any{
				userModel.FieldVerified:  true,
				constant.FieldModifiedAt: now,
				constant.FieldModifiedBy: reviewer,
			}

			updated, err := s.userRepo.UpdateTx(ctx, tx, userFields,
				shared.FilterByID(request.LandlordID, userModel.FieldID, userModel.TableName))
			if err != nil {
				return fmt.Errorf("failed to mark landlord verified: %w", err)
			}

			if updated == 0 {
				return failure.Conflict("landlord account no longer exists") // nolint:wrapcheck
			}
		}

		request.Status = status
		resolved = request

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("verification", id).Str("status", status).Msg("failed to resolve verification request")

		return res, err //nolint:wrapcheck
	}

	shared.InvalidateCaches(ctx, s.cache, model.CachePrefix)

	event := events.Verification{
		RequestID:  resolved.ID,
		LandlordID: resolved.LandlordID,
		Status:     status,
		OccurredAt: timezone.Now(),
	}

	if err := s.publisher.Verification(ctx, event); err != nil {
		log.Warn().Err(err).Str("verification", id).Msg("verification event not published")
	}

	return dto.ResolveResponse{ID: resolved.ID, LandlordID: resolved.LandlordID, Status: status}, nil
}
