package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Listing=MockListingService

import (
	"context"
	"dormy/config"
	"dormy/infras/otel"
	"dormy/internal/domains/listing/model"
	"dormy/internal/domains/listing/model/dto"
	"dormy/internal/domains/listing/repository"
	"dormy/internal/domains/listing/search"
	"dormy/shared"
	"dormy/shared/cache"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/failure"
	"dormy/shared/identity"
	"dormy/shared/timezone"
	"dormy/shared/validator"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	cacheGetListing      = model.CachePrefix + "get"
	cacheGetAllListing   = model.CachePrefix + "gets"
	cacheCountListing    = model.CachePrefix + "count"
	cacheListingSnapshot = model.CachePrefix + "snapshot"
)

type Listing interface {
	Create(ctx context.Context, req dto.CreateListingRequest) (dto.ListingResponse, error)
	Get(ctx context.Context, id string) (dto.ListingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetListingsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Search(ctx context.Context, req dto.SearchRequest) ([]dto.ListingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateListingRequest) error
	MakeAvailable(ctx context.Context, id string) (dto.StatusResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Listing
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Listing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Listing {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateListingRequest) (res dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateListing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := identity.FromContext(ctx)
	if !caller.Is(constant.RoleLandlord) {
		return res, failure.Forbidden("only landlords can create listings") // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	listing := req.ToModel(caller.UserID)

	if err = s.repo.Insert(ctx, listing); err != nil {
		log.Error().Err(err).Msg("failed to insert listing")

		return res, fmt.Errorf("failed to create listing: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.CachePrefix)

	res.FromModel(listing)
	scope.SetAttribute("listing.id", listing.ID)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetListing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetListing, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for listing")

		return res, nil
	}

	return cache.Fill(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.ListingResponse, err error) {
		listing, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(listing)

		return res, nil
	})
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetListingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllListing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(model.FieldCreatedAt, model.FieldPrice, model.FieldName)
	if params.SortBy == constant.Empty {
		params.SortBy, params.SortDir = constant.DefaultValueSortBy, constant.DefaultValueSortDir
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllListing, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for listings")

		return res, nil
	}

	return cache.Fill(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetListingsResponse, err error) {
		total, err := s.Count(ctx, filter)
		if err != nil {
			return res, err
		}

		models, err := s.repo.GetAll(ctx, params, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get listings")

			return res, fmt.Errorf("failed to get listings: %w", err)
		}

		res.FromModels(models, params, total)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountListing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountListing, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	return cache.Fill(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count listings")

			return 0, fmt.Errorf("failed to count listings: %w", err)
		}

		return total, nil
	})
}

// Search filters the whole listing collection in memory, newest first.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res []dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchListing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	matched := search.Filter(snapshot, req.Query, req.Filters())
	scope.SetAttributes(map[string]any{
		"search.snapshot": len(snapshot),
		"search.matched":  len(matched),
	})

	return dto.FromModels(matched), nil
}

// snapshot is every listing, newest first. A snapshot read while a
// reservation is being approved is served but never cached.
func (s *serviceImpl) snapshot(ctx context.Context) (listings []model.Listing, err error) {
	if err = s.cache.Get(ctx, cacheListingSnapshot, &listings); err == nil {
		return listings, nil
	}

	return cache.Fill(ctx, s.cache, cacheListingSnapshot, s.cfg.Cache.TTL, func(ctx context.Context) ([]model.Listing, error) {
		listings, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}, gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to load listing snapshot")

			return nil, fmt.Errorf("failed to load listings: %w", err)
		}

		return listings, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateListingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateListing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := identity.FromContext(ctx)

	if _, err = s.owned(ctx, id, caller); err != nil {
		return err
	}

	fields := shared.TransformFields(req, caller.Actor())

	if _, err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update listing")

		return fmt.Errorf("failed to update listing: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.CachePrefix)

	return nil
}

// MakeAvailable overwrites the status whatever it was and whatever
// reservations still point at the listing.
func (s *serviceImpl) MakeAvailable(ctx context.Context, id string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MakeAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := identity.FromContext(ctx)

	listing, err := s.owned(ctx, id, caller)
	if err != nil {
		return res, err
	}

	fields := map[string]any{
		model.FieldStatus:        model.StatusAvailable,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: caller.Actor(),
	}

	if _, err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to make listing available")

		return res, fmt.Errorf("failed to update listing status: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.CachePrefix)

	log.Info().Str("id", id).Str("from", listing.Status).Msg("listing made available")

	return dto.StatusResponse{ID: id, Status: model.StatusAvailable}, nil
}

// Delete leaves reservations referencing the listing in place.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteListing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.owned(ctx, id, identity.FromContext(ctx)); err != nil {
		return err
	}

	if _, err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete listing")

		return fmt.Errorf("failed to delete listing: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.CachePrefix)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Listing, error) {
	listing, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get listing")

		return listing, fmt.Errorf("failed to get listing: %w", err)
	}

	if listing.ID == constant.Empty {
		return listing, failure.NotFound("listing not found") // nolint:wrapcheck
	}

	return listing, nil
}

func (s *serviceImpl) owned(ctx context.Context, id string, caller identity.Identity) (model.Listing, error) {
	listing, err := s.find(ctx, id)
	if err != nil {
		return listing, err
	}

	if !listing.OwnedBy(caller.UserID) {
		return listing, failure.Forbidden("listing belongs to another landlord") // nolint:wrapcheck
	}

	return listing, nil
}
