package service

import (
	"context"
	"dormy/infras/otel"
	listingModel "dormy/internal/domains/listing/model"
	listingDto "dormy/internal/domains/listing/model/dto"
	listingRepository "dormy/internal/domains/listing/repository"
	"dormy/internal/domains/like/cache"
	"dormy/internal/domains/like/model/dto"
	"dormy/internal/domains/like/repository"
	"dormy/shared"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/failure"
	"dormy/shared/identity"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

type Like interface {
	Like(ctx context.Context, listingID string) (dto.ToggleResponse, error)
	Unlike(ctx context.Context, listingID string) (dto.ToggleResponse, error)
	Toggle(ctx context.Context, listingID string) (dto.ToggleResponse, error)
	IDs(ctx context.Context) (dto.IDsResponse, error)
	Listings(ctx context.Context) ([]listingDto.ListingResponse, error)
}

type serviceImpl struct {
	repo        repository.Like
	cache       cache.Likes
	listingRepo listingRepository.Listing
	otel        otel.Otel
}

func New(repo repository.Like, cache cache.Likes, listingRepo listingRepository.Listing, otel otel.Otel) Like {
	return &serviceImpl{
		repo:        repo,
		cache:       cache,
		listingRepo: listingRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) caller(ctx context.Context) (string, error) {
	caller := identity.FromContext(ctx)
	if !caller.Authenticated() {
		return "", failure.Unauthorized("login required") // nolint:wrapcheck
	}

	return caller.UserID, nil
}

func (s *serviceImpl) Like(ctx context.Context, listingID string) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Like")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := s.caller(ctx)
	if err != nil {
		return res, err
	}

	if err = s.like(ctx, userID, listingID); err != nil {
		return res, err
	}

	return dto.ToggleResponse{ListingID: listingID, Liked: true}, nil
}

func (s *serviceImpl) Unlike(ctx context.Context, listingID string) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unlike")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := s.caller(ctx)
	if err != nil {
		return res, err
	}

	if err = s.unlike(ctx, userID, listingID); err != nil {
		return res, err
	}

	return dto.ToggleResponse{ListingID: listingID, Liked: false}, nil
}

// Toggle decides from the store of record, not the cache.
func (s *serviceImpl) Toggle(ctx context.Context, listingID string) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleLike")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := s.caller(ctx)
	if err != nil {
		return res, err
	}

	liked, err := s.repo.Exists(ctx, userID, listingID)
	if err != nil {
		log.Error().Err(err).Str("listing", listingID).Msg("failed to check like")

		return res, fmt.Errorf("failed to check like: %w", err)
	}

	if liked {
		err = s.unlike(ctx, userID, listingID)
	} else {
		err = s.like(ctx, userID, listingID)
	}

	if err != nil {
		return res, err
	}

	return dto.ToggleResponse{ListingID: listingID, Liked: !liked}, nil
}

func (s *serviceImpl) IDs(ctx context.Context) (res dto.IDsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LikedIDs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := s.caller(ctx)
	if err != nil {
		return res, err
	}

	ids, err := s.ids(ctx, userID)
	if err != nil {
		return res, err
	}

	return dto.IDsResponse{ListingIDs: ids}, nil
}

// Listings resolves liked ids to listings, newest listing first. Likes
// pointing at deleted listings are skipped.
func (s *serviceImpl) Listings(ctx context.Context) (res []listingDto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LikedListings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := s.ids(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []listingDto.ListingResponse{}, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    listingModel.FieldID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    listingModel.TableName,
			},
		},
	}

	listings, err := s.listingRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  listingModel.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get liked listings")

		return nil, fmt.Errorf("failed to get liked listings: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"like.ids":      len(ids),
		"like.resolved": len(listings),
	})

	return listingDto.FromModels(listings), nil
}

// ids reads through the cache. A failed fill is logged; the store result is
// still returned.
func (s *serviceImpl) ids(ctx context.Context, userID string) ([]string, error) {
	ids, hit, err := s.cache.Members(ctx, userID)
	if err == nil && hit {
		return ids, nil
	}

	if err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("liked set unreadable, falling back to store")
	}

	ids, err = s.repo.ListingIDs(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user", userID).Msg("failed to list likes")

		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	slices.Sort(ids)

	if err := s.cache.Fill(ctx, userID, ids); err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("failed to fill liked set")
	}

	return ids, nil
}

func (s *serviceImpl) like(ctx context.Context, userID, listingID string) error {
	exists, err := s.listingRepo.Exist(ctx, shared.FilterByID(listingID, listingModel.FieldID, listingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("listing", listingID).Msg("failed to check listing")

		return fmt.Errorf("failed to check listing: %w", err)
	}

	if !exists {
		return failure.NotFound("listing not found") // nolint:wrapcheck
	}

	if err = s.repo.Add(ctx, userID, listingID); err != nil {
		log.Error().Err(err).Str("listing", listingID).Msg("failed to add like")

		return fmt.Errorf("failed to like listing: %w", err)
	}

	s.sync(ctx, userID, s.cache.Add(ctx, userID, listingID))

	return nil
}

// unlike does not require the listing to still exist.
func (s *serviceImpl) unlike(ctx context.Context, userID, listingID string) error {
	if _, err := s.repo.Remove(ctx, userID, listingID); err != nil {
		log.Error().Err(err).Str("listing", listingID).Msg("failed to remove like")

		return fmt.Errorf("failed to unlike listing: %w", err)
	}

	s.sync(ctx, userID, s.cache.Remove(ctx, userID, listingID))

	return nil
}

// sync drops the user's set when a cache write failed so the next read
// reloads it from the store.
func (s *serviceImpl) sync(ctx context.Context, userID string, cacheErr error) {
	if cacheErr == nil {
		return
	}

	log.Warn().Err(cacheErr).Str("user", userID).Msg("liked set out of sync, dropping")

	if err := s.cache.Drop(ctx, userID); err != nil {
		log.Error().Err(err).Str("user", userID).Msg("failed to drop liked set")
	}
}
