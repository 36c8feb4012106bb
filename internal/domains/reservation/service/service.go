package service

import (
	"context"
	"dormy/config"
	"dormy/infras/otel"
	"dormy/infras/postgres"
	listingModel "dormy/internal/domains/listing/model"
	listingRepository "dormy/internal/domains/listing/repository"
	"dormy/internal/domains/reservation/model"
	"dormy/internal/domains/reservation/model/dto"
	"dormy/internal/domains/reservation/repository"
	"dormy/internal/events"
	"dormy/shared"
	"dormy/shared/cache"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/failure"
	"dormy/shared/identity"
	"dormy/shared/metrics"
	"dormy/shared/timezone"
	"dormy/shared/validator"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var (
	cacheGetAllLandlord = model.CachePrefix + "landlord"
	cacheGetAllTenant   = model.CachePrefix + "tenant"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Approve(ctx context.Context, id string) (dto.ResolveResponse, error)
	Reject(ctx context.Context, id string) (dto.ResolveResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	ListForLandlord(ctx context.Context, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	ListForTenant(ctx context.Context, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	ExportForLandlord(ctx context.Context) ([]byte, error)
}

type serviceImpl struct {
	repo        repository.Reservation
	listingRepo listingRepository.Listing
	tx          postgres.Transactor
	publisher   events.Publisher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Reservation,
	listingRepo listingRepository.Listing,
	tx postgres.Transactor,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:        repo,
		listingRepo: listingRepo,
		tx:          tx,
		publisher:   publisher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create records the request only. The listing keeps its status, so several
// tenants may hold requests against the same listing at once.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := identity.FromContext(ctx)
	if !caller.Is(constant.RoleTenant) {
		return res, failure.Forbidden("only tenants can reserve a listing") // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	listing, err := s.listingRepo.Get(ctx, shared.FilterByID(req.ListingID, listingModel.FieldID, listingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("listing", req.ListingID).Msg("failed to get listing for reservation")

		return res, fmt.Errorf("failed to get listing: %w", err)
	}

	if listing.ID == constant.Empty {
		return res, failure.NotFound("listing not found") // nolint:wrapcheck
	}

	if req.LandlordID != constant.Empty && req.LandlordID != listing.LandlordID {
		return res, failure.BadRequestFromString("landlord_id does not own the listing") // nolint:wrapcheck
	}

	if req.Tenant.Email == constant.Empty {
		req.Tenant.Email = caller.Email
	}

	reservation := req.ToModel(caller.UserID, listing)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to insert reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.CachePrefix)

	reservation.ListingName = &listing.Name
	s.publish(ctx, events.TopicReservationCreated, reservation, "")

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) (res dto.ResolveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApproveReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.resolve(ctx, id, listingModel.StatusOccupied, events.TopicReservationApproved, metrics.OutcomeApproved)
}

func (s *serviceImpl) Reject(ctx context.Context, id string) (res dto.ResolveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RejectReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.resolve(ctx, id, listingModel.StatusAvailable, events.TopicReservationRejected, metrics.OutcomeRejected)
}

// resolve sets the listing status and deletes the reservation in one
// transaction. Both rows are locked first so two landlords' sessions cannot
// resolve the same reservation twice.
func (s *serviceImpl) resolve(ctx context.Context, id, status, topic, outcome string) (res dto.ResolveResponse, err error) {
	caller := identity.FromContext(ctx)
	reservationFilter := shared.FilterByID(id, model.FieldID, model.TableName)

	var resolved model.Reservation

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		reservation, err := s.repo.GetTx(ctx, tx, reservationFilter)
		if err != nil {
			return fmt.Errorf("failed to get reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return failure.NotFound("reservation not found") // nolint:wrapcheck
		}

		listingFilter := shared.FilterByID(reservation.ListingID, listingModel.FieldID, listingModel.TableName)

		listing, err := s.listingRepo.GetTx(ctx, tx, listingFilter)
		if err != nil {
			return fmt.Errorf("failed to get listing: %w", err)
		}

		owner := reservation.LandlordID
		if listing.ID != constant.Empty {
			owner = listing.LandlordID
		}

		if caller.UserID == constant.Empty || owner != caller.UserID {
			return failure.Forbidden("reservation belongs to another landlord") // nolint:wrapcheck
		}

		switch {
		case listing.ID != constant.Empty:
			fields := map[string]any{
				listingModel.FieldStatus: status,
				constant.FieldModifiedAt: timezone.Now(),
				constant.FieldModifiedBy: caller.Actor(),
			}

			if _, err = s.listingRepo.UpdateTx(ctx, tx, fields, listingFilter); err != nil {
				return fmt.Errorf("failed to update listing status: %w", err)
			}
		case status == listingModel.StatusOccupied:
			return failure.Conflict("listing no longer exists") // nolint:wrapcheck
		}

		deleted, err := s.repo.DeleteTx(ctx, tx, reservationFilter)
		if err != nil {
			return fmt.Errorf("failed to delete reservation: %w", err)
		}

		if deleted == 0 {
			return failure.NotFound("reservation already resolved") // nolint:wrapcheck
		}

		resolved = reservation

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("reservation", id).Str("outcome", outcome).Msg("failed to resolve reservation")

		return res, err //nolint:wrapcheck
	}

	metrics.IncReservationResolved(outcome)

	shared.InvalidateCaches(ctx, s.cache, model.CachePrefix)
	shared.InvalidateCaches(ctx, s.cache, listingModel.CachePrefix)

	s.publish(ctx, topic, resolved, status)

	return dto.ResolveResponse{ReservationID: resolved.ID, ListingID: resolved.ListingID, ListingStatus: status}, nil
}

// publish is best effort: the state change is already committed.
func (s *serviceImpl) publish(ctx context.Context, topic string, r model.Reservation, listingStatus string) {
	event := events.Reservation{
		ReservationID: r.ID,
		ListingID:     r.ListingID,
		LandlordID:    r.LandlordID,
		TenantID:      r.TenantID,
		TenantName:    r.TenantName,
		TenantEmail:   r.TenantEmail,
		ListingStatus: listingStatus,
		OccurredAt:    timezone.Now(),
	}

	if r.ListingName != nil {
		event.ListingName = *r.ListingName
	}

	if err := s.publisher.Reservation(ctx, topic, event); err != nil {
		log.Warn().Err(err).Str("topic", topic).Str("reservation", r.ID).Msg("reservation event not published")
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	caller := identity.FromContext(ctx)
	if !reservation.Involves(caller.UserID) && !caller.Is(constant.RoleAdmin) {
		return res, failure.ResourceRestrictedError
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) ListForLandlord(ctx context.Context, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForLandlord")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := identity.FromContext(ctx)
	if !caller.Is(constant.RoleLandlord) {
		return res, failure.Forbidden("only landlords can list incoming reservations") // nolint:wrapcheck
	}

	return s.list(ctx, cacheGetAllLandlord, params, model.FieldLandlordID, caller.UserID)
}

func (s *serviceImpl) ListForTenant(ctx context.Context, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForTenant")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := identity.FromContext(ctx)
	if !caller.Authenticated() {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	return s.list(ctx, cacheGetAllTenant, params, model.FieldTenantID, caller.UserID)
}

func (s *serviceImpl) list(ctx context.Context, prefix string, params gDto.QueryParams, field, userID string) (res dto.GetReservationsResponse, err error) {
	params.RestrictSort(model.FieldCreatedAt)
	if params.SortBy == constant.Empty {
		params.SortBy, params.SortDir = constant.DefaultValueSortBy, constant.DefaultValueSortDir
	}

	filter := byUser(field, userID)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(prefix, userID), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, params, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func byUser(field, userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: field, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
