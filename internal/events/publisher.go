package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"dormy/infras/kafka"
	"dormy/infras/otel"
	"dormy/shared/constant"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Publisher interface {
	Reservation(ctx context.Context, topic string, event Reservation) error
	Verification(ctx context.Context, event Verification) error
}

type publisherImpl struct {
	client kafka.Client
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{client: client, otel: otel}
}

// Reservation events are keyed by listing so every event for one listing
// lands on the same partition.
func (p *publisherImpl) Reservation(ctx context.Context, topic string, event Reservation) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish."+topic)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = p.client.Publish(ctx, topic, kafka.Message{Key: event.ListingID, Value: event}); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("reservation", event.ReservationID).Msg("failed to publish reservation event")

		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}

	return nil
}

func (p *publisherImpl) Verification(ctx context.Context, event Verification) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish."+TopicVerificationResolved)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = p.client.Publish(ctx, TopicVerificationResolved, kafka.Message{Key: event.LandlordID, Value: event}); err != nil {
		log.Error().Err(err).Str("request", event.RequestID).Msg("failed to publish verification event")

		return fmt.Errorf("failed to publish %s: %w", TopicVerificationResolved, err)
	}

	return nil
}
