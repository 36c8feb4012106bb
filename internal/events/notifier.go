package events

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"dormy/infras/kafka"
	"dormy/infras/mailer"
	"dormy/infras/otel"
	"dormy/shared/constant"
	"dormy/shared/metrics"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

var ErrNoRecipient = errors.New("no recipient address")

type Contact struct {
	Email string
	Name  string
}

// Directory resolves a user id to where notifications go.
type Directory interface {
	Contact(ctx context.Context, userID string) (Contact, error)
}

type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler kafka.Handler) (dispose func())
}

type Notifier struct {
	mailer    mailer.Sender
	directory Directory
	otel      otel.Otel
}

func NewNotifier(sender mailer.Sender, directory Directory, otel otel.Otel) *Notifier {
	return &Notifier{mailer: sender, directory: directory, otel: otel}
}

// Handlers maps every topic the worker consumes to its handler.
func (n *Notifier) Handlers() map[string]kafka.Handler {
	return map[string]kafka.Handler{
		TopicReservationCreated:   n.ReservationCreated,
		TopicReservationApproved:  n.ReservationResolved,
		TopicReservationRejected:  n.ReservationResolved,
		TopicVerificationResolved: n.VerificationResolved,
	}
}

// ReservationCreated tells the landlord a tenant is waiting on them.
func (n *Notifier) ReservationCreated(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".ReservationCreated")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[Reservation](msg)
	if err != nil {
		return err //nolint:wrapcheck
	}

	landlord, err := n.directory.Contact(ctx, event.LandlordID)
	if err != nil {
		return fmt.Errorf("failed to resolve landlord %s: %w", event.LandlordID, err)
	}

	body := fmt.Sprintf("Hi %s,\n\n%s has requested to reserve %s.\nOpen your reservations to approve or reject the request.\n",
		greeting(landlord.Name), event.TenantName, event.ListingName)

	return n.send(ctx, landlord.Email, "New reservation request", body)
}

// ReservationResolved tells the tenant how the landlord decided.
func (n *Notifier) ReservationResolved(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".ReservationResolved")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[Reservation](msg)
	if err != nil {
		return err //nolint:wrapcheck
	}

	outcome := "rejected"
	if strings.HasSuffix(msg.Topic, TopicReservationApproved) {
		outcome = "approved"
	}

	email := event.TenantEmail
	if email == "" {
		tenant, err := n.directory.Contact(ctx, event.TenantID)
		if err != nil {
			return fmt.Errorf("failed to resolve tenant %s: %w", event.TenantID, err)
		}

		email = tenant.Email
	}

	body := fmt.Sprintf("Hi %s,\n\nYour reservation for %s was %s by the landlord.\n", greeting(event.TenantName), event.ListingName, outcome)

	return n.send(ctx, email, "Reservation "+outcome, body)
}

func (n *Notifier) VerificationResolved(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".VerificationResolved")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[Verification](msg)
	if err != nil {
		return err //nolint:wrapcheck
	}

	landlord, err := n.directory.Contact(ctx, event.LandlordID)
	if err != nil {
		return fmt.Errorf("failed to resolve landlord %s: %w", event.LandlordID, err)
	}

	body := fmt.Sprintf("Hi %s,\n\nYour landlord verification request is now %s.\n", greeting(landlord.Name), event.Status)

	return n.send(ctx, landlord.Email, "Landlord verification "+event.Status, body)
}

func (n *Notifier) send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return ErrNoRecipient
	}

	if err := n.mailer.Send(ctx, mailer.Mail{To: []string{to}, Subject: subject, Body: body}); err != nil {
		return fmt.Errorf("failed to send %q: %w", subject, err)
	}

	return nil
}

func greeting(name string) string {
	if name == "" {
		return "there"
	}

	return name
}

// Run subscribes every handler and returns one disposer for all of them.
// Each subscription is disposed exactly once no matter how often the
// returned func is called.
func Run(ctx context.Context, sub Subscriber, handlers map[string]kafka.Handler) (dispose func()) {
	disposers := make([]func(), 0, len(handlers))

	for topic, handler := range handlers {
		disposers = append(disposers, sub.Subscribe(ctx, topic, instrument(topic, handler)))

		log.Info().Str("topic", topic).Msg("subscribed")
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			for _, d := range disposers {
				d()
			}
		})
	}
}

func instrument(topic string, handler kafka.Handler) kafka.Handler {
	return func(ctx context.Context, msg kafkaGo.Message) error {
		err := handler(ctx, msg)

		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultFailure
		}

		metrics.IncEventHandled(topic, result)

		return err
	}
}
