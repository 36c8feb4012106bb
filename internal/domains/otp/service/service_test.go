package service_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dormy/config"
	"dormy/infras/mailer"
	mailerMocks "dormy/infras/mailer/mocks"
	otelMocks "dormy/infras/otel/mocks"
	"dormy/internal/domains/otp/mocks"
	"dormy/internal/domains/otp/model"
	"dormy/internal/domains/otp/model/dto"
	"dormy/internal/domains/otp/service"
	"dormy/internal/domains/otp/store"
	"dormy/shared/failure"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.OTP.TTLMinutes = 10
	cfg.OTP.Length = 4

	return cfg
}

type fixture struct {
	svc    service.OTP
	clock  *clock
	sender *mailerMocks.MockSender
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	c := &clock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	sender := mailerMocks.NewMockSender(gomock.NewController(t))

	svc := service.NewWithClock(store.New(client, otelMocks.NewOtel()), sender, newConfig(), otelMocks.NewOtel(), c.Now)

	return fixture{svc: svc, clock: c, sender: sender}
}

// sendUnmailed issues a code with no mail transport so the code comes back.
func (f fixture) sendUnmailed(t *testing.T, email string) string {
	t.Helper()

	f.sender.EXPECT().Configured().Return(false)

	res, err := f.svc.Send(context.Background(), dto.SendRequest{Email: email})
	require.NoError(t, err)

	return res.OTP
}

func TestOTP_Send(t *testing.T) {
	t.Run("dev echo returns a four digit code", func(t *testing.T) {
		f := newFixture(t)

		code := f.sendUnmailed(t, "ana@example.com")

		assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), code)
	})

	t.Run("mails the code when configured", func(t *testing.T) {
		f := newFixture(t)

		f.sender.EXPECT().Configured().Return(true)
		f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m mailer.Mail) error {
			assert.Equal(t, []string{"ana@example.com"}, m.To)
			assert.Regexp(t, `code is \d{4}`, m.Body)

			return nil
		})

		res, err := f.svc.Send(context.Background(), dto.SendRequest{Email: " Ana@Example.com "})

		require.NoError(t, err)
		assert.Equal(t, model.MessageSent, res.Message)
		assert.Empty(t, res.OTP)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Send(context.Background(), dto.SendRequest{Email: "nope"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestOTP_VerifyConsumesOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	code := f.sendUnmailed(t, "ana@example.com")

	require.NoError(t, f.svc.Verify(ctx, dto.VerifyRequest{Email: "ana@example.com", OTP: code}))

	err := f.svc.Verify(ctx, dto.VerifyRequest{Email: "ana@example.com", OTP: code})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.EqualError(t, err, model.MessageInvalid)
}

func TestOTP_VerifyExpiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	code := f.sendUnmailed(t, "ana@example.com")

	f.clock.Advance(10*time.Minute + time.Second)

	err := f.svc.Verify(ctx, dto.VerifyRequest{Email: "ana@example.com", OTP: code})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestOTP_VerifyMismatchKeepsCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	code := f.sendUnmailed(t, "ana@example.com")

	wrong := "0000"
	if code == wrong {
		wrong = "1111"
	}

	err := f.svc.Verify(ctx, dto.VerifyRequest{Email: "ana@example.com", OTP: wrong})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	require.NoError(t, f.svc.Verify(ctx, dto.VerifyRequest{Email: "ana@example.com", OTP: code}))
}

func TestOTP_VerifyLosesRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	svc := service.NewWithClock(st, mailerMocks.NewMockSender(ctrl), newConfig(), otelMocks.NewOtel(), func() time.Time { return now })

	st.EXPECT().Get(gomock.Any(), "ana@example.com").Return(model.Entry{OTP: "4321", ExpiresAt: now.Add(time.Minute)}, nil)
	st.EXPECT().Consume(gomock.Any(), "ana@example.com", "4321").Return(false, nil)

	err := svc.Verify(context.Background(), dto.VerifyRequest{Email: "ana@example.com", OTP: "4321"})

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestOTP_VerifyStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)

	svc := service.New(st, mailerMocks.NewMockSender(ctrl), newConfig(), otelMocks.NewOtel())

	st.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Entry{}, errors.New("connection reset"))

	err := svc.Verify(context.Background(), dto.VerifyRequest{Email: "ana@example.com", OTP: "4321"})

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

// resendingStore issues a fresh code right after a read, the way a second
// send request can land while a verify is in flight.
type resendingStore struct {
	store.Store
	fresh model.Entry
}

func (r *resendingStore) Get(ctx context.Context, email string) (model.Entry, error) {
	entry, err := r.Store.Get(ctx, email)
	if err != nil {
		return entry, err
	}

	if putErr := r.Store.Put(ctx, email, r.fresh, time.Minute); putErr != nil {
		return entry, putErr
	}

	return entry, nil
}

func TestOTP_VerifyKeepsCodeSentMeanwhile(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	base := store.New(client, otelMocks.NewOtel())

	require.NoError(t, base.Put(ctx, "ana@example.com", model.Entry{OTP: "1111", ExpiresAt: now.Add(time.Minute)}, time.Minute))

	st := &resendingStore{Store: base, fresh: model.Entry{OTP: "2222", ExpiresAt: now.Add(time.Minute)}}
	svc := service.NewWithClock(st, mailerMocks.NewMockSender(gomock.NewController(t)), newConfig(), otelMocks.NewOtel(), func() time.Time { return now })

	err := svc.Verify(ctx, dto.VerifyRequest{Email: "ana@example.com", OTP: "1111"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	entry, err := base.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "2222", entry.OTP)
}
