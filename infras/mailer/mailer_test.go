package mailer

import (
	"context"
	"dormy/config"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPicksLoggingSenderWithoutHost(t *testing.T) {
	cfg := &config.Config{}

	sender := New(cfg)

	assert.False(t, sender.Configured())
	assert.NoError(t, sender.Send(context.Background(), Mail{To: []string{"a@b.com"}, Subject: "hi", Body: "x"}))
}

func TestSMTPSender(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mail.SMTPHost = "smtp.example.com"
	cfg.Mail.SMTPPort = 587
	cfg.Mail.FromAddress = "no-reply@dormy.local"

	sender, ok := New(cfg).(*smtpSender)
	require.True(t, ok)
	assert.True(t, sender.Configured())
	assert.Equal(t, "smtp.example.com:587", sender.addr)

	var captured []byte

	sender.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		assert.Equal(t, "no-reply@dormy.local", from)
		assert.Equal(t, []string{"tenant@example.com"}, to)

		captured = msg

		return nil
	}

	require.NoError(t, sender.Send(context.Background(), Mail{To: []string{"tenant@example.com"}, Subject: "Your code", Body: "1234\nbye"}))
	assert.Contains(t, string(captured), "Subject: Your code\r\n")
	assert.True(t, strings.HasSuffix(string(captured), "1234\r\nbye"))

	sender.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }
	assert.Error(t, sender.Send(context.Background(), Mail{To: []string{"x@y.z"}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sender.Send(ctx, Mail{}), context.Canceled)
}

func TestCompose(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	msg := string(Compose("from@x", Mail{To: []string{"a@x", "b@x"}, Subject: "S", Body: "B"}, at))

	assert.Contains(t, msg, "From: from@x\r\n")
	assert.Contains(t, msg, "To: a@x, b@x\r\n")
	assert.Contains(t, msg, "Date: Tue, 02 Jan 2024 03:04:05 +0000\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nB"))
}
