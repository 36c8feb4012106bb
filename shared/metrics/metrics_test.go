package metrics_test

import (
	"dormy/shared/metrics"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndExpose(t *testing.T) {
	metrics.Register()
	metrics.Register()

	metrics.ObserveHTTP("/v1/listings/{id}", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	metrics.IncReservationResolved(metrics.OutcomeApproved)
	metrics.IncOTPSent()
	metrics.IncOTPVerified(metrics.ResultInvalid)
	metrics.IncMediaUpload(metrics.ResultTimeout)
	metrics.IncEventHandled("reservation.created", metrics.ResultSuccess)

	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `dormy_http_requests_total{method="GET",route="/v1/listings/{id}",status="200"}`)
	assert.Contains(t, body, `dormy_reservations_resolved_total{outcome="approved"}`)
	assert.Contains(t, body, "dormy_otp_sent_total")
	assert.Contains(t, body, `dormy_media_uploads_total{result="timeout"}`)
}
