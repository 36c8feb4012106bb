package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dormy"

const (
	OutcomeApproved = "approved"
	OutcomeRejected = "rejected"

	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultTimeout = "timeout"
	ResultInvalid = "invalid"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	reservationsResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_resolved_total",
			Help:      "Reservations resolved by landlords.",
		},
		[]string{"outcome"},
	)

	otpSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_sent_total",
			Help:      "One-time codes issued.",
		},
	)

	otpVerified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_verified_total",
			Help:      "One-time code verification attempts.",
		},
		[]string{"result"},
	)

	mediaUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_uploads_total",
			Help:      "Media uploads by result.",
		},
		[]string{"result"},
	)

	eventsHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_handled_total",
			Help:      "Domain events consumed by the worker.",
		},
		[]string{"topic", "result"},
	)
)

// Register registers every collector with the default registry. Safe to call more than once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			reservationsResolved,
			otpSent,
			otpVerified,
			mediaUploads,
			eventsHandled,
		)
	})
}

func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func IncReservationResolved(outcome string) {
	reservationsResolved.WithLabelValues(outcome).Inc()
}

func IncOTPSent() {
	otpSent.Inc()
}

func IncOTPVerified(result string) {
	otpVerified.WithLabelValues(result).Inc()
}

func IncMediaUpload(result string) {
	mediaUploads.WithLabelValues(result).Inc()
}

func IncEventHandled(topic, result string) {
	eventsHandled.WithLabelValues(topic, result).Inc()
}
