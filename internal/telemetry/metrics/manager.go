package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ConfirmationConfirmed = "confirmed"
	ConfirmationDeclined  = "declined"
	ConfirmationFailed    = "failed"
)

type Manager struct {
	// counters
	CounterRequests      *prometheus.CounterVec
	CounterConfirmations *prometheus.CounterVec
	CounterNotifications *prometheus.CounterVec
	// fake api side
	CounterServedRequests     *prometheus.CounterVec
	CounterHandleRequestPanic prometheus.Counter

	// gauges
	GaugeInFlightRequests prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistogramServeDuration   prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("postclient", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("postclient", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "requests_total",
		Help:      "The total number of outgoing posts api requests",
	}, []string{"method", "status"})
	counterConfirmations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "confirmations_total",
		Help:      "The total number of confirmation dialogs, by outcome",
	}, []string{"result"})
	counterNotifications := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "notifications_total",
		Help:      "The total number of shown notifications",
	}, []string{"title"})

	counterServedRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "served_requests_total",
		Help:      "The total number of requests served by the fake posts api",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic_total",
		Help:      "The total number of panics recovered while serving requests",
	})

	gaugeInFlightRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "in_flight_requests",
		Help:      "Current number of outgoing requests waiting for a response",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of posts api response times in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"method"})
	histogramServeDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "serve_duration_seconds",
		Help:      "Histogram of fake posts api handling times in seconds",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	})

	return &Manager{
		CounterRequests:           counterRequests,
		CounterConfirmations:      counterConfirmations,
		CounterNotifications:      counterNotifications,
		CounterServedRequests:     counterServedRequests,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		GaugeInFlightRequests:     gaugeInFlightRequests,
		HistogramRequestDuration:  histogramRequestDuration,
		HistogramServeDuration:    histogramServeDuration,
	}
}
