// Package metrics exposes the Prometheus collectors of the API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	SessionsCreated     prometheus.Counter
	ReservationsCreated *prometheus.CounterVec
	PaymentsPaid        prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Number of handled HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Time taken to handle HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		SessionsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sessions_created_total",
				Help: "Number of created sessions",
			},
		),
		ReservationsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservations_created_total",
				Help: "Number of created reservations by approval state",
			},
			[]string{"approved"},
		),
		PaymentsPaid: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_paid_total",
				Help: "Number of payments confirmed by the gateway",
			},
		),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.HTTPRequests, m.HTTPDuration, m.SessionsCreated, m.ReservationsCreated, m.PaymentsPaid,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// The recorders below accept a nil receiver so services can run without metrics.

func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) SessionCreated() {
	if m == nil {
		return
	}
	m.SessionsCreated.Inc()
}

func (m *Metrics) ReservationCreated(approved bool) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(strconv.FormatBool(approved)).Inc()
}

func (m *Metrics) PaymentPaid() {
	if m == nil {
		return
	}
	m.PaymentsPaid.Inc()
}
