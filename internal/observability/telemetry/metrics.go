package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Métricas de negócio
	BookingsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "condomino_bookings_expired_total",
		Help: "Total de reservas expiradas pela varredura",
	})

	CommissionsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "condomino_commissions_settled_total",
		Help: "Total de comissões pagas pela liquidação diária",
	})

	PayoutFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "condomino_payout_failures_total",
		Help: "Total de falhas de repasse a afiliados",
	})

	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "condomino_login_attempts_total",
		Help: "Total de tentativas de login",
	}, []string{"outcome"})

	SweepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "condomino_sweep_duration_seconds",
		Help:    "Duração das varreduras periódicas",
		Buckets: prometheus.DefBuckets,
	}, []string{"task"})
)
