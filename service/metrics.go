package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the session manager.
type Metrics struct {
	Logins         *prometheus.CounterVec
	Logouts        *prometheus.CounterVec
	Evictions      prometheus.Counter
	StoreConflicts *prometheus.CounterVec
	LoginDuration  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg (prometheus.DefaultRegisterer in cmd/sessiond).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mysession",
			Name:      "logins_total",
			Help:      "Login attempts by outcome (ok or error code).",
		}, []string{"outcome"}),
		Logouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mysession",
			Name:      "logouts_total",
			Help:      "Logout attempts by kind (key, force) and outcome.",
		}, []string{"kind", "outcome"}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mysession",
			Name:      "evictions_total",
			Help:      "Sessions removed because their user logged in again.",
		}),
		StoreConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mysession",
			Name:      "store_conflicts_total",
			Help:      "Session inserts rejected by a store uniqueness constraint.",
		}, []string{"index"}),
		LoginDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mysession",
			Name:      "login_duration_seconds",
			Help:      "Time spent in Login.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Logins, m.Logouts, m.Evictions, m.StoreConflicts, m.LoginDuration)
	}
	return m
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if code := ErrorCode(err); code != "" {
		return code
	}
	return ErrInternalServerError
}
