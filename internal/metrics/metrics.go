package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "valentino_site",
			Name:      "reservations_total",
			Help:      "Count of slot reservation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	adminLogins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "valentino_site",
			Name:      "admin_logins_total",
			Help:      "Count of admin login attempts by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservations, adminLogins)
	})
}

func IncReservation(outcome string) {
	reservations.WithLabelValues(outcome).Inc()
}

func IncAdminLogin(result string) {
	adminLogins.WithLabelValues(result).Inc()
}
