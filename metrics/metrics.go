package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	slotResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "availability_engine",
			Name:      "slot_resolutions_total",
			Help:      "Count of slot resolutions by cache outcome.",
		},
		[]string{"cache"},
	)

	reservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "availability_engine",
			Name:      "reservations_total",
			Help:      "Count of reservation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	statusSweeps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "availability_engine",
			Name:      "status_sweeps_total",
			Help:      "Count of bookings moved by the status sweeper.",
		},
		[]string{"to"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(slotResolutions, reservations, statusSweeps)
	})
}

func IncSlotResolution(cache string) {
	slotResolutions.WithLabelValues(cache).Inc()
}

func IncReservation(outcome string) {
	reservations.WithLabelValues(outcome).Inc()
}

func AddStatusSweep(to string, n int64) {
	statusSweeps.WithLabelValues(to).Add(float64(n))
}
