// Package engine resolves when a service can actually be booked:
// business weekly hours ∩ worker weekly availability − per-date blocked
// exceptions, quantized into slots and guarded against double-booking on
// the write path. Resolution is side-effect-free and safe to run in
// parallel; only Reserve takes a lock, scoped to one (worker, date).
package engine

import (
	"github.com/rs/zerolog"
)

// Engine wires the resolver to its storage. It holds no mutable state
// of its own.
type Engine struct {
	schedules ScheduleStore
	bookings  BookingStore
	log       zerolog.Logger
}

// New builds an Engine over the given stores.
func New(schedules ScheduleStore, bookings BookingStore, log zerolog.Logger) *Engine {
	return &Engine{
		schedules: schedules,
		bookings:  bookings,
		log:       log,
	}
}
