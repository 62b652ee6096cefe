package engine

import (
	"context"
	"time"

	"github.com/bookwell/availability-engine/models"
)

// ReserveRequest is a proposed booking.
type ReserveRequest struct {
	WorkerID  uint   `json:"worker_id"`
	ServiceID uint   `json:"service_id"`
	ClientID  uint   `json:"client_id"`
	Date      string `json:"date"`  // Format "YYYY-MM-DD"
	Start     string `json:"start"` // Format "HH:MM" in 24h
	End       string `json:"end"`
}

// Reserve validates the request, then re-checks the free intervals
// inside a per-(worker, date) critical section and inserts the booking.
// Two concurrent attempts on overlapping times cannot both succeed: the
// second one recomputes against the first one's committed row and gets a
// ConflictError. Conflicts are recoverable; the caller shows "pick
// another time".
func (e *Engine) Reserve(ctx context.Context, req ReserveRequest) (*models.Booking, error) {
	day, err := ParseDate(req.Date)
	if err != nil {
		return nil, &InvalidRequestError{Reason: ReasonMalformedDate}
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return nil, &InvalidRequestError{Reason: ReasonDateInPast}
	}

	start, err := ParseClock(req.Start)
	if err != nil {
		return nil, &InvalidRequestError{Reason: ReasonMalformedTime}
	}
	end, err := ParseClock(req.End)
	if err != nil {
		return nil, &InvalidRequestError{Reason: ReasonMalformedTime}
	}
	if end <= start {
		return nil, &InvalidRequestError{Reason: ReasonInvalidRange}
	}

	svc, biz, err := e.serviceForWorker(ctx, req.WorkerID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	status := models.StatusPending
	if biz.AutoConfirm {
		status = models.StatusConfirmed
	}

	var booking *models.Booking
	err = e.bookings.WithWorkerDateLock(ctx, req.WorkerID, req.Date, func(tx BookingStore) error {
		free, err := e.freeIntervals(ctx, tx, req.WorkerID, req.Date, biz.BufferMinutes)
		if err != nil {
			return err
		}

		want := Interval{Start: start, End: end}
		fits := false
		for _, f := range free {
			if f.Contains(want) {
				fits = true
				break
			}
		}
		if !fits {
			return &ConflictError{Reason: ReasonSlotUnavailable}
		}

		booking = &models.Booking{
			BusinessID: biz.ID,
			WorkerID:   req.WorkerID,
			ServiceID:  svc.ID,
			ClientID:   req.ClientID,
			Date:       req.Date,
			StartTime:  req.Start,
			EndTime:    req.End,
			Status:     status,
		}
		return tx.CreateBooking(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Uint("worker_id", req.WorkerID).
		Str("date", req.Date).
		Str("start", req.Start).
		Str("end", req.End).
		Str("status", string(status)).
		Msg("booking reserved")

	return booking, nil
}
