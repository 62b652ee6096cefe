package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/bookwell/availability-engine/models"
)

// freeIntervals is the open-interval set with existing bookings, padded
// by the business buffer, removed. The reservation path calls it with a
// transaction-bound store so its reads are fresh under the lock.
func (e *Engine) freeIntervals(ctx context.Context, bookings BookingStore, workerID uint, date string, bufferMinutes int) ([]Interval, error) {
	open, err := e.ResolveOpenIntervals(ctx, workerID, date)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, nil
	}

	existing, err := bookings.ActiveBookings(ctx, workerID, date)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	occupied := make([]Interval, 0, len(existing))
	for _, b := range existing {
		if !b.Occupies() {
			continue
		}
		iv, err := clockInterval(b.StartTime, b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", b.ID, err)
		}
		// The buffer is applied once between consecutive bookings, so
		// padding existing bookings by the full buffer on each side
		// keeps every new neighbour at least that far away.
		iv.Start -= bufferMinutes
		iv.End += bufferMinutes
		occupied = append(occupied, iv.Clamp())
	}

	return SubtractAll(open, occupied), nil
}

// ResolveBookableSlots quantizes the free intervals for one worker and
// date into candidate start times for a booking of the given duration.
// Returns sorted, deduplicated "HH:MM" starts. A non-positive duration
// resolves to no slots rather than an error.
func (e *Engine) ResolveBookableSlots(ctx context.Context, workerID uint, date string, durationMinutes, bufferMinutes int) ([]string, error) {
	if durationMinutes <= 0 {
		return nil, nil
	}

	free, err := e.freeIntervals(ctx, e.bookings, workerID, date, bufferMinutes)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var starts []int
	for _, f := range free {
		for s := f.Start; s+durationMinutes <= f.End; s += SlotStep {
			if !seen[s] {
				seen[s] = true
				starts = append(starts, s)
			}
		}
	}
	sort.Ints(starts)

	slots := make([]string, len(starts))
	for i, s := range starts {
		slots[i] = FormatClock(s)
	}
	return slots, nil
}

// SlotsForService resolves the service duration and the business buffer
// before quantizing, validating that the worker actually performs the
// service.
func (e *Engine) SlotsForService(ctx context.Context, workerID, serviceID uint, date string) ([]string, error) {
	svc, biz, err := e.serviceForWorker(ctx, workerID, serviceID)
	if err != nil {
		return nil, err
	}
	return e.ResolveBookableSlots(ctx, workerID, date, svc.DurationMinutes, biz.BufferMinutes)
}

// serviceForWorker validates the (worker, service) pair and loads the
// owning business. Every failure here is an InvalidRequestError; these
// checks run before any lock is taken.
func (e *Engine) serviceForWorker(ctx context.Context, workerID, serviceID uint) (*models.Service, *models.Business, error) {
	worker, err := e.schedules.Worker(ctx, workerID)
	if err != nil {
		return nil, nil, fmt.Errorf("load worker %d: %w", workerID, err)
	}
	if worker == nil {
		return nil, nil, &InvalidRequestError{Reason: ReasonUnknownWorker}
	}

	svc, err := e.bookings.Service(ctx, serviceID)
	if err != nil {
		return nil, nil, fmt.Errorf("load service %d: %w", serviceID, err)
	}
	if svc == nil {
		return nil, nil, &InvalidRequestError{Reason: ReasonUnknownService}
	}
	if !svc.IsActive {
		return nil, nil, &InvalidRequestError{Reason: ReasonServiceInactive}
	}
	if svc.BusinessID != worker.BusinessID {
		return nil, nil, &InvalidRequestError{Reason: ReasonServiceNotAssigned}
	}

	assigned, err := e.bookings.ServiceAssignedTo(ctx, serviceID, workerID)
	if err != nil {
		return nil, nil, fmt.Errorf("check service assignment: %w", err)
	}
	if !assigned {
		return nil, nil, &InvalidRequestError{Reason: ReasonServiceNotAssigned}
	}

	biz, err := e.bookings.Business(ctx, svc.BusinessID)
	if err != nil {
		return nil, nil, fmt.Errorf("load business %d: %w", svc.BusinessID, err)
	}
	if biz == nil {
		return nil, nil, &InvalidRequestError{Reason: ReasonUnknownBusiness}
	}

	return svc, biz, nil
}
