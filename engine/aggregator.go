package engine

import (
	"context"
	"fmt"

	"github.com/bookwell/availability-engine/models"
)

// ResolveOpenIntervals merges business hours, the worker's weekly window
// and blocked-date exceptions for one calendar date into the set of open
// intervals. A business closed that weekday, an inactive or unscheduled
// worker, or a fully blocked day all resolve to an empty set; callers
// cannot distinguish "closed" from "not configured", which is
// intentional.
func (e *Engine) ResolveOpenIntervals(ctx context.Context, workerID uint, date string) ([]Interval, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, &InvalidRequestError{Reason: ReasonMalformedDate}
	}
	weekday := models.DayOfWeek(day.Weekday())

	worker, err := e.schedules.Worker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("load worker %d: %w", workerID, err)
	}
	if worker == nil {
		return nil, &InvalidRequestError{Reason: ReasonUnknownWorker}
	}

	hours, err := e.schedules.BusinessHours(ctx, worker.BusinessID, weekday)
	if err != nil {
		return nil, fmt.Errorf("load business hours: %w", err)
	}
	if hours == nil || hours.IsClosed {
		return nil, nil
	}

	availability, err := e.schedules.WorkerAvailability(ctx, workerID, weekday)
	if err != nil {
		return nil, fmt.Errorf("load worker availability: %w", err)
	}
	if availability == nil || !availability.IsActive {
		return nil, nil
	}

	businessWindow, err := clockInterval(hours.OpenTime, hours.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("business %d hours for day %d: %w", worker.BusinessID, weekday, err)
	}
	workerWindow, err := clockInterval(availability.StartTime, availability.EndTime)
	if err != nil {
		return nil, fmt.Errorf("worker %d availability for day %d: %w", workerID, weekday, err)
	}

	base := Intersect(businessWindow, workerWindow)
	if base.Empty() {
		return nil, nil
	}

	blocked, err := e.schedules.BlockedDates(ctx, workerID, date)
	if err != nil {
		return nil, fmt.Errorf("load blocked dates: %w", err)
	}

	removals := make([]Interval, 0, len(blocked))
	for _, b := range blocked {
		iv, err := blockedInterval(b)
		if err != nil {
			return nil, fmt.Errorf("blocked date %d: %w", b.ID, err)
		}
		removals = append(removals, iv)
	}

	return Subtract(base, removals), nil
}

func clockInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

func blockedInterval(b models.WorkerBlockedDate) (Interval, error) {
	if b.FullDay() {
		return Interval{Start: DayStart, End: DayEnd}, nil
	}
	return clockInterval(*b.StartTime, *b.EndTime)
}
