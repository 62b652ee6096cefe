package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookwell/availability-engine/models"
)

// bookableFixture seeds a business with one worker and one 30-minute
// service, open 09:00-17:00 on Mondays.
func bookableFixture(bufferMinutes int, autoConfirm bool) (*fakeStore, *Engine, string) {
	s := newFakeStore()
	s.addBusiness(1, bufferMinutes, autoConfirm)
	s.addWorker(1, 1)
	s.setHours(1, models.Monday, "09:00", "17:00", false)
	s.setAvailability(1, models.Monday, "09:00", "17:00", true)
	s.addService(5, 1, 30, true, 1)
	return s, newTestEngine(s), upcoming(time.Monday)
}

func reserveReq(date, start, end string) ReserveRequest {
	return ReserveRequest{
		WorkerID:  1,
		ServiceID: 5,
		ClientID:  9,
		Date:      date,
		Start:     start,
		End:       end,
	}
}

func TestReserveCreatesPendingBooking(t *testing.T) {
	s, e, date := bookableFixture(0, false)

	booking, err := e.Reserve(context.Background(), reserveReq(date, "10:00", "10:30"))
	require.NoError(t, err)
	require.NotNil(t, booking)

	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, uint(1), booking.WorkerID)
	assert.Equal(t, uint(5), booking.ServiceID)
	assert.Equal(t, uint(9), booking.ClientID)
	assert.Equal(t, date, booking.Date)
	assert.Equal(t, "10:00", booking.StartTime)
	assert.Equal(t, "10:30", booking.EndTime)
	assert.Len(t, s.bookings, 1)
}

func TestReserveAutoConfirm(t *testing.T) {
	_, e, date := bookableFixture(0, true)

	booking, err := e.Reserve(context.Background(), reserveReq(date, "10:00", "10:30"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
}

func TestReserveConflictOnOverlap(t *testing.T) {
	s, e, date := bookableFixture(0, false)
	s.addBooking(1, date, "10:00", "10:30", models.StatusConfirmed)

	_, err := e.Reserve(context.Background(), reserveReq(date, "10:15", "10:45"))
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Equal(t, ReasonSlotUnavailable, ErrorReason(err))
}

func TestReserveConflictOutsideOpenHours(t *testing.T) {
	_, e, date := bookableFixture(0, false)

	_, err := e.Reserve(context.Background(), reserveReq(date, "18:00", "18:30"))
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestReserveConflictWithinBuffer(t *testing.T) {
	s, e, date := bookableFixture(15, false)
	s.addBooking(1, date, "10:00", "10:30", models.StatusConfirmed)

	// Ends 10:00 sharp: legal without a buffer, too close with one.
	_, err := e.Reserve(context.Background(), reserveReq(date, "09:30", "10:00"))
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	// 15 minutes after the booking ends is fine.
	_, err = e.Reserve(context.Background(), reserveReq(date, "10:45", "11:15"))
	assert.NoError(t, err)
}

func TestReserveRoundTrip(t *testing.T) {
	_, e, date := bookableFixture(15, false)
	ctx := context.Background()

	slots, err := e.SlotsForService(ctx, 1, 5, date)
	require.NoError(t, err)
	require.Contains(t, slots, "10:00")

	_, err = e.Reserve(ctx, reserveReq(date, "10:00", "10:30"))
	require.NoError(t, err)

	after, err := e.SlotsForService(ctx, 1, 5, date)
	require.NoError(t, err)
	assert.NotContains(t, after, "10:00")
	// Buffered neighbourhood is gone too.
	assert.NotContains(t, after, "09:45")
	assert.NotContains(t, after, "10:30")
	assert.Contains(t, after, "10:45")
}

func TestReserveInvalidRequests(t *testing.T) {
	_, e, date := bookableFixture(0, false)

	tests := []struct {
		name   string
		req    ReserveRequest
		reason string
	}{
		{"malformed date", reserveReq("2026/01/01", "10:00", "10:30"), ReasonMalformedDate},
		{"date in past", reserveReq("2020-01-06", "10:00", "10:30"), ReasonDateInPast},
		{"malformed start", reserveReq(date, "10am", "10:30"), ReasonMalformedTime},
		{"malformed end", reserveReq(date, "10:00", "x"), ReasonMalformedTime},
		{"end before start", reserveReq(date, "10:30", "10:00"), ReasonInvalidRange},
		{"zero length", reserveReq(date, "10:00", "10:00"), ReasonInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Reserve(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, IsInvalidRequest(err))
			assert.Equal(t, tt.reason, ErrorReason(err))
		})
	}
}

func TestReserveUnknownReferences(t *testing.T) {
	_, e, date := bookableFixture(0, false)

	req := reserveReq(date, "10:00", "10:30")
	req.WorkerID = 99
	_, err := e.Reserve(context.Background(), req)
	assert.Equal(t, ReasonUnknownWorker, ErrorReason(err))

	req = reserveReq(date, "10:00", "10:30")
	req.ServiceID = 99
	_, err = e.Reserve(context.Background(), req)
	assert.Equal(t, ReasonUnknownService, ErrorReason(err))
}

func TestReserveConcurrentSameSlot(t *testing.T) {
	s, e, date := bookableFixture(0, false)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.Reserve(ctx, reserveReq(date, "10:00", "10:30"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	conflicted := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case IsConflict(err):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
	assert.Len(t, s.bookings, 1)
}
