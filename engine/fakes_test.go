package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bookwell/availability-engine/models"
)

// fakeStore is an in-memory ScheduleStore + BookingStore. The
// per-(worker, date) lock is a real mutex so the concurrency tests
// exercise the same check-then-insert discipline as the Postgres
// advisory lock.
type fakeStore struct {
	mu           sync.Mutex
	workers      map[uint]*models.Worker
	businesses   map[uint]*models.Business
	hours        map[string]*models.BusinessHours
	availability map[string]*models.WorkerAvailability
	blocked      []models.WorkerBlockedDate
	services     map[uint]*models.Service
	assignments  map[string]bool
	bookings     []models.Booking
	locks        map[string]*sync.Mutex
	nextID       uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		workers:      make(map[uint]*models.Worker),
		businesses:   make(map[uint]*models.Business),
		hours:        make(map[string]*models.BusinessHours),
		availability: make(map[string]*models.WorkerAvailability),
		services:     make(map[uint]*models.Service),
		assignments:  make(map[string]bool),
		locks:        make(map[string]*sync.Mutex),
	}
}

func dayKey(id uint, day models.DayOfWeek) string {
	return fmt.Sprintf("%d/%d", id, day)
}

func pairKey(a, b uint) string {
	return fmt.Sprintf("%d/%d", a, b)
}

func (s *fakeStore) addBusiness(id uint, bufferMinutes int, autoConfirm bool) {
	biz := &models.Business{BufferMinutes: bufferMinutes, AutoConfirm: autoConfirm}
	biz.ID = id
	s.businesses[id] = biz
}

func (s *fakeStore) addWorker(id, businessID uint) {
	w := &models.Worker{BusinessID: businessID, IsActive: true}
	w.ID = id
	s.workers[id] = w
}

func (s *fakeStore) setHours(businessID uint, day models.DayOfWeek, open, close string, closed bool) {
	s.hours[dayKey(businessID, day)] = &models.BusinessHours{
		BusinessID: businessID,
		DayOfWeek:  day,
		OpenTime:   open,
		CloseTime:  close,
		IsClosed:   closed,
	}
}

func (s *fakeStore) setAvailability(workerID uint, day models.DayOfWeek, start, end string, active bool) {
	s.availability[dayKey(workerID, day)] = &models.WorkerAvailability{
		WorkerID:  workerID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		IsActive:  active,
	}
}

func (s *fakeStore) block(workerID uint, date string, start, end *string) {
	b := models.WorkerBlockedDate{WorkerID: workerID, Date: date, StartTime: start, EndTime: end}
	b.ID = uint(len(s.blocked) + 1)
	s.blocked = append(s.blocked, b)
}

func (s *fakeStore) addService(id, businessID uint, durationMinutes int, active bool, workerIDs ...uint) {
	svc := &models.Service{BusinessID: businessID, DurationMinutes: durationMinutes, IsActive: active}
	svc.ID = id
	s.services[id] = svc
	for _, wid := range workerIDs {
		s.assignments[pairKey(id, wid)] = true
	}
}

func (s *fakeStore) addBooking(workerID uint, date, start, end string, status models.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b := models.Booking{WorkerID: workerID, Date: date, StartTime: start, EndTime: end, Status: status}
	b.ID = s.nextID
	s.bookings = append(s.bookings, b)
}

func (s *fakeStore) Worker(ctx context.Context, workerID uint) (*models.Worker, error) {
	return s.workers[workerID], nil
}

func (s *fakeStore) Business(ctx context.Context, businessID uint) (*models.Business, error) {
	return s.businesses[businessID], nil
}

func (s *fakeStore) BusinessHours(ctx context.Context, businessID uint, day models.DayOfWeek) (*models.BusinessHours, error) {
	return s.hours[dayKey(businessID, day)], nil
}

func (s *fakeStore) WorkerAvailability(ctx context.Context, workerID uint, day models.DayOfWeek) (*models.WorkerAvailability, error) {
	return s.availability[dayKey(workerID, day)], nil
}

func (s *fakeStore) BlockedDates(ctx context.Context, workerID uint, date string) ([]models.WorkerBlockedDate, error) {
	var out []models.WorkerBlockedDate
	for _, b := range s.blocked {
		if b.WorkerID == workerID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) Service(ctx context.Context, serviceID uint) (*models.Service, error) {
	return s.services[serviceID], nil
}

func (s *fakeStore) ServiceAssignedTo(ctx context.Context, serviceID, workerID uint) (bool, error) {
	return s.assignments[pairKey(serviceID, workerID)], nil
}

func (s *fakeStore) ActiveBookings(ctx context.Context, workerID uint, date string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.WorkerID == workerID && b.Date == date && b.Occupies() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	booking.ID = s.nextID
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *fakeStore) WithWorkerDateLock(ctx context.Context, workerID uint, date string, fn func(tx BookingStore) error) error {
	s.mu.Lock()
	key := fmt.Sprintf("%d/%s", workerID, date)
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(s)
}

// upcoming returns the next calendar date falling on the given weekday,
// at least a week out so reservations never trip the past-date check.
func upcoming(w time.Weekday) string {
	d := time.Now().AddDate(0, 0, 7)
	for d.Weekday() != w {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func strPtr(s string) *string {
	return &s
}
