package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// Slot lists are cached per (worker, date, service) under a version
// number that every availability-changing write bumps. Stale entries
// simply stop being addressed; the TTL collects them.
const slotsTTL = 5 * time.Minute

func versionKey(workerID uint, date string) string {
	return fmt.Sprintf("slotver:%d:%s", workerID, date)
}

func slotsKey(workerID uint, date string, serviceID uint, version int64) string {
	return fmt.Sprintf("slots:%d:%s:%d:v%d", workerID, date, serviceID, version)
}

func slotsVersion(workerID uint, date string) int64 {
	v, err := Client.Get(Ctx, versionKey(workerID, date)).Int64()
	if err != nil {
		return 0
	}
	return v
}

// GetCachedSlots returns the cached slot list, if any.
func GetCachedSlots(workerID uint, date string, serviceID uint) ([]string, bool) {
	if Client == nil {
		return nil, false
	}
	data, err := Client.Get(Ctx, slotsKey(workerID, date, serviceID, slotsVersion(workerID, date))).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// CacheSlots stores a resolved slot list.
func CacheSlots(workerID uint, date string, serviceID uint, slots []string) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	Client.Set(Ctx, slotsKey(workerID, date, serviceID, slotsVersion(workerID, date)), data, slotsTTL)
}

// InvalidateSlots bumps the version for a (worker, date) pair, orphaning
// every cached slot list for it. Called after reservations, occupancy-
// changing status updates and blocked-date writes.
func InvalidateSlots(workerID uint, date string) {
	if Client == nil {
		return
	}
	Client.Incr(Ctx, versionKey(workerID, date))
	Client.Expire(Ctx, versionKey(workerID, date), 24*time.Hour)
}
