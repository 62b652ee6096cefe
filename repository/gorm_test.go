package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockKeyStable(t *testing.T) {
	a := lockKey(1, "2026-09-07")
	b := lockKey(1, "2026-09-07")
	assert.Equal(t, a, b)
}

func TestLockKeyScopedToWorkerAndDate(t *testing.T) {
	base := lockKey(1, "2026-09-07")
	assert.NotEqual(t, base, lockKey(2, "2026-09-07"))
	assert.NotEqual(t, base, lockKey(1, "2026-09-08"))
	// A worker/date pair must not collide with a neighbouring encoding.
	assert.NotEqual(t, lockKey(12, "026-09-07"), lockKey(1, "2026-09-07"))
}
