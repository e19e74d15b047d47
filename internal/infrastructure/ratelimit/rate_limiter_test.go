package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketRefusesBurstPastCapacity(t *testing.T) {
	bucket := NewTokenBucket(3, 1, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := bucket.Allow()
		assert.True(t, allowed)
	}

	allowed, wait := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestRateLimiterSeparatesUsersAndActions(t *testing.T) {
	limiter := NewRateLimiter()

	// Exhaust user-a's contact budget (5 per hour).
	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("user-a", "send_contact")
		assert.True(t, allowed)
	}
	allowed, _ := limiter.Allow("user-a", "send_contact")
	assert.False(t, allowed)

	// Other users and other actions are unaffected.
	allowed, _ = limiter.Allow("user-b", "send_contact")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("user-a", "send_reply")
	assert.True(t, allowed)
}
