package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(3, 1, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := bucket.Allow()
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, retryAfter := bucket.Allow()
	assert.False(t, allowed)
	assert.True(t, retryAfter > 0)
}

func TestRateLimiterKeysByClientAndAction(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 10; i++ {
		allowed, _ := rl.Allow("1.2.3.4", "login")
		assert.True(t, allowed)
	}
	allowed, _ := rl.Allow("1.2.3.4", "login")
	assert.False(t, allowed)

	// A different client is unaffected.
	allowed, _ = rl.Allow("5.6.7.8", "login")
	assert.True(t, allowed)

	// So is a different action from the same client.
	allowed, _ = rl.Allow("1.2.3.4", "default")
	assert.True(t, allowed)
}
