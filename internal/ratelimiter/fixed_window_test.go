package ratelimiter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFixedWindowLimiterBlocksOverLimit(t *testing.T) {
	limiter := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("10.0.0.1")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := limiter.Allow("10.0.0.1")
	if allowed {
		t.Fatal("fourth request should be blocked")
	}
	if retryAfter != time.Minute {
		t.Fatalf("expected retry-after of the window, got %s", retryAfter)
	}
}

func TestFixedWindowLimiterUnderContention(t *testing.T) {
	limiter := NewFixedWindowLimiter(5, time.Minute)

	var (
		allowed int64
		wg      sync.WaitGroup
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := limiter.Allow("10.0.0.1"); ok {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&allowed); got != 5 {
		t.Fatalf("expected exactly 5 allowed requests, got %d", got)
	}
}

func TestFixedWindowLimiterIsPerClient(t *testing.T) {
	limiter := NewFixedWindowLimiter(1, time.Minute)

	if allowed, _ := limiter.Allow("10.0.0.1"); !allowed {
		t.Fatal("first client should be allowed")
	}
	if allowed, _ := limiter.Allow("10.0.0.2"); !allowed {
		t.Fatal("second client should be allowed")
	}
	if allowed, _ := limiter.Allow("10.0.0.1"); allowed {
		t.Fatal("first client should now be blocked")
	}
}
