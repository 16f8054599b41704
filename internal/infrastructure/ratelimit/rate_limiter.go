package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Actions with their own budgets.
const (
	ActionSendMessage = "send_message"
	ActionSummarize   = "summarize"
	ActionDefault     = "default"
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key and action.
type RateLimiter struct {
	limits  map[string]int
	buckets map[string]*bucket
	mutex   sync.Mutex
}

// NewRateLimiter takes per-minute budgets keyed by action. Actions without
// an entry use the ActionDefault budget, or 60 per minute.
func NewRateLimiter(perMinute map[string]int) *RateLimiter {
	limits := make(map[string]int, len(perMinute))
	for action, n := range perMinute {
		limits[action] = n
	}
	return &RateLimiter{
		limits:  limits,
		buckets: make(map[string]*bucket),
	}
}

func (rl *RateLimiter) budget(action string) int {
	if n, ok := rl.limits[action]; ok && n > 0 {
		return n
	}
	if n, ok := rl.limits[ActionDefault]; ok && n > 0 {
		return n
	}
	return 60
}

// Allow consumes a token for key+action. When refused it reports how long
// until the next token.
func (rl *RateLimiter) Allow(key, action string) (bool, time.Duration) {
	rl.mutex.Lock()
	id := key + ":" + action
	b, ok := rl.buckets[id]
	if !ok {
		n := rl.budget(action)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)}
		rl.buckets[id] = b
	}
	now := time.Now()
	b.lastSeen = now
	rl.mutex.Unlock()

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Minute
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Cleanup drops buckets idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	for id, b := range rl.buckets {
		if now.Sub(b.lastSeen) > maxIdle {
			delete(rl.buckets, id)
		}
	}
}

func (rl *RateLimiter) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			rl.Cleanup(time.Hour)
		}
	}()
}
