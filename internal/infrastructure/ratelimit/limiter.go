package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of a single admission check. When denied,
// Remaining holds the tokens left in the bucket and RetryAfter the time
// until at least one token refills.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type tokenBucket struct {
	tokens      int
	capacity    int
	refillRate  int           // tokens added per refill interval
	refillEvery time.Duration // refill interval
	lastRefill  time.Time
	lastAccess  time.Time
	mutex       sync.Mutex
}

func newTokenBucket(capacity, refillRate int, refillEvery time.Duration) *tokenBucket {
	now := time.Now()
	return &tokenBucket{
		tokens:      capacity,
		capacity:    capacity,
		refillRate:  refillRate,
		refillEvery: refillEvery,
		lastRefill:  now,
		lastAccess:  now,
	}
}

// take atomically refills by elapsed time, then checks and deducts cost.
func (tb *tokenBucket) take(cost int) Decision {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()
	tb.lastAccess = now

	if tb.refillEvery > 0 && tb.refillRate > 0 {
		elapsed := now.Sub(tb.lastRefill)
		tokensToAdd := int(elapsed/tb.refillEvery) * tb.refillRate
		if tokensToAdd > 0 {
			tb.tokens += tokensToAdd
			if tb.tokens > tb.capacity {
				tb.tokens = tb.capacity
			}
			tb.lastRefill = now
		}
	}

	if tb.tokens >= cost {
		tb.tokens -= cost
		return Decision{Allowed: true, Remaining: tb.tokens}
	}

	retryAfter := time.Duration(0)
	if tb.refillEvery > 0 && tb.refillRate > 0 {
		retryAfter = tb.lastRefill.Add(tb.refillEvery).Sub(now)
	}
	return Decision{Allowed: false, Remaining: tb.tokens, RetryAfter: retryAfter}
}

// Limiter manages one token bucket per caller identity.
type Limiter struct {
	buckets     map[string]*tokenBucket
	mutex       sync.RWMutex
	capacity    int
	refillRate  int
	refillEvery time.Duration
}

func NewLimiter(capacity, refillRate int, refillEvery time.Duration) *Limiter {
	return &Limiter{
		buckets:     make(map[string]*tokenBucket),
		capacity:    capacity,
		refillRate:  refillRate,
		refillEvery: refillEvery,
	}
}

// Admit checks and deducts cost tokens for the identity in one atomic step.
func (l *Limiter) Admit(identity string, cost int) Decision {
	l.mutex.RLock()
	bucket, exists := l.buckets[identity]
	l.mutex.RUnlock()

	if !exists {
		l.mutex.Lock()
		// Double-check pattern
		if bucket, exists = l.buckets[identity]; !exists {
			bucket = newTokenBucket(l.capacity, l.refillRate, l.refillEvery)
			l.buckets[identity] = bucket
		}
		l.mutex.Unlock()
	}

	return bucket.take(cost)
}

// Evict removes buckets idle longer than maxIdle so the identity-keyed map
// cannot grow without bound.
func (l *Limiter) Evict(maxIdle time.Duration) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := time.Now()
	for identity, bucket := range l.buckets {
		bucket.mutex.Lock()
		idle := now.Sub(bucket.lastAccess)
		bucket.mutex.Unlock()
		if idle > maxIdle {
			delete(l.buckets, identity)
		}
	}
}

// StartEvictionLoop sweeps idle buckets until the context-free process exits.
func (l *Limiter) StartEvictionLoop(interval, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			l.Evict(maxIdle)
		}
	}()
}

// Size returns the number of tracked identities.
func (l *Limiter) Size() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return len(l.buckets)
}
