package core

// fetch_limiter.go implements concurrency control for database fetches.
//
// The limiter restricts parallel fetches to a configurable maximum so a burst
// of sessions cannot exhaust the connection pool. When all slots are
// occupied, new requests wait up to maxWait before failing with
// ErrTooManyFetches.

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrTooManyFetches is returned when all fetch slots are occupied and the
// wait timeout expires. Clients should retry after a short delay.
var ErrTooManyFetches = errors.New("too many concurrent fetches, please try again later")

// DefaultMaxConcurrentFetches is the default limit for parallel fetches.
const DefaultMaxConcurrentFetches = 8

// DefaultMaxWaitTime is how long to wait for a slot before rejecting.
const DefaultMaxWaitTime = 10 * time.Second

// FetchLimiter controls concurrent fetches using a weighted semaphore.
type FetchLimiter struct {
	sem     *semaphore.Weighted
	max     int
	maxWait time.Duration

	mu     sync.RWMutex
	active int
}

// NewFetchLimiter creates a limiter that allows at most maxConcurrent simultaneous fetches.
// Requests that cannot acquire a slot within maxWait receive ErrTooManyFetches.
func NewFetchLimiter(maxConcurrent int, maxWait time.Duration) *FetchLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentFetches
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWaitTime
	}

	return &FetchLimiter{
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
		max:     maxConcurrent,
		maxWait: maxWait,
	}
}

// Acquire attempts to acquire a fetch slot.
// Returns nil on success, ErrTooManyFetches if the wait times out.
// The caller MUST call Release() when the fetch completes (use defer).
func (l *FetchLimiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	if err := l.sem.Acquire(waitCtx, 1); err != nil {
		// Distinguish caller cancellation from our own timeout
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrTooManyFetches
	}

	l.mu.Lock()
	l.active++
	l.mu.Unlock()
	return nil
}

// TryAcquire attempts to acquire a slot without blocking.
func (l *FetchLimiter) TryAcquire() bool {
	if !l.sem.TryAcquire(1) {
		return false
	}
	l.mu.Lock()
	l.active++
	l.mu.Unlock()
	return true
}

// Release releases a previously acquired slot.
// Must be called exactly once for each successful Acquire/TryAcquire.
func (l *FetchLimiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()

	l.sem.Release(1)
}

// ActiveCount returns the number of fetches in progress.
func (l *FetchLimiter) ActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// WaitForDrain blocks until all active fetches complete or ctx is cancelled.
func (l *FetchLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if l.ActiveCount() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// FetchLimiterStatus is a snapshot of the limiter's state.
type FetchLimiterStatus struct {
	Active        int `json:"active"`
	Available     int `json:"available"`
	MaxConcurrent int `json:"max_concurrent"`
}

// Status returns the current limiter state for monitoring.
func (l *FetchLimiter) Status() FetchLimiterStatus {
	active := l.ActiveCount()
	return FetchLimiterStatus{
		Active:        active,
		Available:     l.max - active,
		MaxConcurrent: l.max,
	}
}
