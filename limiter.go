package repolink

import (
	"sync"
	"time"
)

// RenderLimiter caps how many uncached page renders one client IP may
// trigger per window. Cached pages are never limited.
type RenderLimiter struct {
	mu      sync.Mutex
	renders map[string][]time.Time
	max     int
	window  time.Duration
	stop    chan struct{}
	once    sync.Once
}

// NewRenderLimiter creates a RenderLimiter that allows max renders per window.
func NewRenderLimiter(max int, window time.Duration) *RenderLimiter {
	l := &RenderLimiter{
		renders: make(map[string][]time.Time),
		max:     max,
		window:  window,
		stop:    make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *RenderLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
		}
		cutoff := time.Now().Add(-l.window)
		l.mu.Lock()
		for ip, hits := range l.renders {
			kept := prune(hits, cutoff)
			if len(kept) == 0 {
				delete(l.renders, ip)
			} else {
				l.renders[ip] = kept
			}
		}
		l.mu.Unlock()
	}
}

// Allow reports whether ip may trigger another render and, if so, records it.
func (l *RenderLimiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := prune(l.renders[ip], now.Add(-l.window))
	if len(kept) >= l.max {
		l.renders[ip] = kept
		return false
	}
	l.renders[ip] = append(kept, now)
	return true
}

// Stop ends the background cleanup. It is safe to call more than once.
func (l *RenderLimiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func prune(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
