package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// limiter tracks fixed-window request counts per client address.
type limiter struct {
	mu      sync.Mutex
	counts  map[string]*window
	max     int
	period  time.Duration
	stopGC  chan struct{}
	gcEvery time.Duration
}

type window struct {
	count   int
	resetAt time.Time
}

func newLimiter(max int, period time.Duration) *limiter {
	l := &limiter{
		counts:  map[string]*window{},
		max:     max,
		period:  period,
		stopGC:  make(chan struct{}),
		gcEvery: time.Minute,
	}
	go l.gcLoop()
	return l
}

func (l *limiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	win, ok := l.counts[key]
	if !ok || now.After(win.resetAt) {
		win = &window{resetAt: now.Add(l.period)}
		l.counts[key] = win
	}

	win.count++
	return win.count <= l.max
}

// gcLoop evicts expired windows so long-running servers don't grow without
// bound.
func (l *limiter) gcLoop() {
	ticker := time.NewTicker(l.gcEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			for key, win := range l.counts {
				if now.After(win.resetAt) {
					delete(l.counts, key)
				}
			}
			l.mu.Unlock()
		case <-l.stopGC:
			return
		}
	}
}

// RateLimit limits each client IP to max requests per window.
//
//	r.Use(middleware.RateLimit(200, time.Minute))
func RateLimit(max int, period time.Duration) func(http.Handler) http.Handler {
	l := newLimiter(max, period)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = strings.SplitN(fwd, ",", 2)[0]
			}

			if !l.allow(ip) {
				http.Error(w, `{"status":429,"message":"Too Many Requests"}`, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
