package common

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClickLimiter хранит по лимитеру на пользователя
type ClickLimiter struct {
	mu       sync.Mutex
	limiters map[int64]*limiterEntry
	every    time.Duration
	burst    int
	now      func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClickLimiter пропускает в среднем одно нажатие за every с запасом burst
func NewClickLimiter(every time.Duration, burst int) *ClickLimiter {
	return &ClickLimiter{
		limiters: make(map[int64]*limiterEntry),
		every:    every,
		burst:    burst,
		now:      time.Now,
	}
}

// Allow проверяет, можно ли обработать нажатие пользователя
func (l *ClickLimiter) Allow(telegramID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[telegramID]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.limiters[telegramID] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Forget удаляет лимитеры пользователей, неактивных дольше idle
func (l *ClickLimiter) Forget(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for id, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > idle {
			delete(l.limiters, id)
			removed++
		}
	}
	return removed
}
