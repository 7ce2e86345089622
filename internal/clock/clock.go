package clock

import (
	"sync"
	"time"
)

// MonotonicClock выдает метки времени для локальных изменений.
// Каждая следующая метка строго больше предыдущей, даже если системные часы
// стоят на месте или ушли назад (по аналогии с часами Лампорта: max(local, now) + 1).
type MonotonicClock struct {
	last time.Time        // последняя выданная метка
	now  func() time.Time // источник физического времени
	mu   sync.Mutex       // мьютекс для потокобезопасности
}

// New creates a clock backed by time.Now.
func New() *MonotonicClock {
	return NewWithSource(time.Now)
}

// NewWithSource creates a clock with a custom time source. Used in tests.
func NewWithSource(now func() time.Time) *MonotonicClock {
	return &MonotonicClock{now: now}
}

// Tick returns a timestamp strictly greater than any previously issued one.
// Monotonic readings are stripped so values survive a JSON round trip unchanged.
func (c *MonotonicClock) Tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().Round(0).UTC()
	if !ts.After(c.last) {
		ts = c.last.Add(time.Nanosecond)
	}
	c.last = ts

	return ts
}

// Observe advances the clock past ts. Called after loading persisted notes so
// that timestamps issued after a restart never go below stored ones.
func (c *MonotonicClock) Observe(ts time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ts.After(c.last) {
		c.last = ts.Round(0).UTC()
	}
}

// Last возвращает последнюю выданную метку без изменения часов.
func (c *MonotonicClock) Last() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}
