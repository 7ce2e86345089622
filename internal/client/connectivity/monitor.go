package connectivity

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultProbeInterval период опроса сервера
	DefaultProbeInterval = 5 * time.Second
	// DefaultProbeTimeout таймаут одной проверки
	DefaultProbeTimeout = 3 * time.Second
)

//go:generate moq -out prober_mock.go . Prober

// Prober checks whether the remote service is reachable.
type Prober interface {
	Health(ctx context.Context) error
}

// Monitor tracks the online/offline signal and fires callbacks on changes.
// It starts online: when the signal cannot be observed the remote is assumed
// reachable.
type Monitor struct {
	prober   Prober
	logger   *slog.Logger
	onChange func(online bool)
	onOnline func(ctx context.Context)
	interval time.Duration
	timeout  time.Duration
	mu       sync.Mutex
	online   bool
}

// NewMonitor creates a monitor. A nil prober keeps the monitor online until
// Set says otherwise.
func NewMonitor(prober Prober, interval, timeout time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Monitor{
		prober:   prober,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		online:   true,
	}
}

// OnChange registers fn, called on every connectivity change.
func (m *Monitor) OnChange(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// OnOnline registers fn, called only on the offline to online edge.
func (m *Monitor) OnOnline(fn func(ctx context.Context)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onOnline = fn
}

// Online reports the current state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Set feeds an observed signal. Callbacks run synchronously, outside the lock.
func (m *Monitor) Set(ctx context.Context, online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	onChange, onOnline := m.onChange, m.onOnline
	m.mu.Unlock()

	m.logger.Info("Connectivity changed", "online", online)

	if onChange != nil {
		onChange(online)
	}
	if online && onOnline != nil {
		onOnline(ctx)
	}
}

// Probe performs one health check and applies its result.
func (m *Monitor) Probe(ctx context.Context) bool {
	if m.prober == nil {
		return m.Online()
	}

	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	err := m.prober.Health(probeCtx)
	cancel()

	if ctx.Err() != nil {
		// Отмена извне ничего не говорит о сети
		return m.Online()
	}
	if err != nil {
		m.logger.Debug("Health probe failed", "error", err)
	}

	online := err == nil
	m.Set(ctx, online)
	return online
}

// Run polls the prober until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	if m.prober == nil {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.Probe(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
