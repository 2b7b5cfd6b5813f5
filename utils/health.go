package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// HealthCheck probes one dependency; nil means healthy.
type HealthCheck func(ctx context.Context) error

// HealthStatus is the latest dependency snapshot.
type HealthStatus struct {
	Dependencies map[string]bool `json:"dependencies"`
	CheckedAt    time.Time       `json:"checkedAt"`
}

// HealthMonitor runs its checks periodically and keeps the last result.
type HealthMonitor struct {
	checks map[string]HealthCheck

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(checks map[string]HealthCheck) *HealthMonitor {
	return &HealthMonitor{checks: checks}
}

// Status returns a copy of the latest snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	deps := make(map[string]bool, len(m.current.Dependencies))
	for k, v := range m.current.Dependencies {
		deps[k] = v
	}
	return HealthStatus{Dependencies: deps, CheckedAt: m.current.CheckedAt}
}

// Check runs every probe once, each with a short timeout, and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	deps := make(map[string]bool, len(m.checks))
	for name, check := range m.checks {
		cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := check(cctx)
		cancel()
		if err != nil {
			GetLogger().Warn("dependency unhealthy", zap.String("dependency", name), zap.Error(err))
		}
		deps[name] = err == nil
	}

	m.mu.Lock()
	m.current = HealthStatus{Dependencies: deps, CheckedAt: time.Now().UTC()}
	m.mu.Unlock()
	return m.Status()
}

// Start checks immediately and then every interval until ctx ends.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		m.Check(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
