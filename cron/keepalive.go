package cron

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// KeepAlive pings a URL on a cron schedule so idle hosting does not put the
// service to sleep.
type KeepAlive struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger

	cron *cron.Cron
}

func NewKeepAlive(url string, logger *zap.Logger) *KeepAlive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KeepAlive{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
	}
}

// Ping performs one GET and treats any non-2xx answer as a failure.
func (k *KeepAlive) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.URL, nil)
	if err != nil {
		return fmt.Errorf("keepalive request: %w", err)
	}
	resp, err := k.Client.Do(req)
	if err != nil {
		return fmt.Errorf("keepalive ping: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("keepalive ping: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Start schedules Ping with a standard five-field cron spec.
func (k *KeepAlive) Start(spec string) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := k.Ping(ctx); err != nil {
			k.Logger.Warn("Failed to ping health endpoint", zap.String("url", k.URL), zap.Error(err))
			return
		}
		k.Logger.Info("Pinged health endpoint to keep server awake", zap.String("url", k.URL))
	})
	if err != nil {
		return fmt.Errorf("invalid keepalive schedule %q: %w", spec, err)
	}
	k.cron = c
	c.Start()
	return nil
}

// Stop halts the scheduler and waits for a running ping to finish.
func (k *KeepAlive) Stop() {
	if k.cron == nil {
		return
	}
	<-k.cron.Stop().Done()
}
