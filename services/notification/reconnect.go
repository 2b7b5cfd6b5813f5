package notification

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	initialReconnectDelay = time.Second
	maxReconnectDelay     = 30 * time.Second
)

// keepRelaying calls relay until ctx is done, doubling the pause between
// attempts up to maxReconnectDelay. The pause resets once an attempt has
// stayed connected for longer than the current delay.
func keepRelaying(ctx context.Context, logger *zap.Logger, initial time.Duration, relay func(context.Context) error) error {
	if initial <= 0 {
		initial = initialReconnectDelay
	}
	delay := initial
	for {
		started := time.Now()
		err := relay(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if time.Since(started) > delay {
			delay = initial
		}
		logger.Warn("chair event relay stopped; reconnecting",
			zap.Error(err), zap.Duration("backoff", delay))
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
		if delay < maxReconnectDelay {
			delay *= 2
			if delay > maxReconnectDelay {
				delay = maxReconnectDelay
			}
		}
	}
}
