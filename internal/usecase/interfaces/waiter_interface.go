package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=waiter_interface.go -destination=mocks/mock_waiter.go -package=mock_interfaces

// IWaiter abstracts the fixed "processing" pauses in phase transitions so
// tests run them synchronously. Implementations must honor context
// cancellation; they never busy-wait.
type IWaiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to IWaiter.
type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Wait(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// NewClockWaiter returns the production waiter backed by time.After.
func NewClockWaiter() IWaiter {
	return SleeperFunc(func(ctx context.Context, d time.Duration) error {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

// NoopWaiter skips all pauses; used by tests.
func NoopWaiter() IWaiter {
	return SleeperFunc(func(ctx context.Context, d time.Duration) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	})
}
