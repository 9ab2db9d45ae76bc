package workers

import (
	"context"
	"time"

	"renthub/logger"
)

// Expirer moves rentals whose end date has passed to expired.
type Expirer interface {
	ExpireDueRentals(ctx context.Context, now time.Time) (int, error)
}

// StartRentalExpiry sweeps due rentals every interval until ctx is done.
// The returned channel is closed once the loop has stopped.
func StartRentalExpiry(ctx context.Context, e Expirer, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("rental expiry worker stopped")
				return
			case <-ticker.C:
				SweepRentals(ctx, e, time.Now())
			}
		}
	}()
	return done
}

// SweepRentals runs one expiry pass. Errors are logged, never returned,
// so one bad pass does not stop the worker.
func SweepRentals(ctx context.Context, e Expirer, now time.Time) int {
	n, err := e.ExpireDueRentals(ctx, now)
	if err != nil {
		logger.Error("rental expiry: sweep failed", "err", err.Error())
		return n
	}
	if n > 0 {
		logger.Info("rental expiry: rentals expired", "count", n)
	}
	return n
}
