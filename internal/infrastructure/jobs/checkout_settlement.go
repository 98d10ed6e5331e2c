package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"startup-nexus.backend/pkg/logger"
)

type checkoutSettler interface {
	SettleDue(ctx context.Context, now time.Time) (int, error)
}

// CheckoutSettlementJob flips processing checkouts to succeeded once their
// simulated delay has elapsed.
type CheckoutSettlementJob struct {
	settler  checkoutSettler
	interval time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewCheckoutSettlementJob(settler checkoutSettler, interval time.Duration) *CheckoutSettlementJob {
	if interval <= 0 {
		interval = time.Second
	}
	return &CheckoutSettlementJob{
		settler:  settler,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Start blocks until ctx is cancelled or Stop is called.
func (j *CheckoutSettlementJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting checkout settlement job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Checkout settlement job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Checkout settlement job stopped")
			return
		case <-ticker.C:
			j.settleDue(ctx)
		}
	}
}

// Stop is safe to call more than once.
func (j *CheckoutSettlementJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *CheckoutSettlementJob) settleDue(ctx context.Context) int {
	n, err := j.settler.SettleDue(ctx, j.now())
	if err != nil {
		logger.Error(ctx, "Error settling checkouts", zap.Error(err))
		return 0
	}
	if n > 0 {
		logger.Info(ctx, "Settled checkouts", zap.Int("count", n))
	}
	return n
}
