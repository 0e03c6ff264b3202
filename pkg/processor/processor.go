// Package processor executes pending transactions. The shipped
// implementation simulates rail latency; a real rail integration would plug
// in behind the same interface.
package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/payflow/pkg/dto"
)

// Status is the outcome of processing a single transaction.
type Status string

const (
	// Settled means the rail accepted the transaction.
	Settled Status = "settled"
	// Failed means the rail rejected the transaction. The caller must not
	// apply any balance effect.
	Failed Status = "failed"
)

// Result is returned by Process once the transaction reaches an outcome.
type Result struct {
	Status      Status
	CompletedAt time.Time
	// Reason carries the rail's rejection message when Status is Failed.
	Reason string
}

// Processor takes a pending transaction and blocks until it reaches an
// outcome or ctx is done.
type Processor interface {
	Process(ctx context.Context, tx *dto.TransactionRead) (Result, error)
}

// Simulated is a Processor that settles every transaction after a fixed
// delay, standing in for a payment rail. It honors context cancellation, so
// a caller that gives up does not leak the wait.
type Simulated struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewSimulated creates a Simulated processor with the given settlement delay.
func NewSimulated(delay time.Duration, logger *slog.Logger) *Simulated {
	return &Simulated{delay: delay, logger: logger}
}

// Process waits the configured delay and settles the transaction. It returns
// ctx.Err() if the context is canceled first; no outcome is reached in that
// case and the transaction stays pending.
func (p *Simulated) Process(ctx context.Context, tx *dto.TransactionRead) (Result, error) {
	log := p.logger.With("transactionID", tx.ID, "type", tx.Type, "amount", tx.Amount)
	log.Debug("transaction processing started")

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		log.Warn("transaction processing abandoned", "error", ctx.Err())
		return Result{}, ctx.Err()
	case completedAt := <-timer.C:
		log.Debug("transaction processed")
		return Result{Status: Settled, CompletedAt: completedAt.UTC()}, nil
	}
}
