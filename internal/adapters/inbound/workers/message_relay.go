package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/usecases"
)

// MessageRelay is a runnable that periodically publishes pending model
// configuration events from the outbox.
type MessageRelay struct {
	OutboxRelay usecases.RelayOutbox `resolve:""`
	Logger      *log.Logger          `resolve:""`
	Interval    time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	batchDone   chan struct{}
}

// Run relays outbox batches until ctx is canceled.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Printf("MessageRelay: running every %s...", mr.Interval)
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := mr.OutboxRelay.Execute(ctx); err != nil {
				mr.Logger.Printf("MessageRelay: error processing batch: %v", err)
			}
			mr.signalBatchDone(ctx)
		case <-ctx.Done():
			mr.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}

func (mr MessageRelay) signalBatchDone(ctx context.Context) {
	if mr.batchDone == nil {
		return
	}
	select {
	case mr.batchDone <- struct{}{}:
	case <-ctx.Done():
	}
}
