package workers

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mathsolver/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMessageRelay_Run(t *testing.T) {
	relay := usecases.NewMockRelayOutbox(t)

	relay.EXPECT().Execute(mock.Anything).Return(assert.AnError).Once()
	relay.EXPECT().Execute(mock.Anything).Return(nil).Once()
	relay.EXPECT().Execute(mock.Anything).Return(nil).Maybe()

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batchDone := make(chan struct{})
	runErr := make(chan error, 1)

	mr := MessageRelay{
		OutboxRelay: relay,
		Logger:      log.New(io.Discard, "", 0),
		Interval:    2 * time.Millisecond,
		batchDone:   batchDone,
	}

	go func() {
		runErr <- mr.Run(cancelCtx)
	}()

	for range 2 {
		select {
		case <-batchDone:
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for message relay to process batch")
		}
	}

	cancel()

	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("message relay did not stop")
	}
}
