package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitClient creates the Pub/Sub client. When PUBSUB_PROJECT_ID is unset no
// client is registered and events are only logged.
type InitClient struct {
	Logger       *log.Logger `resolve:""`
	ProjectID    string      `config:"PUBSUB_PROJECT_ID" default:"-"`
	EmulatorHost string      `config:"PUBSUB_EMULATOR_HOST" default:"-"`
	client       *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		if i.ProjectID == "-" {
			i.Logger.Println("InitClient: PUBSUB_PROJECT_ID not set, pubsub disabled")
			return ctx, nil
		}
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		if i.EmulatorHost != "-" {
			i.Logger.Printf("InitClient: using pubsub emulator at %s", i.EmulatorHost)
		}
		i.client = client
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}
