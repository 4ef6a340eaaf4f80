package pubsub

import (
	"context"
	"log"
	"strings"
	"testing"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestInitClient_Initialize(t *testing.T) {
	server := pstest.NewServer()
	defer server.Close() //nolint:errcheck

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	assert.NoError(t, err)
	ctx := context.Background()
	client, err := pubsubV2.NewClient(
		ctx,
		"test-project",
		option.WithGRPCConn(conn),
	)
	assert.NoError(t, err)

	init := &InitClient{
		Logger: log.New(&strings.Builder{}, "", 0),
		client: client,
	}

	_, err = init.Initialize(ctx)
	assert.NoError(t, err)

	_, err = depend.Resolve[*pubsubV2.Client]()
	assert.NoError(t, err)

	init.Close()
}

func TestInitClient_Initialize_Disabled(t *testing.T) {
	var buf strings.Builder
	init := &InitClient{
		Logger:    log.New(&buf, "", 0),
		ProjectID: "-",
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "pubsub disabled")

	init.Close()
}

func TestInitClient_Initialize_Emulator(t *testing.T) {
	t.Setenv("PUBSUB_EMULATOR_HOST", "localhost:8681")

	var buf strings.Builder
	init := &InitClient{
		Logger:       log.New(&buf, "", 0),
		ProjectID:    "mathsolver-local",
		EmulatorHost: "localhost:8681",
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "using pubsub emulator at localhost:8681")

	client, err := depend.Resolve[*pubsubV2.Client]()
	assert.NoError(t, err)
	assert.NotNil(t, client)

	init.Close()
}
