package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/telemetry"
)

func TestNoop(t *testing.T) {
	noop := telemetry.NewNoop()

	ctx, vertex := noop.Record(context.Background(), "linux/runtime")
	require.NotNil(t, ctx)
	require.NotNil(t, vertex)

	n, err := vertex.Stdout().Write([]byte("discarded"))
	require.NoError(t, err)
	require.Equal(t, len("discarded"), n)

	vertex.Cached()
	vertex.Complete(nil)

	require.NoError(t, noop.Close())
}
