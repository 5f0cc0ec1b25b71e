package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisconnect_NoClient(t *testing.T) {
	client = nil
	require.NoError(t, Disconnect(context.Background()))
}
