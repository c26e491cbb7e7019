package redis_client

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/catalogue/pkg/config"
)

func TestConnect(t *testing.T) {
	server := miniredis.RunT(t)

	require.NoError(t, Connect(config.RedisConfig{Address: server.Addr()}))
	t.Cleanup(func() { Client.Close() })

	require.NoError(t, Client.Set(context.Background(), "key", "value", 0).Err())
	assert.Equal(t, "value", Client.Get(context.Background(), "key").Val())
}

func TestConnectUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	address := server.Addr()
	server.Close()

	assert.Error(t, Connect(config.RedisConfig{Address: address}))
}
