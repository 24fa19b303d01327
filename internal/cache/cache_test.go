package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestNew_DisabledWithoutAddr(t *testing.T) {
	assert.Nil(t, New("", "", 0))
}

func TestClient_NilIsNoop(t *testing.T) {
	var c *Client
	ctx := context.Background()

	c.SetJSON(ctx, "k", map[string]string{"a": "b"}, time.Minute)
	var out map[string]string
	assert.False(t, c.GetJSON(ctx, "k", &out))
	c.Delete(ctx, "k")
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestClient_UnreachableBehavesAsMiss(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c.SetJSON(ctx, "k", 1, time.Minute)
	var out int
	assert.False(t, c.GetJSON(ctx, "k", &out))
	c.Delete(ctx, "k")
	assert.Error(t, c.Ping(ctx))
}

func TestClient_JSONRoundTrip(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	type entry struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	c.SetJSON(ctx, "user:1", entry{Name: "Alice", Email: "a@x.com"}, time.Minute)
	assert.True(t, mr.Exists("user:1"))
	assert.Equal(t, time.Minute, mr.TTL("user:1"))

	var got entry
	require.True(t, c.GetJSON(ctx, "user:1", &got))
	assert.Equal(t, entry{Name: "Alice", Email: "a@x.com"}, got)

	var missing entry
	assert.False(t, c.GetJSON(ctx, "user:2", &missing))

	mr.FastForward(2 * time.Minute)
	assert.False(t, c.GetJSON(ctx, "user:1", &got))
}

func TestClient_Delete(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	c.SetJSON(ctx, "user:1", map[string]string{"name": "Alice"}, time.Minute)
	require.True(t, mr.Exists("user:1"))

	c.Delete(ctx, "user:1")
	assert.False(t, mr.Exists("user:1"))

	var out map[string]string
	assert.False(t, c.GetJSON(ctx, "user:1", &out))
}

func TestClient_CorruptValueIsMiss(t *testing.T) {
	c, mr := newTestClient(t)
	require.NoError(t, mr.Set("user:1", "{not json"))

	var out map[string]string
	assert.False(t, c.GetJSON(context.Background(), "user:1", &out))
}
