package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockCmdable struct {
	values map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{values: map[string]string{}}
}

func (m *mockCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")
	return cmd
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	switch v := value.(type) {
	case []byte:
		m.values[key] = string(v)
	case string:
		m.values[key] = v
	}
	cmd.SetVal("OK")
	return cmd
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if v, ok := m.values[key]; ok {
		cmd.SetVal(v)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	var removed int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			delete(m.values, key)
			removed++
		}
	}
	cmd.SetVal(removed)
	return cmd
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	type roster struct {
		Names []string `json:"names"`
	}

	key := client.ReferenceKey("branches")
	if err := client.SetJSON(ctx, key, roster{Names: []string{"Central", "East Wing"}}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got roster
	if err := client.GetJSON(ctx, key, &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Names) != 2 || got.Names[0] != "Central" {
		t.Fatalf("unexpected roster %+v", got)
	}
}

func TestGetJSONMissReturnsSentinel(t *testing.T) {
	client := &Client{store: newMockCmdable()}

	var dest map[string]any
	err := client.GetJSON(context.Background(), client.ReferenceKey("shifts"), &dest)
	if err != ErrCacheMiss {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestReferenceKeyNamespacing(t *testing.T) {
	client := &Client{}
	if key := client.ReferenceKey("branches"); key != "ss:reference:branches" {
		t.Fatalf("unexpected key %q", key)
	}
}
