package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmodel "skillax-backend/internal/domains/chat/model"
	"skillax-backend/internal/shared/errs"
)

type fakeProvider struct {
	reply    string
	err      error
	lastSeen []chatmodel.Message
}

func (p *fakeProvider) Complete(_ context.Context, messages []chatmodel.Message) (string, error) {
	p.lastSeen = messages
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

// mapCache is an in-memory cache.Cache for tests.
type mapCache struct {
	data map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{data: make(map[string][]byte)} }

func (c *mapCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *mapCache) Ping(_ context.Context) error { return nil }

func TestChatSendHappyPath(t *testing.T) {
	provider := &fakeProvider{reply: "Hello! How can I help?"}
	svc := NewService(provider, newMapCache())

	resp, err := svc.Send(context.Background(), &chatmodel.ChatRequest{
		Message:   "Hi",
		SessionID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello! How can I help?", resp.Response)
	assert.Equal(t, "s1", resp.SessionID)
	assert.False(t, resp.Error)

	// First message to the provider is always the system prompt.
	require.NotEmpty(t, provider.lastSeen)
	assert.Equal(t, chatmodel.RoleSystem, provider.lastSeen[0].Role)
	assert.Equal(t, chatmodel.RoleUser, provider.lastSeen[len(provider.lastSeen)-1].Role)
}

func TestChatSendValidation(t *testing.T) {
	svc := NewService(&fakeProvider{reply: "x"}, newMapCache())

	_, err := svc.Send(context.Background(), &chatmodel.ChatRequest{SessionID: "s1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidationFailed))

	_, err = svc.Send(context.Background(), &chatmodel.ChatRequest{Message: "hi"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidationFailed))
}

func TestChatProviderFailureFallsBack(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream down")}
	svc := NewService(provider, newMapCache())

	resp, err := svc.Send(context.Background(), &chatmodel.ChatRequest{
		Message:   "Hi",
		SessionID: "s1",
	})
	require.NoError(t, err)
	assert.True(t, resp.Error)
	assert.Contains(t, resp.Response, "contact@skillax.in")
}

func TestChatHistoryPersistsAcrossTurns(t *testing.T) {
	provider := &fakeProvider{reply: "reply"}
	cache := newMapCache()
	svc := NewService(provider, cache)
	ctx := context.Background()

	_, err := svc.Send(ctx, &chatmodel.ChatRequest{Message: "first", SessionID: "s1"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, &chatmodel.ChatRequest{Message: "second", SessionID: "s1"})
	require.NoError(t, err)

	// System prompt + first turn (user+assistant) + second user message.
	require.Len(t, provider.lastSeen, 4)
	assert.Equal(t, "first", provider.lastSeen[1].Content)
	assert.Equal(t, "reply", provider.lastSeen[2].Content)
	assert.Equal(t, "second", provider.lastSeen[3].Content)
}

func TestChatHistoryTrimming(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	cache := newMapCache()
	svc := NewService(provider, cache)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		_, err := svc.Send(ctx, &chatmodel.ChatRequest{
			Message:   fmt.Sprintf("message %d", i),
			SessionID: "s1",
		})
		require.NoError(t, err)
	}

	var history []chatmodel.Message
	found, err := cache.Get(ctx, sessionKeyPrefix+"s1", &history)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, history, maxHistoryMessages)
	// The oldest turns fell off; the newest user message survives.
	assert.Equal(t, "message 29", history[len(history)-2].Content)
}

func TestChatSessionsAreIsolated(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc := NewService(provider, newMapCache())
	ctx := context.Background()

	_, err := svc.Send(ctx, &chatmodel.ChatRequest{Message: "for session one", SessionID: "s1"})
	require.NoError(t, err)
	_, err = svc.Send(ctx, &chatmodel.ChatRequest{Message: "for session two", SessionID: "s2"})
	require.NoError(t, err)

	// The second call only carries session two's history.
	require.Len(t, provider.lastSeen, 2)
	assert.Equal(t, "for session two", provider.lastSeen[1].Content)
}
