package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// FinalizeGuard marca sesiones ya finalizadas para que reintentar el turno
// final no inserte el registro dos veces. Release libera la marca cuando la
// persistencia falla y el cierre debe poder reintentarse.
type FinalizeGuard interface {
	Acquire(ctx context.Context, sessionID string) (bool, error)
	Release(ctx context.Context, sessionID string) error
}

type memoryFinalizeGuard struct {
	mu    sync.Mutex
	items map[string]time.Time
	ttl   time.Duration
}

func NewMemoryFinalizeGuard(ttl time.Duration) FinalizeGuard {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &memoryFinalizeGuard{
		items: make(map[string]time.Time),
		ttl:   ttl,
	}
}

func (g *memoryFinalizeGuard) Acquire(_ context.Context, sessionID string) (bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return false, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if exp, ok := g.items[sessionID]; ok && time.Now().UTC().Before(exp) {
		return false, nil
	}
	g.items[sessionID] = time.Now().UTC().Add(g.ttl)
	return true, nil
}

func (g *memoryFinalizeGuard) Release(_ context.Context, sessionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.items, sessionID)
	return nil
}

type redisFinalizeGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisFinalizeGuard(client *redis.Client, ttl time.Duration) FinalizeGuard {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisFinalizeGuard{
		client: client,
		prefix: "feedback:finalized:",
		ttl:    ttl,
	}
}

func (g *redisFinalizeGuard) Acquire(ctx context.Context, sessionID string) (bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return g.client.SetNX(ctx, g.prefix+sessionID, 1, g.ttl).Result()
}

func (g *redisFinalizeGuard) Release(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return g.client.Del(ctx, g.prefix+sessionID).Err()
}
