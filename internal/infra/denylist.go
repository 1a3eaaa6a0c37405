package infra

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist remembers revoked token ids until they would have expired.
// It also keeps a per-user generation: tokens carry the generation current at
// login and RevocarUsuario bumps it, which rejects every older token.
type TokenDenylist interface {
	Revocar(ctx context.Context, jti string, ttl time.Duration) error
	Revocado(ctx context.Context, jti string) (bool, error)
	RevocarUsuario(ctx context.Context, userID string) error
	Generacion(ctx context.Context, userID string) (int64, error)
}

const (
	prefijoDenylist   = "aratrack:jwt:revocado:"
	prefijoGeneracion = "aratrack:jwt:generacion:"
)

type redisDenylist struct{ rdb *redis.Client }

// NewRedisDenylist keeps revoked ids in Redis with the token's remaining TTL.
func NewRedisDenylist(rdb *redis.Client) TokenDenylist { return &redisDenylist{rdb: rdb} }

func (d *redisDenylist) Revocar(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, prefijoDenylist+jti, 1, ttl).Err()
}

func (d *redisDenylist) Revocado(ctx context.Context, jti string) (bool, error) {
	n, err := d.rdb.Exists(ctx, prefijoDenylist+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Generation keys carry no TTL. Expiring them would reset the counter below
// the generation of tokens that are still alive.
func (d *redisDenylist) RevocarUsuario(ctx context.Context, userID string) error {
	return d.rdb.Incr(ctx, prefijoGeneracion+userID).Err()
}

func (d *redisDenylist) Generacion(ctx context.Context, userID string) (int64, error) {
	n, err := d.rdb.Get(ctx, prefijoGeneracion+userID).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

type memoriaDenylist struct {
	mu           sync.Mutex
	vence        map[string]time.Time
	generaciones map[string]int64
	ahora        func() time.Time
}

// NewMemoriaDenylist is the single-process fallback used when REDIS_URL is empty.
func NewMemoriaDenylist() TokenDenylist {
	return &memoriaDenylist{
		vence:        make(map[string]time.Time),
		generaciones: make(map[string]int64),
		ahora:        time.Now,
	}
}

func (d *memoriaDenylist) Revocar(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.ahora()
	for k, t := range d.vence {
		if now.After(t) {
			delete(d.vence, k)
		}
	}
	d.vence[jti] = now.Add(ttl)
	return nil
}

func (d *memoriaDenylist) Revocado(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, ok := d.vence[jti]
	if !ok {
		return false, nil
	}
	if d.ahora().After(t) {
		delete(d.vence, jti)
		return false, nil
	}
	return true, nil
}

func (d *memoriaDenylist) RevocarUsuario(_ context.Context, userID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generaciones[userID]++
	return nil
}

func (d *memoriaDenylist) Generacion(_ context.Context, userID string) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.generaciones[userID], nil
}
