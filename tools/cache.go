package tools

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// SymbolListTTL is how long a downloaded symbol directory is reused by the
// search*List tools of one catalog.
const SymbolListTTL = time.Hour

// memo keeps the last successful result of fetch for ttl. Concurrent misses
// share one fetch.
type memo[T any] struct {
	fetch func(context.Context) (T, error)
	ttl   time.Duration
	now   func() time.Time

	group   singleflight.Group
	mu      sync.Mutex
	value   T
	fetched time.Time
	loaded  bool
}

func newMemo[T any](ttl time.Duration, fetch func(context.Context) (T, error)) *memo[T] {
	return &memo[T]{fetch: fetch, ttl: ttl, now: time.Now}
}

func (m *memo[T]) get(ctx context.Context) (T, error) {
	m.mu.Lock()
	if m.loaded && m.now().Sub(m.fetched) < m.ttl {
		v := m.value
		m.mu.Unlock()
		return v, nil
	}
	m.mu.Unlock()

	v, err, _ := m.group.Do("", func() (any, error) {
		res, err := m.fetch(ctx)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.value, m.fetched, m.loaded = res, m.now(), true
		m.mu.Unlock()
		return res, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
