package registry

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := New[int]()

	_, ok := r.Get("missing")
	assert.False(t, ok)

	v, loaded := r.GetOrAdd("one", func() int { return 1 })
	assert.False(t, loaded)
	assert.Equal(t, 1, v)
	v, ok = r.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, loaded = r.GetOrAdd("one", func() int { return 100 })
	assert.True(t, loaded)
	assert.Equal(t, 1, v)

	v, loaded = r.GetOrAdd("two", func() int { return 2 })
	assert.False(t, loaded)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_Concurrent(t *testing.T) {
	r := New[string]()
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := strconv.Itoa(i % 8)
			r.GetOrAdd(name, func() string { return name })
			v, ok := r.Get(name)
			assert.True(t, ok)
			assert.Equal(t, name, v)
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, r.Len())
}
