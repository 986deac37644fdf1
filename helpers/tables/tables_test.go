package tables

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazyBuildsOnce(t *testing.T) {
	var builds atomic.Int32
	l := NewLazy(func() Table {
		builds.Add(1)
		return Table{"a": "b"}
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _ := l.Get().Lookup("a")
			assert.Equal(t, "b", v)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), builds.Load())
}

func TestLookupNamespaced(t *testing.T) {
	tb := Table{"minecraft:stone": "minecraft:granite", "Chest": "minecraft:chest"}

	v, ok := tb.LookupNamespaced("stone")
	assert.True(t, ok)
	assert.Equal(t, "minecraft:granite", v)

	v, ok = tb.LookupNamespaced("Chest")
	assert.True(t, ok)
	assert.Equal(t, "minecraft:chest", v)

	_, ok = tb.LookupNamespaced("dirt")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	s := NewSet("bow", "minecraft:shield")
	assert.True(t, s.Has("minecraft:bow"))
	assert.True(t, s.Has("shield"))
	assert.False(t, s.Has("stick"))
}
