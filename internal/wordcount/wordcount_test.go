package wordcount

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webbmaffian/go-chain/hashkey"
)

func newCounter(t *testing.T, buckets int, hash hashkey.Func) *Counter {
	t.Helper()

	c, err := New(buckets, hash)
	require.NoError(t, err)

	t.Cleanup(c.Close)
	return c
}

// collide maps every word to one of two keys.
func collide(buf []byte) uint64 {
	return uint64(len(buf) % 2)
}

func TestNew(t *testing.T) {
	_, err := New(0, hashkey.FNV64)
	assert.Error(t, err)
}

func TestAddText(t *testing.T) {
	c := newCounter(t, 2, hashkey.FNV64)

	n := c.AddText([]byte("The cat, the HAT; and the\tbat! Éclair éCLAIR 42"))
	assert.Equal(t, 10, n)
	assert.Equal(t, 10, c.Total())
	assert.Equal(t, 7, c.Distinct())

	assert.Equal(t, 3, c.Count("the"))
	assert.Equal(t, 3, c.Count("THE"))
	assert.Equal(t, 1, c.Count("cat"))
	assert.Equal(t, 2, c.Count("ÉCLAIR"))
	assert.Equal(t, 1, c.Count("42"))
	assert.Equal(t, 0, c.Count("dog"))
}

func TestCollisions(t *testing.T) {
	c := newCounter(t, 4, collide)
	c.AddText([]byte("a bb ccc dd e bb a a"))

	assert.Equal(t, 3, c.Count("a"))
	assert.Equal(t, 2, c.Count("bb"))
	assert.Equal(t, 1, c.Count("ccc"))
	assert.Equal(t, 1, c.Count("dd"))
	assert.Equal(t, 1, c.Count("e"))
	assert.Equal(t, 0, c.Count("ff"))

	s := c.Stats()
	assert.Equal(t, 2, s.Keys)
	assert.Equal(t, 5, s.Words)
	assert.Equal(t, 3, s.Collisions)
}

func TestPrune(t *testing.T) {
	t.Run("Collisions", func(t *testing.T) {
		c := newCounter(t, 1, collide)
		c.AddText([]byte("a bb ccc dd e bb a a ee"))

		assert.Equal(t, 4, c.Prune(2))
		assert.Equal(t, 2, c.Distinct())
		assert.Equal(t, 3, c.Count("a"))
		assert.Equal(t, 2, c.Count("bb"))
		assert.Equal(t, 0, c.Count("e"))

		assert.Equal(t, 2, c.Stats().Keys)
	})

	t.Run("DropsEmptyKeys", func(t *testing.T) {
		c := newCounter(t, 1, hashkey.FNV64)

		for i := 0; i < 50; i++ {
			c.Add([]byte(fmt.Sprintf("w%d", i)))

			if i%5 == 0 {
				c.Add([]byte(fmt.Sprintf("w%d", i)))
			}
		}

		assert.Equal(t, 40, c.Prune(2))
		assert.Equal(t, 10, c.Distinct())
		assert.Equal(t, 10, c.Stats().Keys)

		for _, e := range c.Words() {
			assert.Equal(t, 2, e.Count, e.Word)
		}
	})

	t.Run("Everything", func(t *testing.T) {
		c := newCounter(t, 3, hashkey.XX64)
		c.AddText([]byte("one two three"))

		assert.Equal(t, 3, c.Prune(10))
		assert.Equal(t, 0, c.Stats().Keys)
		assert.Empty(t, c.Words())
	})
}

func TestTop(t *testing.T) {
	c := newCounter(t, 2, hashkey.FNV64)
	c.AddText([]byte("c c c a a b b d e e e e f"))

	assert.Nil(t, c.Top(0))

	assert.Equal(t, []Entry{
		{"e", 4},
		{"c", 3},
		{"a", 2},
		{"b", 2},
	}, c.Top(4))

	all := c.Words()
	SortEntries(all)
	assert.Equal(t, all, c.Top(100))
	assert.Equal(t, Entry{"f", 1}, all[len(all)-1])
}

func TestStats(t *testing.T) {
	c := newCounter(t, 10, hashkey.FNV64)

	for i := 0; i < 100; i++ {
		c.Add([]byte(fmt.Sprintf("word-%d", i%40)))
	}

	s := c.Stats()
	assert.Equal(t, 100, s.Total)
	assert.Equal(t, 40, s.Words)
	assert.Equal(t, 40, s.Keys)
	assert.Equal(t, 90, s.Buckets)
	assert.InDelta(t, 40.0/90.0, s.LoadFactor, 1e-9)
	assert.GreaterOrEqual(t, s.LongestChain, 1)
	assert.Less(t, s.EmptyBuckets, s.Buckets)
}
