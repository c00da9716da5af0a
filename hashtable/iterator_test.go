package hashtable

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iterKeys[V any](iter *Iterator[V]) (keys []uint64) {
	for ok := iter.IsValid(); ok; ok = iter.Next() {
		keys = append(keys, iter.Get().Key)
	}

	return
}

func bucketKeys[V any](tbl *Table[V]) (keys []uint64) {
	for _, bucket := range tbl.buckets {
		for kv := range bucket.Values() {
			keys = append(keys, kv.Key)
		}
	}

	return
}

func TestIterator(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		tbl := newTable[int](t, 8)
		iter := tbl.Iterator()

		assert.False(t, iter.IsValid())
		assert.False(t, iter.Next())
		assert.False(t, iter.Prev())
		assert.PanicsWithValue(t, ErrInvalidIterator, func() { iter.Get() })
		assert.PanicsWithValue(t, ErrInvalidIterator, func() { iter.Remove() })
	})

	t.Run("SkipsEmptyBuckets", func(t *testing.T) {
		tbl := newTable[int](t, 10)

		// Buckets 3 and 7 only, two pairs in 7.
		for _, k := range []uint64{7, 3, 17} {
			tbl.Insert(k, int(k))
		}

		iter := tbl.Iterator()
		require.True(t, iter.IsValid())
		assert.Equal(t, KeyValue[int]{Key: 3, Value: 3}, iter.Get())

		assert.Equal(t, []uint64{3, 7, 17}, iterKeys(iter))
		assert.False(t, iter.IsValid())
		assert.False(t, iter.Next())
		assert.False(t, iter.IsValid())
	})

	t.Run("VisitsEveryPairOnce", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(3))
		tbl := newTable[int](t, 5)

		for i := 0; i < 1000; i++ {
			tbl.Insert(rnd.Uint64(), i)
		}

		keys := iterKeys(tbl.Iterator())
		require.Len(t, keys, tbl.Len())
		assert.Equal(t, bucketKeys(tbl), keys)

		slices.Sort(keys)
		assert.Len(t, slices.Compact(keys), tbl.Len())
	})

	t.Run("Backward", func(t *testing.T) {
		tbl := newTable[int](t, 10)

		for _, k := range []uint64{1, 11, 4, 9, 19, 29} {
			tbl.Insert(k, int(k))
		}

		iter := tbl.Iterator()
		forward := iterKeys(tbl.Iterator())

		for iter.Next() {
			if iter.Get().Key == 29 {
				break
			}
		}

		var backward []uint64

		for ok := iter.IsValid(); ok; ok = iter.Prev() {
			backward = append(backward, iter.Get().Key)
		}

		slices.Reverse(backward)
		assert.Equal(t, forward, backward)
		assert.False(t, iter.IsValid())
		assert.False(t, iter.Next())
	})

	t.Run("NextThenPrev", func(t *testing.T) {
		tbl := newTable[int](t, 6)
		tbl.Insert(1, 1)
		tbl.Insert(4, 4)

		iter := tbl.Iterator()
		require.True(t, iter.Next())
		assert.Equal(t, uint64(4), iter.Get().Key)
		require.True(t, iter.Prev())
		assert.Equal(t, uint64(1), iter.Get().Key)
	})
}

func TestIteratorRemove(t *testing.T) {
	t.Run("RemoveAll", func(t *testing.T) {
		tbl := newTable[int](t, 4)

		for k := uint64(0); k < 11; k++ {
			tbl.Insert(k, int(k))
		}

		want := iterKeys(tbl.Iterator())
		iter := tbl.Iterator()
		var got []uint64

		for iter.IsValid() {
			kv := iter.Remove()
			assert.Equal(t, int(kv.Key), kv.Value)
			got = append(got, kv.Key)
			requireConsistent(t, tbl)
		}

		assert.Equal(t, want, got)
		assert.Equal(t, 0, tbl.Len())
	})

	t.Run("RemoveSome", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(9))
		tbl := newTable[int](t, 3)

		for i := 0; i < 500; i++ {
			tbl.Insert(uint64(rnd.Intn(10000)), i)
		}

		before := iterKeys(tbl.Iterator())
		var visited, kept []uint64
		iter := tbl.Iterator()

		for iter.IsValid() {
			key := iter.Get().Key
			visited = append(visited, key)

			if key%3 == 0 {
				kv := iter.Remove()
				require.Equal(t, key, kv.Key)
				continue
			}

			kept = append(kept, key)
			iter.Next()
		}

		assert.Equal(t, before, visited)
		assert.Equal(t, len(kept), tbl.Len())
		assert.Equal(t, kept, iterKeys(tbl.Iterator()))

		for _, k := range before {
			_, ok := tbl.Find(k)
			assert.Equal(t, k%3 != 0, ok)
		}

		requireConsistent(t, tbl)
	})

	t.Run("LastPair", func(t *testing.T) {
		tbl := newTable[string](t, 4)
		tbl.Insert(2, "two")

		iter := tbl.Iterator()
		kv := iter.Remove()

		assert.Equal(t, KeyValue[string]{Key: 2, Value: "two"}, kv)
		assert.False(t, iter.IsValid())
		assert.Equal(t, 0, tbl.Len())
	})
}

func BenchmarkIterate(b *testing.B) {
	tbl := newTable[int](b, 1)

	for i := 0; i < 1<<16; i++ {
		tbl.Insert(uint64(i), i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		iter := tbl.Iterator()

		for ok := iter.IsValid(); ok; ok = iter.Next() {
			_ = iter.Get()
		}
	}
}
