// Package hashtable is a uint64-keyed map made of an array of buckets, each
// bucket being a linkedlist chain of key/value pairs.
//
// A Table is not safe for concurrent use. Keys are taken as they are: callers
// that start from bytes derive keys with a routine such as hashkey.FNV64.
package hashtable

import (
	"iter"

	"github.com/webbmaffian/go-chain/linkedlist"
)

const (
	// LoadFactor is the elements-per-bucket ratio at which an insert grows
	// the table.
	LoadFactor = 3

	// GrowthFactor multiplies the bucket count on every resize.
	GrowthFactor = 9
)

type Table[V any] struct {
	buckets []*linkedlist.List[*KeyValue[V]]
	length  int
}

func New[V any](buckets int) (t *Table[V], err error) {
	if buckets <= 0 {
		return nil, ErrInvalidBucketCount
	}

	t = &Table[V]{
		buckets: make([]*linkedlist.List[*KeyValue[V]], buckets),
	}

	for i := range t.buckets {
		t.buckets[i] = linkedlist.New[*KeyValue[V]]()
	}

	return
}

// Free releases every value and leaves the table without buckets. The table
// must not be used afterwards.
func (t *Table[V]) Free(release func(V)) {
	for i, bucket := range t.buckets {
		for {
			kv, ok := bucket.Pop()

			if !ok {
				break
			}

			if release != nil {
				release(kv.Value)
			}
		}

		bucket.Free(nil)
		t.buckets[i] = nil
	}

	t.buckets = nil
	t.length = 0
}

func (t *Table[V]) Len() int {
	return t.length
}

func (t *Table[V]) Buckets() int {
	return len(t.buckets)
}

// BucketLen returns the chain length of bucket i.
func (t *Table[V]) BucketLen(i int) int {
	return t.buckets[i].Len()
}

func (t *Table[V]) BucketIndex(key uint64) int {
	return int(key % uint64(len(t.buckets)))
}

// Insert stores value under key. If the key was already present its previous
// pair is returned with replaced set, and the element count is unchanged.
func (t *Table[V]) Insert(key uint64, value V) (old KeyValue[V], replaced bool) {
	t.maybeResize()

	bucket := t.buckets[t.BucketIndex(key)]

	if cur := findKey(bucket, key); cur.IsValid() {
		kv := cur.Get()
		old = *kv
		kv.Value = value
		return old, true
	}

	bucket.Append(&KeyValue[V]{Key: key, Value: value})
	t.length++
	return
}

func (t *Table[V]) Find(key uint64) (kv KeyValue[V], ok bool) {
	cur := findKey(t.buckets[t.BucketIndex(key)], key)

	if !cur.IsValid() {
		return
	}

	return *cur.Get(), true
}

// Remove drops the pair stored under key and hands it to the caller.
func (t *Table[V]) Remove(key uint64) (kv KeyValue[V], ok bool) {
	p, ok := t.remove(key)

	if ok {
		kv = *p
	}

	return
}

func (t *Table[V]) remove(key uint64) (kv *KeyValue[V], ok bool) {
	cur := findKey(t.buckets[t.BucketIndex(key)], key)

	if !cur.IsValid() {
		return
	}

	kv, ok = cur.Get(), true
	cur.Remove(nil)
	t.length--
	return
}

// All yields every key and value in bucket order. The table must not be
// modified while ranging.
func (t *Table[V]) All() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		for _, bucket := range t.buckets {
			for kv := range bucket.Values() {
				if !yield(kv.Key, kv.Value) {
					return
				}
			}
		}
	}
}

// maybeResize grows the bucket array by GrowthFactor once the load factor
// reaches LoadFactor. Pairs are moved, not copied or released.
func (t *Table[V]) maybeResize() {
	if t.length < LoadFactor*len(t.buckets) {
		return
	}

	grown, err := New[V](len(t.buckets) * GrowthFactor)

	if err != nil {
		panic(err)
	}

	for it := t.Iterator(); it.IsValid(); it.Next() {
		grown.append(it.chain.Get())
	}

	t.buckets, grown.buckets = grown.buckets, t.buckets
	t.length, grown.length = grown.length, t.length
	grown.Free(nil)
}

// append links an existing pair into its bucket. The key must not be present.
func (t *Table[V]) append(kv *KeyValue[V]) {
	t.buckets[t.BucketIndex(kv.Key)].Append(kv)
	t.length++
}
