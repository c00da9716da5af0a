package hashtable

import "github.com/webbmaffian/go-chain/linkedlist"

const invalidBucket = -1

// Iterator is a flat cursor over every pair of a Table. Only its own Remove
// may modify the table while it is in use.
type Iterator[V any] struct {
	table  *Table[V]
	chain  *linkedlist.Iterator[*KeyValue[V]]
	bucket int
}

// Iterator returns a cursor on the first pair of the first non-empty bucket,
// or an invalid cursor if the table is empty.
func (t *Table[V]) Iterator() *Iterator[V] {
	iter := &Iterator[V]{
		table:  t,
		bucket: invalidBucket,
	}

	if t.length == 0 {
		return iter
	}

	for i, bucket := range t.buckets {
		if bucket.Len() > 0 {
			iter.bucket = i
			iter.chain = bucket.Iterator()
			break
		}
	}

	return iter
}

func (iter *Iterator[V]) IsValid() bool {
	return iter.bucket != invalidBucket
}

// Next moves to the following pair, crossing into later buckets as needed.
// Once it has returned false the iterator stays invalid.
func (iter *Iterator[V]) Next() bool {
	if !iter.IsValid() {
		return false
	}

	if iter.chain.Next() {
		return true
	}

	for iter.bucket++; iter.bucket < len(iter.table.buckets); iter.bucket++ {
		if bucket := iter.table.buckets[iter.bucket]; bucket.Len() > 0 {
			iter.chain = bucket.Iterator()
			return true
		}
	}

	iter.invalidate()
	return false
}

// Prev moves to the preceding pair, crossing into earlier buckets as needed.
// Stepping back from the first pair invalidates the iterator.
func (iter *Iterator[V]) Prev() bool {
	if !iter.IsValid() {
		return false
	}

	if iter.chain.Prev() {
		return true
	}

	for iter.bucket--; iter.bucket >= 0; iter.bucket-- {
		if bucket := iter.table.buckets[iter.bucket]; bucket.Len() > 0 {
			iter.chain = bucket.IteratorAtTail()
			return true
		}
	}

	iter.invalidate()
	return false
}

func (iter *Iterator[V]) Get() KeyValue[V] {
	if !iter.IsValid() {
		panic(ErrInvalidIterator)
	}

	return *iter.chain.Get()
}

// Remove drops the current pair from the table, hands it to the caller and
// moves the iterator to the following pair.
func (iter *Iterator[V]) Remove() KeyValue[V] {
	if !iter.IsValid() {
		panic(ErrInvalidIterator)
	}

	cur := iter.chain.Get()

	// The chain cursor must leave the node before the table frees it.
	iter.Next()

	if kv, ok := iter.table.remove(cur.Key); !ok || kv != cur {
		panic(ErrCorrupted)
	}

	return *cur
}

func (iter *Iterator[V]) invalidate() {
	iter.bucket = invalidBucket
	iter.chain = nil
}
