package hashtable

import "github.com/webbmaffian/go-chain/linkedlist"

// findKey returns a cursor on the pair holding key, or an invalid cursor when
// the chain has no such key.
func findKey[V any](bucket *linkedlist.List[*KeyValue[V]], key uint64) *linkedlist.Iterator[*KeyValue[V]] {
	cur := bucket.Iterator()

	for ok := cur.IsValid(); ok; ok = cur.Next() {
		if cur.Get().Key == key {
			break
		}
	}

	return cur
}
