package hashtable

// KeyValue is one table entry. Each entry lives on the heap and is referenced
// from the node of the chain that holds it.
type KeyValue[V any] struct {
	Key   uint64
	Value V
}
