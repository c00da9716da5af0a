// Package hashkey turns byte buffers into uint64 table keys.
package hashkey

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

type Func func(buf []byte) uint64

const (
	fnvOffset64 = 0xcbf29ce484222325
	fnvPrime64  = 0x100000001b3
)

var funcs = map[string]Func{
	"fnv":    FNV64,
	"xxhash": XX64,
}

// FNV64 is the 64-bit FNV-1a hash of buf.
func FNV64(buf []byte) uint64 {
	h := uint64(fnvOffset64)

	for _, c := range buf {
		h ^= uint64(c)
		h *= fnvPrime64
	}

	return h
}

func XX64(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}

func String(fn Func, s string) uint64 {
	return fn([]byte(s))
}

// ByName looks up a routine by the name used in configuration files.
func ByName(name string) (fn Func, err error) {
	fn, ok := funcs[name]

	if !ok {
		return nil, fmt.Errorf("unknown hash %q (available: %v)", name, Names())
	}

	return
}

func Names() (names []string) {
	for name := range funcs {
		names = append(names, name)
	}

	sort.Strings(names)
	return
}
