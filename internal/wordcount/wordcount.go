// Package wordcount counts word frequencies in a hashtable keyed by the hash
// of each word. Words whose hashes collide share one entry, a short list.
package wordcount

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/webbmaffian/go-chain/hashkey"
	"github.com/webbmaffian/go-chain/hashtable"
	"github.com/webbmaffian/go-chain/linkedlist"
	"golang.org/x/text/cases"
)

type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type words = *linkedlist.List[*Entry]

type Counter struct {
	table    *hashtable.Table[words]
	hash     hashkey.Func
	fold     cases.Caser
	total    int
	distinct int
}

func New(buckets int, hash hashkey.Func) (c *Counter, err error) {
	c = &Counter{
		hash: hash,
		fold: cases.Fold(),
	}

	if c.table, err = hashtable.New[words](buckets); err != nil {
		return nil, err
	}

	return
}

// Total is the number of words added, Distinct the number of different ones.
func (c *Counter) Total() int {
	return c.total
}

func (c *Counter) Distinct() int {
	return c.distinct
}

// AddText splits text on anything that is not a letter or digit, case folds
// every word and adds it. Returns the number of words found.
func (c *Counter) AddText(text []byte) (n int) {
	for _, word := range bytes.FieldsFunc(text, isSeparator) {
		c.Add(c.fold.Bytes(word))
		n++
	}

	return
}

// Add counts word as is.
func (c *Counter) Add(word []byte) {
	c.total++
	key := c.hash(word)

	if kv, ok := c.table.Find(key); ok {
		for e := range kv.Value.Values() {
			if e.Word == string(word) {
				e.Count++
				return
			}
		}

		kv.Value.Append(&Entry{Word: string(word), Count: 1})
		c.distinct++
		return
	}

	list := linkedlist.New[*Entry]()
	list.Append(&Entry{Word: string(word), Count: 1})
	c.table.Insert(key, list)
	c.distinct++
}

func (c *Counter) Count(word string) int {
	word = c.fold.String(word)
	kv, ok := c.table.Find(hashkey.String(c.hash, word))

	if !ok {
		return 0
	}

	for e := range kv.Value.Values() {
		if e.Word == word {
			return e.Count
		}
	}

	return 0
}

// Prune drops every word seen fewer than minCount times, and every table entry
// left without words. Returns the number of words dropped.
func (c *Counter) Prune(minCount int) (removed int) {
	iter := c.table.Iterator()

	for iter.IsValid() {
		list := iter.Get().Value
		cur := list.Iterator()

		for cur.IsValid() {
			if cur.Get().Count >= minCount {
				cur.Next()
				continue
			}

			removed++

			if !cur.Remove(nil) {
				break
			}
		}

		if list.Len() == 0 {
			iter.Remove()
		} else {
			iter.Next()
		}
	}

	c.distinct -= removed
	return
}

// Top returns the n most frequent words, most frequent first. Ties are broken
// alphabetically.
func (c *Counter) Top(n int) []Entry {
	if n <= 0 {
		return nil
	}

	top := linkedlist.New[*Entry]()

	for _, list := range c.table.All() {
		for e := range list.Values() {
			if top.Len() == n {
				if last, _ := top.Back(); compareEntries(e, last) <= 0 {
					continue
				}

				top.Slice()
			}

			top.Append(e)
			top.Sort(false, compareEntries)
		}
	}

	res := make([]Entry, 0, top.Len())

	for e := range top.Values() {
		res = append(res, *e)
	}

	return res
}

// Words returns every counted word in table order.
func (c *Counter) Words() (res []Entry) {
	for _, list := range c.table.All() {
		for e := range list.Values() {
			res = append(res, *e)
		}
	}

	return
}

func (c *Counter) Stats() (s Stats) {
	s.Buckets = c.table.Buckets()
	s.Keys = c.table.Len()
	s.Words = c.distinct
	s.Total = c.total
	s.LoadFactor = float64(s.Keys) / float64(s.Buckets)

	for i := 0; i < s.Buckets; i++ {
		n := c.table.BucketLen(i)

		if n == 0 {
			s.EmptyBuckets++
		}

		s.LongestChain = max(s.LongestChain, n)
	}

	for _, list := range c.table.All() {
		if list.Len() > 1 {
			s.Collisions += list.Len() - 1
		}
	}

	return
}

// Close drops every entry. The counter must not be used afterwards.
func (c *Counter) Close() {
	c.table.Free(func(list words) {
		list.Free(nil)
	})
}

// compareEntries orders by count, then by reverse word so that a descending
// sort lists ties alphabetically.
func compareEntries(a, b *Entry) int {
	if res := cmp.Compare(a.Count, b.Count); res != 0 {
		return res
	}

	return strings.Compare(b.Word, a.Word)
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// SortEntries orders entries the way Top does.
func SortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		return compareEntries(&b, &a)
	})
}
