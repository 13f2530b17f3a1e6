/*
Package strtable implements the open-addressed, byte-string-keyed table
shared by the xmer/ymer indexer and the set-cover engine.

Bucket placement uses murmur3 (github.com/spaolacci/murmur3), a fast
non-cryptographic hash well suited to scattering short biological strings
across a fixed-size bucket array.

The table is the sole owner of its entries: Add copies the key in by
value (Go strings are already immutable), Delete transfers the stored
value to the caller, Find returns a borrowed view, and Items returns a
stable snapshot. Mutating the table while holding a snapshot is
undefined, as documented at each call site that needs it.
*/
package strtable

import (
	"sort"

	"github.com/spaolacci/murmur3"
)

type entry struct {
	key      string
	value    any
	occupied bool
	deleted  bool
	seq      int64
}

// Table is an open-addressed hash table from string to arbitrary value,
// with linear probing and insertion-order iteration. Insertion order is
// tracked per slot rather than in a side list, so a slot reclaimed from a
// tombstone after a Delete never produces a duplicate entry.
type Table struct {
	slots   []entry
	count   int
	nextSeq int64
}

// Entry is a borrowed (key, value) pair returned by Items.
type Entry struct {
	Key   string
	Value any
}

// New returns a Table sized for roughly n entries at load factor < 0.75.
func New(n int) *Table {
	size := nextPow2(int(float64(n)/0.7) + 1)
	if size < 16 {
		size = 16
	}
	return &Table{slots: make([]entry, size)}
}

func nextPow2(n int) int {
	p := 16
	for p < n {
		p <<= 1
	}
	return p
}

func (t *Table) bucket(key string) int {
	h := murmur3.Sum64([]byte(key))
	return int(h & uint64(len(t.slots)-1))
}

// Add inserts key/value. If key is already present, the first-inserted
// value is kept and Add reports false ("not inserted").
func (t *Table) Add(key string, value any) bool {
	if float64(t.count+1) > 0.75*float64(len(t.slots)) {
		t.grow()
	}

	idx, found := t.probe(key)
	if found {
		return false
	}
	t.slots[idx] = entry{key: key, value: value, occupied: true, seq: t.nextSeq}
	t.nextSeq++
	t.count++
	return true
}

// probe walks the open-addressing chain for key, returning either the
// slot it occupies (found=true) or the first empty/tombstoned slot where
// it would be inserted (found=false).
func (t *Table) probe(key string) (int, bool) {
	n := len(t.slots)
	start := t.bucket(key)
	firstFree := -1
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		s := t.slots[idx]
		if !s.occupied {
			if s.deleted {
				if firstFree < 0 {
					firstFree = idx
				}
				continue
			}
			if firstFree >= 0 {
				return firstFree, false
			}
			return idx, false
		}
		if s.key == key {
			return idx, true
		}
	}
	if firstFree >= 0 {
		return firstFree, false
	}
	panic("strtable: table full")
}

// grow rehashes every live slot into a table of twice the size, carrying
// each entry's original seq across so insertion order survives a resize.
// count and nextSeq are untouched: grow neither inserts nor deletes.
func (t *Table) grow() {
	old := t.slots
	t.slots = make([]entry, len(old)*2)
	for _, s := range old {
		if s.occupied {
			idx, _ := t.probe(s.key)
			t.slots[idx] = s
		}
	}
}

// Find returns the value for key, or (nil, false) if absent.
func (t *Table) Find(key string) (any, bool) {
	idx, found := t.probe(key)
	if !found {
		return nil, false
	}
	return t.slots[idx].value, true
}

// Delete removes key's entry and returns its value, transferring
// ownership to the caller.
func (t *Table) Delete(key string) (any, bool) {
	idx, found := t.probe(key)
	if !found {
		return nil, false
	}
	value := t.slots[idx].value
	t.slots[idx] = entry{deleted: true}
	t.count--
	return value, true
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	return t.count
}

// Items returns a stable-ordered snapshot of the table's current entries,
// in insertion order. Mutating the table while iterating a previously
// returned snapshot is undefined; callers must snapshot first.
func (t *Table) Items() []Entry {
	type ordered struct {
		seq   int64
		entry Entry
	}
	live := make([]ordered, 0, t.count)
	for _, s := range t.slots {
		if s.occupied {
			live = append(live, ordered{seq: s.seq, entry: Entry{Key: s.key, Value: s.value}})
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].seq < live[j].seq })

	out := make([]Entry, len(live))
	for i, o := range live {
		out[i] = o.entry
	}
	return out
}
