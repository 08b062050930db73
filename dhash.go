package dhash

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotDeleted
	slotOccupied
)

type entry struct {
	key   string
	value string
}

// slot is empty, a tombstone, or holds an entry. Only occupied slots carry a
// meaningful entry.
type slot struct {
	state slotState
	entry entry
}

// Table is a string to string hash table using open addressing with double
// hashing. Deleted slots are kept as tombstones so that probe chains passing
// through them stay intact.
//
// A Table is not safe for concurrent use; callers must serialize access.
type Table struct {
	slots      []slot
	count      int
	tombstones int

	hasher        Hasher
	logger        *zap.Logger
	maxLoadFactor float64
	destroyed     bool
}

// Stats is a snapshot of the table occupancy.
type Stats struct {
	Capacity   int
	Count      int
	Tombstones int
	LoadFactor float64
}

// New creates an empty table. Without options it has DefaultCapacity slots,
// uses the reference hash pair and never resizes.
func New(opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, errors.Wrapf(err, "capacity=%d load=%v", o.capacity, o.maxLoadFactor)
	}

	return &Table{
		slots:         make([]slot, o.capacity),
		hasher:        o.hasher,
		logger:        o.logger,
		maxLoadFactor: o.maxLoadFactor,
	}, nil
}

// Insert stores value under key, replacing the value of an existing key.
// It returns an error wrapping ErrTableFull when no usable slot is reachable,
// in which case the table is left unchanged.
func (t *Table) Insert(key, value string) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if key == "" {
		return ErrEmptyKey
	}
	return t.insertWithRetry(key, value, 0)
}

func (t *Table) insertWithRetry(key, value string, retryCount int) error {
	idx, found, ok := t.findSlot(key)
	if found {
		t.slots[idx].entry.value = value
		return nil
	}

	if t.resizable() && retryCount < maxResizeRetries && (!ok || t.overLoaded()) {
		if err := t.grow(); err != nil {
			return err
		}
		return t.insertWithRetry(key, value, retryCount+1)
	}

	if !ok {
		t.logger.Debug("insert rejected, table full",
			zap.String("key", key),
			zap.Int("capacity", len(t.slots)),
			zap.Int("count", t.count),
			zap.Int("tombstones", t.tombstones))
		return errors.Wrapf(ErrTableFull, "key %q, capacity %d", key, len(t.slots))
	}

	if t.slots[idx].state == slotDeleted {
		t.tombstones--
	}
	t.slots[idx] = slot{state: slotOccupied, entry: entry{key: key, value: value}}
	t.count++
	return nil
}

// findSlot walks the probe sequence of key. If the key is present it returns
// its index with found set. Otherwise it returns the slot a new entry should go
// to: the first tombstone on the path, or else the empty slot that ended the
// chain. ok is false when neither exists within capacity attempts.
func (t *Table) findSlot(key string) (idx int, found, ok bool) {
	capacity := len(t.slots)
	a, b := t.hasher.Hash(key, capacity)
	firstDeleted := -1
	for attempt := 0; attempt < capacity; attempt++ {
		i := combine(a, b, capacity, attempt)
		s := &t.slots[i]
		switch s.state {
		case slotEmpty:
			if firstDeleted >= 0 {
				return firstDeleted, false, true
			}
			return i, false, true
		case slotDeleted:
			if firstDeleted < 0 {
				firstDeleted = i
			}
		case slotOccupied:
			if s.entry.key == key {
				return i, true, true
			}
		}
	}
	if firstDeleted >= 0 {
		return firstDeleted, false, true
	}
	return -1, false, false
}

// lookup returns the index holding key, or -1. Tombstones are skipped and an
// empty slot ends the search.
func (t *Table) lookup(key string) int {
	capacity := len(t.slots)
	if capacity == 0 || key == "" {
		return -1
	}
	a, b := t.hasher.Hash(key, capacity)
	for attempt := 0; attempt < capacity; attempt++ {
		i := combine(a, b, capacity, attempt)
		switch s := &t.slots[i]; s.state {
		case slotEmpty:
			return -1
		case slotOccupied:
			if s.entry.key == key {
				return i
			}
		}
	}
	return -1
}

// Search returns the value stored under key.
func (t *Table) Search(key string) (string, bool) {
	i := t.lookup(key)
	if i < 0 {
		return "", false
	}
	return t.slots[i].entry.value, true
}

// Delete removes key, leaving a tombstone in its slot. Deleting an absent key
// is a no-op.
func (t *Table) Delete(key string) {
	i := t.lookup(key)
	if i < 0 {
		return
	}
	t.slots[i] = slot{state: slotDeleted}
	t.count--
	t.tombstones++
}

// Destroy releases every entry and the slot array. The table reports itself
// empty afterwards and rejects inserts.
func (t *Table) Destroy() {
	for i := range t.slots {
		t.slots[i] = slot{}
	}
	t.slots = nil
	t.count = 0
	t.tombstones = 0
	t.destroyed = true
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return t.count
}

// Cap returns the number of slots.
func (t *Table) Cap() int {
	return len(t.slots)
}

func (t *Table) Stats() Stats {
	st := Stats{
		Capacity:   len(t.slots),
		Count:      t.count,
		Tombstones: t.tombstones,
	}
	if st.Capacity > 0 {
		st.LoadFactor = float64(t.count) / float64(st.Capacity)
	}
	return st
}
