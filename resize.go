package dhash

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// maxResizeRetries bounds how many times a single Insert may grow the table.
const maxResizeRetries = 3

func (t *Table) resizable() bool {
	return t.maxLoadFactor > 0
}

// overLoaded reports whether one more used slot would exceed the load factor.
// Tombstones count as used since they lengthen probe chains.
func (t *Table) overLoaded() bool {
	used := t.count + t.tombstones + 1
	return float64(used)/float64(len(t.slots)) > t.maxLoadFactor
}

// grow rehashes every entry into a table of the next prime at least twice the
// current capacity. Tombstones are dropped. If some entry finds no empty slot
// along its probe sequence, the next larger prime is tried. The table is left
// untouched on failure.
func (t *Table) grow() error {
	oldCap := len(t.slots)
	newCap := nextPrime(2 * oldCap)

	for try := 0; try <= maxResizeRetries; try++ {
		if slots, ok := rehash(t.slots, t.hasher, newCap); ok {
			t.logger.Info("resized table",
				zap.Int("from", oldCap),
				zap.Int("to", newCap),
				zap.Int("count", t.count),
				zap.Int("droppedTombstones", t.tombstones))
			t.slots = slots
			t.tombstones = 0
			return nil
		}
		newCap = nextPrime(newCap + 1)
	}
	return errors.Wrapf(ErrTableFull, "rehash from capacity %d", oldCap)
}

func rehash(old []slot, h Hasher, capacity int) ([]slot, bool) {
	slots := make([]slot, capacity)
	for _, s := range old {
		if s.state != slotOccupied {
			continue
		}
		if !place(slots, h, s.entry) {
			return nil, false
		}
	}
	return slots, true
}

// place installs e in the first empty slot of its probe sequence.
func place(slots []slot, h Hasher, e entry) bool {
	capacity := len(slots)
	a, b := h.Hash(e.key, capacity)
	for attempt := 0; attempt < capacity; attempt++ {
		i := combine(a, b, capacity, attempt)
		if slots[i].state == slotEmpty {
			slots[i] = slot{state: slotOccupied, entry: e}
			return true
		}
	}
	return false
}

func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
