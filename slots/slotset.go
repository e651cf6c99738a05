package slots

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// slotSet is a fixed-size open-addressing set of slot ids. Its capacity is the
// next power of two >= the number of ids it will ever hold. Id 0 marks an
// empty bucket; slot ids start at 1.
type slotSet struct {
	mask    uint64
	buckets []uint64
}

func newSlotSet(n int) slotSet {
	size := 1
	for size < n {
		size <<= 1
	}
	return slotSet{mask: uint64(size - 1), buckets: make([]uint64, size)}
}

func spread(id uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], id)
	return xxhash.Sum64(b[:])
}

// insert reports false when id is already present.
func (t *slotSet) insert(id uint64) bool {
	i := spread(id) & t.mask
	for probes := 0; probes < len(t.buckets); probes++ {
		switch t.buckets[i] {
		case 0:
			t.buckets[i] = id
			return true
		case id:
			return false
		}
		i = (i + 1) & t.mask
	}
	return false
}

func (t *slotSet) contains(id uint64) bool {
	i := spread(id) & t.mask
	for probes := 0; probes < len(t.buckets) && t.buckets[i] != 0; probes++ {
		if t.buckets[i] == id {
			return true
		}
		i = (i + 1) & t.mask
	}
	return false
}
