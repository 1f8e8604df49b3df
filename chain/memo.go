package chain

import (
	"fmt"
	"sync"

	"github.com/StantStantov/rps/swamp/bools"
	"github.com/StantStantov/rps/swamp/collections/sparsemap"

	"github.com/katalvlaran/padchain/keypad"
)

// pressMemo stores the press count of every (from, to, depth) step on the
// directional keypad. Slots are dense: depth*width*width + from*width + to.
type pressMemo struct {
	mu     sync.Mutex
	index  map[keypad.Key]uint64
	width  uint64
	values *sparsemap.SparseMap[uint64, uint64]
}

func newPressMemo(keys []keypad.Key, maxDepth int) *pressMemo {
	m := &pressMemo{
		index: make(map[keypad.Key]uint64, len(keys)),
		width: uint64(len(keys)),
	}
	for i, k := range keys {
		m.index[k] = uint64(i)
	}
	capacity := m.width * m.width * uint64(maxDepth+1)
	m.values = sparsemap.NewSparseMap[uint64, uint64](capacity)

	return m
}

func (m *pressMemo) slot(from, to keypad.Key, depth int) uint64 {
	return (uint64(depth)*m.width+m.index[from])*m.width + m.index[to]
}

func (m *pressMemo) get(from, to keypad.Key, depth int) (uint64, bool) {
	key := m.slot(from, to, depth)

	m.mu.Lock()
	defer m.mu.Unlock()
	values, found := sparsemap.GetFromSparseMap(m.values, []uint64{0}, []bool{false}, key)

	return values[0], found[0]
}

func (m *pressMemo) put(from, to keypad.Key, depth int, n uint64) {
	key := m.slot(from, to, depth)

	m.mu.Lock()
	defer m.mu.Unlock()
	saved := sparsemap.SaveIntoSparseMap(m.values, []bool{false}, []uint64{key}, []uint64{n})
	if bools.AnyFalse(saved...) {
		panic(fmt.Sprintf("chain: memo slot %d out of range", key))
	}
}
