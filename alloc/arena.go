package alloc

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/take/errors"
)

// Arena is an in-memory tracking allocator with double-free detection.
type Arena struct {
	entries   []entry
	freeList  []uint32
	observers []Observer
	stats     Stats
	mu        sync.Mutex
	closed    bool
}

type entry struct {
	layout Layout
	valid  bool
}

// NewArena creates a new tracking arena.
func NewArena() *Arena {
	return &Arena{
		entries:  make([]entry, 0, 64),
		freeList: make([]uint32, 0, 16),
	}
}

// Alloc records a live allocation and returns its block.
func (a *Arena) Alloc(layout Layout) Block {
	a.mu.Lock()

	if a.closed {
		a.mu.Unlock()
		panic(errors.Closed("alloc.Arena.Alloc"))
	}

	e := entry{layout: layout, valid: true}

	var id uint32
	if len(a.freeList) > 0 {
		id = a.freeList[len(a.freeList)-1]
		a.freeList = a.freeList[:len(a.freeList)-1]
		a.entries[id-1] = e
	} else {
		a.entries = append(a.entries, e)
		id = uint32(len(a.entries))
	}

	a.stats.Allocs++
	a.stats.LiveBlocks++
	a.stats.LiveBytes += layout.Size
	a.mu.Unlock()

	b := Block{id: id, layout: layout}
	debugf("alloc", zap.Uint32("block", id), zap.Uintptr("size", layout.Size), zap.Uintptr("align", layout.Align))
	a.notify(Event{Type: EventAlloc, Block: b})
	return b
}

// Free reclaims a block issued by this arena.
//
// Panics with KindForeignBlock for blocks the arena never issued and
// KindDoubleFree for blocks already reclaimed.
func (a *Arena) Free(block Block) {
	a.mu.Lock()

	if block.id == 0 || int(block.id) > len(a.entries) {
		a.mu.Unlock()
		panic(errors.ForeignBlock("alloc.Arena.Free", "block was not issued by this arena"))
	}

	e := &a.entries[block.id-1]
	if !e.valid {
		a.mu.Unlock()
		panic(errors.DoubleFree("alloc.Arena.Free", "block already reclaimed"))
	}

	e.valid = false
	a.freeList = append(a.freeList, block.id)

	a.stats.Frees++
	a.stats.LiveBlocks--
	a.stats.LiveBytes -= e.layout.Size
	a.mu.Unlock()

	debugf("free", zap.Uint32("block", block.id), zap.Uintptr("size", block.layout.Size))
	a.notify(Event{Type: EventFree, Block: block})
}

// Stats returns a snapshot of the arena's running totals.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Subscribe adds an observer for allocation events.
func (a *Arena) Subscribe(o Observer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.observers = append(a.observers, o)
}

// Unsubscribe removes an observer.
func (a *Arena) Unsubscribe(o Observer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, obs := range a.observers {
		if obs == o {
			a.observers = append(a.observers[:i], a.observers[i+1:]...)
			return
		}
	}
}

// Close marks the arena closed. Further Alloc calls panic; outstanding
// blocks remain counted so leak checks stay meaningful.
func (a *Arena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	return nil
}

func (a *Arena) notify(e Event) {
	a.mu.Lock()
	obs := make([]Observer, len(a.observers))
	copy(obs, a.observers)
	a.mu.Unlock()

	for _, o := range obs {
		o.OnAllocEvent(e)
	}
}
