package alloc

import (
	"testing"

	"github.com/wippyai/take/errors"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnAllocEvent(e Event) {
	o.events = append(o.events, e)
}

func TestLayoutOf(t *testing.T) {
	l := LayoutOf[uint64]()
	if l.Size != 8 {
		t.Errorf("Size = %d, want 8", l.Size)
	}
	if l.Align != 8 {
		t.Errorf("Align = %d, want 8", l.Align)
	}

	s := LayoutOfSlice[byte](32)
	if s.Size != 32 {
		t.Errorf("slice Size = %d, want 32", s.Size)
	}
	if s.Align != 1 {
		t.Errorf("slice Align = %d, want 1", s.Align)
	}
}

func TestArenaAllocFree(t *testing.T) {
	a := NewArena()

	b := a.Alloc(Layout{Size: 16, Align: 8})
	if !b.Valid() {
		t.Fatal("expected valid block")
	}
	if b.Layout().Size != 16 {
		t.Errorf("Layout().Size = %d, want 16", b.Layout().Size)
	}

	st := a.Stats()
	if st.Allocs != 1 || st.LiveBlocks != 1 || st.LiveBytes != 16 {
		t.Fatalf("Stats after alloc = %+v", st)
	}

	a.Free(b)
	st = a.Stats()
	if st.Frees != 1 || st.LiveBlocks != 0 || st.LiveBytes != 0 {
		t.Fatalf("Stats after free = %+v", st)
	}
}

func TestArenaReusesFreedSlots(t *testing.T) {
	a := NewArena()

	b1 := a.Alloc(Layout{Size: 8, Align: 8})
	a.Free(b1)
	b2 := a.Alloc(Layout{Size: 4, Align: 4})

	if b2.id != b1.id {
		t.Errorf("expected freed slot reuse, got id %d then %d", b1.id, b2.id)
	}
	if a.Stats().LiveBytes != 4 {
		t.Errorf("LiveBytes = %d, want 4", a.Stats().LiveBytes)
	}
}

func TestArenaDoubleFreePanics(t *testing.T) {
	a := NewArena()
	b := a.Alloc(Layout{Size: 8, Align: 8})
	a.Free(b)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on double free")
		}
		err, ok := r.(error)
		if !ok || !errors.IsKind(err, errors.KindDoubleFree) {
			t.Fatalf("panic = %v, want KindDoubleFree", r)
		}
	}()
	a.Free(b)
}

func TestArenaForeignBlockPanics(t *testing.T) {
	a := NewArena()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on foreign block")
		}
		err, ok := r.(error)
		if !ok || !errors.IsKind(err, errors.KindForeignBlock) {
			t.Fatalf("panic = %v, want KindForeignBlock", r)
		}
	}()
	a.Free(Block{id: 99, layout: Layout{Size: 8, Align: 8}})
}

func TestArenaClosedPanics(t *testing.T) {
	a := NewArena()
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on alloc after close")
		}
		err, ok := r.(error)
		if !ok || !errors.IsKind(err, errors.KindClosed) {
			t.Fatalf("panic = %v, want KindClosed", r)
		}
	}()
	a.Alloc(Layout{Size: 8, Align: 8})
}

func TestArenaObserver(t *testing.T) {
	a := NewArena()
	obs := &testObserver{}
	a.Subscribe(obs)

	b := a.Alloc(Layout{Size: 8, Align: 8})
	a.Free(b)

	if len(obs.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventAlloc {
		t.Errorf("event 0 = %v, want EventAlloc", obs.events[0].Type)
	}
	if obs.events[1].Type != EventFree {
		t.Errorf("event 1 = %v, want EventFree", obs.events[1].Type)
	}

	a.Unsubscribe(obs)
	a.Free(a.Alloc(Layout{Size: 8, Align: 8}))
	if len(obs.events) != 2 {
		t.Error("unsubscribed observer should not receive events")
	}
}
