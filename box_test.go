package take_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/take"
	"github.com/wippyai/take/alloc"
	"github.com/wippyai/take/errors"
	"github.com/wippyai/take/taketest"
)

func TestBoxTakePlainValue(t *testing.T) {
	b := take.NewBox(42)
	got := b.Take()
	require.Equal(t, 42, got)
}

func TestBoxTakeSuppressesDrop(t *testing.T) {
	rec := taketest.NewRecorder()

	b := take.NewBox(rec.Token("conn"))
	out := b.Take()
	require.True(t, rec.NoneDropped(), "take must not destroy the payload")

	out.Drop()
	assert.Equal(t, 1, rec.Drops("conn"), "new owner drops exactly once")
	assert.Zero(t, rec.DoubleDrops())
}

func TestBoxDropRunsPayloadDrop(t *testing.T) {
	rec := taketest.NewRecorder()

	b := take.NewBox(rec.Token("conn"))
	b.Drop()

	assert.Equal(t, 1, rec.Drops("conn"))
}

func TestBoxTakeFreesOnlyShell(t *testing.T) {
	a := alloc.NewArena()

	b := take.NewBoxIn("payload", a)
	require.Equal(t, 1, a.Stats().LiveBlocks)

	_ = b.Take()

	st := a.Stats()
	assert.Equal(t, uint64(1), st.Allocs)
	assert.Equal(t, uint64(1), st.Frees)
	assert.Zero(t, st.LiveBlocks)
	assert.Zero(t, st.LiveBytes)
}

func TestBoxTakeWithClosureResult(t *testing.T) {
	b := take.NewBox("hello")

	n := take.TakeWith(b, func(view *take.ManuallyDrop[string]) int {
		return len(*view.Get())
	})
	assert.Equal(t, 5, n)
}

func TestBoxShellFreedWhenExtractionPanics(t *testing.T) {
	a := alloc.NewArena()
	rec := taketest.NewRecorder()

	b := take.NewBoxIn(rec.Token("conn"), a)

	require.Panics(t, func() {
		take.TakeWith(b, func(*take.ManuallyDrop[*taketest.Token]) int {
			panic("extraction failed")
		})
	})

	assert.Zero(t, a.Stats().LiveBlocks, "shell must be freed during unwind")
	assert.True(t, rec.NoneDropped(), "payload drop must stay suppressed")
	assert.Zero(t, rec.DoubleDrops())
}

func TestBoxSecondTakePanics(t *testing.T) {
	b := take.NewBox(1)
	_ = b.Take()

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok, "expected error panic")
		assert.True(t, errors.IsKind(err, errors.KindAlreadyTaken))
	}()
	_ = b.Take()
}

func TestBoxUseAfterTakePanics(t *testing.T) {
	b := take.NewBox(1)
	_ = b.Take()

	assert.PanicsWithError(t, "[use_after_take] take.Box.Get: box already consumed", func() {
		_ = b.Get()
	})
	assert.Panics(t, func() { b.Drop() })
}
