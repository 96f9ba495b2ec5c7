package take_test

import (
	"testing"

	"github.com/wippyai/take"
	"github.com/wippyai/take/alloc"
)

func BenchmarkBoxTake(b *testing.B) {
	a := alloc.NewArena()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		box := take.NewBoxIn(i, a)
		_ = box.Take()
	}
}

func BenchmarkRcUniqueTake(b *testing.B) {
	a := alloc.NewArena()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := take.NewRcIn(i, a)
		_ = r.Take()
	}
}

func BenchmarkVecTake64(b *testing.B) {
	a := alloc.NewArena()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := take.NewVecIn[int](64, a)
		for j := 0; j < 64; j++ {
			v.Push(j)
		}
		owned := v.Take()
		owned.Drop()
	}
}

func BenchmarkTakeWithClosure(b *testing.B) {
	a := alloc.NewArena()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		box := take.NewBoxIn(i, a)
		_ = take.TakeWith(box, func(view *take.ManuallyDrop[int]) int {
			return *view.Get()
		})
	}
}
