package inventory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randSource draws from a seeded math/rand generator.
type randSource struct{ r *rand.Rand }

func newRandSource(seed int64) *randSource { return &randSource{r: rand.New(rand.NewSource(seed))} }

func (s *randSource) Float64() float64 { return s.r.Float64() }

func (s *randSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// boundsSource records the bounds it was asked for and returns hi.
type boundsSource struct {
	lo, hi int
}

func (s *boundsSource) Float64() float64 { return 0 }

func (s *boundsSource) IntRange(lo, hi int) int {
	s.lo, s.hi = lo, hi
	return hi
}

func TestResolveOutIsBoundedByAvailable(t *testing.T) {
	src := &boundsSource{}
	dir, qty := Resolve(Out, 8, 50, src)
	assert.Equal(t, Out, dir)
	assert.Equal(t, 8, qty)
	assert.Equal(t, 1, src.lo)
	assert.Equal(t, 8, src.hi)
}

func TestResolveOutIsBoundedByCap(t *testing.T) {
	src := &boundsSource{}
	dir, qty := Resolve(Out, 500, 50, src)
	assert.Equal(t, Out, dir)
	assert.Equal(t, 50, qty)
}

func TestResolveFallsBackToInWithoutStock(t *testing.T) {
	for _, available := range []int{0, -3} {
		src := &boundsSource{}
		dir, qty := Resolve(Out, available, 20, src)
		assert.Equal(t, In, dir)
		assert.Equal(t, 20, qty)
		assert.Equal(t, 1, src.lo)
	}
}

func TestResolveNeverEmitsInvalidOut(t *testing.T) {
	src := newRandSource(42)
	for i := 0; i < 5000; i++ {
		available := src.IntRange(-5, 60)
		cap := src.IntRange(0, 60)
		want := In
		if src.Float64() < 0.5 {
			want = Out
		}

		dir, qty := Resolve(want, available, cap, src)
		assert.GreaterOrEqual(t, qty, 1)
		if dir == Out {
			assert.Equal(t, Out, want)
			assert.LessOrEqual(t, qty, available)
			assert.LessOrEqual(t, qty, max(cap, 1))
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		balance  Balance
		dir      Direction
		qty      int
		wantDir  Direction
		wantPrev int
		wantNext int
	}{
		{"out within available", Balance{OnHand: 10, Reserved: 2}, Out, 8, Out, 10, 2},
		{"out beyond available", Balance{OnHand: 10, Reserved: 2}, Out, 9, In, 10, 19},
		{"in", Balance{OnHand: 0}, In, 5, In, 0, 5},
		{"out on empty line", Balance{}, Out, 1, In, 0, 1},
		{"reserved above on hand", Balance{OnHand: 3, Reserved: 5}, Out, 1, In, 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, prev, next := Apply(tt.balance, tt.dir, tt.qty)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantPrev, prev)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}
