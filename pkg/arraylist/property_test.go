package arraylist

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bytekit/internal/testutil"
	"github.com/joshuapare/bytekit/pkg/types"
)

const (
	maxBoundedSlots = 8
	maxBoundedPop   = maxBoundedSlots + 2
)

// boundedList builds a list with the given slot count and length, dynamic or
// static. Slot count 0 is only reachable for dynamic lists.
func boundedList(t *testing.T, a *testutil.Allocator, slots, length int, static bool) *List[uint16] {
	t.Helper()
	var (
		l   *List[uint16]
		err error
	)
	if static {
		l, err = NewStatic(make([]uint16, slots))
	} else {
		l, err = New[uint16](a, slots)
	}
	require.NoError(t, err)
	for i := range length {
		require.NoError(t, l.PushBack(uint16(i+1)))
	}
	require.Equal(t, slots, l.Capacity())
	return l
}

func requireListInvariants[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if l.ItemSize() == 0 {
		require.Equal(t, List[T]{}, *l)
		return
	}
	require.LessOrEqual(t, l.Len(), l.CurrentSize()/l.ItemSize())
	require.Equal(t, l.data == nil, l.CurrentSize() == 0)
}

// Clean-up must reach the zero state from every bounded starting state,
// including zero and already cleaned-up lists.
func TestProperty_CleanUpAlwaysZeroes(t *testing.T) {
	for _, static := range []bool{false, true} {
		for slots := 0; slots <= maxBoundedSlots; slots++ {
			if static && slots == 0 {
				continue
			}
			for length := 0; length <= slots; length++ {
				a := testutil.NewAllocator()
				l := boundedList(t, a, slots, length, static)
				requireListInvariants(t, l)

				l.CleanUp()
				require.Equal(t, List[uint16]{}, *l, "slots=%d length=%d static=%v", slots, length, static)
				l.CleanUp()
				require.Equal(t, List[uint16]{}, *l)
				a.RequireNoLeaks(t)
			}
		}
	}

	var zero List[uint8]
	zero.CleanUp()
	require.Equal(t, List[uint8]{}, zero)

	var nilList *List[uint8]
	nilList.CleanUp()
}

// After PopFrontN(n) and a successful ShrinkToFit the list is either empty
// with no storage or holds exactly Len() slots.
func TestProperty_PopFrontNThenShrink(t *testing.T) {
	for _, static := range []bool{false, true} {
		for slots := 0; slots <= maxBoundedSlots; slots++ {
			if static && slots == 0 {
				continue
			}
			for length := 0; length <= slots; length++ {
				for n := 0; n <= maxBoundedPop; n++ {
					a := testutil.NewAllocator()
					l := boundedList(t, a, slots, length, static)
					l.PopFrontN(n)

					wantLen := max(length-n, 0)
					require.Equal(t, wantLen, l.Len())
					for i, v := range l.All() {
						require.Equal(t, uint16(i+1+min(n, length)), v)
					}

					err := l.ShrinkToFit()
					if static {
						require.ErrorIs(t, err, types.ErrFixedCapacity)
						continue
					}
					require.NoError(t, err)
					ok := (l.Len() == 0 && l.data == nil) ||
						(l.data != nil && l.CurrentSize() == l.Len()*l.ItemSize())
					require.True(t, ok, "slots=%d length=%d n=%d: len=%d size=%d",
						slots, length, n, l.Len(), l.CurrentSize())
					require.Equal(t, l.CurrentSize(), a.Outstanding())

					l.CleanUp()
					a.RequireNoLeaks(t)
				}
			}
		}
	}
}

// Test_Fuzz_RandomOps_MatchesSliceModel drives a list and a plain slice with
// the same random operations and compares them after every step.
func Test_Fuzz_RandomOps_MatchesSliceModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility
	a := testutil.NewAllocator()
	l, err := New[int](a, 0)
	require.NoError(t, err)
	var model []int

	for step := range 2000 {
		switch op := rng.Intn(9); op {
		case 0, 1:
			v := rng.Int()
			require.NoError(t, l.PushBack(v))
			model = append(model, v)
		case 2:
			v := rng.Int()
			require.NoError(t, l.PushFront(v))
			model = slices.Insert(model, 0, v)
		case 3:
			i := rng.Intn(len(model) + 1)
			v := rng.Int()
			require.NoError(t, l.Insert(i, v))
			model = slices.Insert(model, i, v)
		case 4:
			if len(model) == 0 {
				require.ErrorIs(t, l.PopBack(), types.ErrOutOfBounds)
				continue
			}
			require.NoError(t, l.PopBack())
			model = model[:len(model)-1]
		case 5:
			n := rng.Intn(4)
			l.PopFrontN(n)
			model = model[min(n, len(model)):]
		case 6:
			if len(model) == 0 {
				continue
			}
			i := rng.Intn(len(model))
			require.NoError(t, l.Erase(i))
			model = slices.Delete(model, i, i+1)
		case 7:
			require.NoError(t, l.ShrinkToFit())
		case 8:
			if len(model) == 0 {
				continue
			}
			i := rng.Intn(len(model))
			v := rng.Int()
			require.NoError(t, l.SetAt(i, v))
			model[i] = v
		}

		requireListInvariants(t, l)
		require.Equal(t, len(model), l.Len(), "step %d", step)
		require.Equal(t, len(model) == 0, len(l.Items()) == 0)
		if len(model) > 0 {
			require.Equal(t, model, l.Items(), "step %d", step)
		}
		require.Equal(t, l.CurrentSize(), a.Outstanding(), "step %d", step)
	}

	l.CleanUp()
	a.RequireNoLeaks(t)
}

func FuzzListOps(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5})
	f.Add([]byte{0, 0, 0, 0, 5, 5, 6})
	f.Fuzz(func(t *testing.T, ops []byte) {
		a := testutil.NewAllocator()
		var l List[byte]
		if err := l.Init(a, 0); err != nil {
			t.Fatal(err)
		}
		for _, op := range ops {
			switch op % 7 {
			case 0:
				_ = l.PushBack(op)
			case 1:
				_ = l.PushFront(op)
			case 2:
				_ = l.PopBack()
			case 3:
				l.PopFrontN(int(op >> 4))
			case 4:
				_ = l.Erase(int(op >> 3))
			case 5:
				_ = l.ShrinkToFit()
			case 6:
				_ = l.SetAt(int(op>>5), op)
			}
			requireListInvariants(t, &l)
			if l.CurrentSize() != a.Outstanding() {
				t.Fatalf("accounting drift: size=%d outstanding=%d", l.CurrentSize(), a.Outstanding())
			}
		}
		l.CleanUp()
		a.RequireNoLeaks(t)
	})
}
