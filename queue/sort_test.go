package queue

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/arloliu/go-strqueue/internal/util"
	"github.com/stretchr/testify/require"
)

func fillTail(t *testing.T, q *Queue, vals ...string) {
	t.Helper()
	for _, v := range vals {
		require.True(t, q.InsertTail(v))
	}
}

func TestSort(t *testing.T) {
	require := require.New(t)

	t.Run("Three Values", func(t *testing.T) {
		q, _ := newTrackedQueue(t)
		defer q.Destroy()

		fillTail(t, q, "c", "a", "b")
		q.Sort()
		requireConsistent(t, q)

		buf := make([]byte, 8)
		for _, want := range []string{"a", "b", "c"} {
			require.True(q.RemoveHead(buf))
			require.Equal(want, string(util.Terminated(buf)))
		}
	})

	t.Run("Empty And Single", func(t *testing.T) {
		q, _ := newTrackedQueue(t)
		defer q.Destroy()

		q.Sort()
		requireConsistent(t, q)
		require.Equal(0, q.Size())

		fillTail(t, q, "only")
		e := q.head
		q.Sort()
		requireConsistent(t, q)
		require.Same(e, q.head)
		require.Same(e, q.tail)
	})

	t.Run("Input Shapes", func(t *testing.T) {
		sorted := make([]string, 0, 33)
		for i := 0; i < 33; i++ {
			sorted = append(sorted, strconv.Itoa(1000+i))
		}
		reversed := slices.Clone(sorted)
		slices.Reverse(reversed)

		tests := []struct {
			name string
			vals []string
		}{
			{"already sorted", sorted},
			{"reverse sorted", reversed},
			{"all equal", []string{"x", "x", "x", "x", "x", "x", "x"}},
			{"two elements", []string{"b", "a"}},
			{"byte-wise order", []string{"b", "B", "a", "A", "", "ab", "a\x00", "\xff", "Z"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q, tracker := newTrackedQueue(t)
				defer q.Destroy()

				fillTail(t, q, tt.vals...)
				acquired, released := tracker.Acquired(), tracker.Released()

				q.Sort()
				requireConsistent(t, q)
				require.Equal(acquired, tracker.Acquired())
				require.Equal(released, tracker.Released())

				want := slices.Clone(tt.vals)
				slices.Sort(want)
				require.Equal(want, values(q))
			})
		}
	})

	t.Run("Random Inputs", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		for round := 0; round < 50; round++ {
			q, _ := newTrackedQueue(t)

			n := rng.IntN(200)
			vals := make([]string, n)
			for i := range vals {
				vals[i] = strconv.Itoa(rng.IntN(50))
			}
			fillTail(t, q, vals...)

			q.Sort()
			requireConsistent(t, q)

			got := values(q)
			require.True(slices.IsSorted(got))
			// the multiset of values is preserved
			want := slices.Clone(vals)
			slices.Sort(want)
			require.Equal(want, got)

			q.Destroy()
		}
	})

	t.Run("Stable", func(t *testing.T) {
		q, _ := newTrackedQueue(t)
		defer q.Destroy()

		keys := []string{"b", "a", "b", "a", "c", "a", "b"}
		fillTail(t, q, keys...)
		orig := elements(q)

		q.Sort()
		requireConsistent(t, q)

		// equal values keep their insertion order, tracked by element identity
		got := elements(q)
		pos := make(map[*element]int, len(orig))
		for i, e := range orig {
			pos[e] = i
		}
		for i := 1; i < len(got); i++ {
			if bytes.Equal(got[i-1].value, got[i].value) {
				require.Less(pos[got[i-1]], pos[got[i]])
			}
		}
	})

	t.Run("Elements Are Relinked", func(t *testing.T) {
		q, _ := newTrackedQueue(t)
		defer q.Destroy()

		fillTail(t, q, "d", "c", "b", "a")
		before := elements(q)
		q.Sort()

		require.Same(before[3], q.head)
		require.Same(before[0], q.tail)
		require.True(q.InsertTail("e"))
		requireConsistent(t, q)
		require.Equal([]string{"a", "b", "c", "d", "e"}, values(q))
	})

	t.Run("Sort Then Reverse", func(t *testing.T) {
		q, _ := newTrackedQueue(t)
		defer q.Destroy()

		fillTail(t, q, "m", "z", "a", "q")
		q.Sort()
		q.Reverse()
		requireConsistent(t, q)
		require.Equal([]string{"z", "q", "m", "a"}, removeAll(t, q))
	})
}

func BenchmarkSort(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 4))
	vals := make([]string, 1024)
	for i := range vals {
		vals[i] = strconv.Itoa(rng.IntN(1 << 20))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		q, err := New()
		if err != nil {
			b.Fatal(err)
		}
		for _, v := range vals {
			q.InsertTail(v)
		}
		b.StartTimer()

		q.Sort()

		b.StopTimer()
		q.Destroy()
		b.StartTimer()
	}
}
