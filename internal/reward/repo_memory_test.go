package reward

import (
	"math/rand"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isSortedByStars(rs []Reward) bool {
	return slices.IsSortedFunc(rs, func(a, b Reward) int { return a.Stars - b.Stars })
}

func TestMemoryStore_MovieThenSnack(t *testing.T) {
	s := NewMemoryStore()

	s.Add(Draft{Description: "Movie", Stars: 50})
	assert.Equal(t, []Reward{{ID: 1, Description: "Movie", Stars: 50}}, s.List())

	s.Add(Draft{Description: "Snack", Stars: 10})
	assert.Equal(t, []Reward{
		{ID: 2, Description: "Snack", Stars: 10},
		{ID: 1, Description: "Movie", Stars: 50},
	}, s.List())
}

func TestMemoryStore_SortedAfterEveryAdd(t *testing.T) {
	s := NewMemoryStore()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		s.Add(Draft{Description: "r", Stars: 1 + rng.Intn(100)})
		require.True(t, isSortedByStars(s.List()), "unsorted after add %d", i)
	}
}

func TestMemoryStore_EqualStarsKeepInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	s.Add(Draft{Description: "a", Stars: 5})
	s.Add(Draft{Description: "b", Stars: 1})
	s.Add(Draft{Description: "c", Stars: 5})
	s.Add(Draft{Description: "d", Stars: 5})

	var got []string
	for _, r := range s.List() {
		got = append(got, r.Description)
	}
	assert.Equal(t, []string{"b", "a", "c", "d"}, got)

	// re-sorting on an unrelated mutation must not shuffle the ties
	s.Update(2, Draft{Description: "b", Stars: 1})
	got = got[:0]
	for _, r := range s.List() {
		got = append(got, r.Description)
	}
	assert.Equal(t, []string{"b", "a", "c", "d"}, got)
}

func TestMemoryStore_UnknownIDIsNoop(t *testing.T) {
	s := NewMemoryStore()
	s.Add(Draft{Description: "Movie", Stars: 50})
	s.Add(Draft{Description: "Snack", Stars: 10})
	before := s.List()

	assert.False(t, s.Update(99, Draft{Description: "Zoo", Stars: 1}))
	assert.Equal(t, before, s.List())

	assert.False(t, s.Remove(99))
	assert.Equal(t, before, s.List())

	_, ok := s.Get(99)
	assert.False(t, ok)
}

func TestMemoryStore_RemoveTopIDThenAddReusesIt(t *testing.T) {
	s := NewMemoryStore()
	s.Add(Draft{Description: "one", Stars: 1})
	s.Add(Draft{Description: "two", Stars: 2})
	s.Add(Draft{Description: "three", Stars: 3})

	s.Remove(3)
	got := s.Add(Draft{Description: "again", Stars: 4})

	assert.Equal(t, 3, got.ID)
	assert.Len(t, s.List(), 3)
}

func TestMemoryStore_RemoveMiddleIDIsNotReused(t *testing.T) {
	s := NewMemoryStore()
	s.Add(Draft{Description: "one", Stars: 1})
	s.Add(Draft{Description: "two", Stars: 2})
	s.Add(Draft{Description: "three", Stars: 3})

	s.Remove(2)
	got := s.Add(Draft{Description: "four", Stars: 4})

	assert.Equal(t, 4, got.ID)
}

func TestMemoryStore_AddThenUpdateRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	s.Add(Draft{Description: "Park", Stars: 30})
	x := s.Add(Draft{Description: "Movie", Stars: 50})

	y := Draft{Description: "Movie night with popcorn", Stars: 5}
	s.Update(x.ID, y)

	got, ok := s.Get(x.ID)
	require.True(t, ok)
	assert.Equal(t, Reward{ID: x.ID, Description: y.Description, Stars: y.Stars}, got)
	// the cheaper reward moved to the front
	assert.Equal(t, x.ID, s.List()[0].ID)
}

func TestMemoryStore_IDsUniqueAcrossMutations(t *testing.T) {
	s := NewMemoryStore()
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		cur := s.List()
		switch op := rng.Intn(3); {
		case op == 0 || len(cur) == 0:
			s.Add(Draft{Description: "r", Stars: 1 + rng.Intn(20)})
		case op == 1:
			s.Update(cur[rng.Intn(len(cur))].ID, Draft{Description: "u", Stars: 1 + rng.Intn(20)})
		default:
			s.Remove(cur[rng.Intn(len(cur))].ID)
		}

		after := s.List()
		seen := map[int]bool{}
		for _, r := range after {
			require.False(t, seen[r.ID], "duplicate id %d at step %d", r.ID, i)
			seen[r.ID] = true
		}
		require.True(t, isSortedByStars(after))
	}
}

func TestMemoryStore_SubscribeSeesSortedSnapshots(t *testing.T) {
	s := NewMemoryStore()

	var snaps [][]Reward
	cancel := s.Subscribe(func(rs []Reward) { snaps = append(snaps, rs) })
	defer cancel()

	s.Add(Draft{Description: "Movie", Stars: 50})
	s.Add(Draft{Description: "Snack", Stars: 10})
	s.Remove(1)

	require.Len(t, snaps, 3)
	assert.Equal(t, []Reward{{ID: 2, Description: "Snack", Stars: 10}, {ID: 1, Description: "Movie", Stars: 50}}, snaps[1])
	assert.Equal(t, []Reward{{ID: 2, Description: "Snack", Stars: 10}}, snaps[2])
}

func TestMemoryStore_EarlierSnapshotUnchangedByLaterMutations(t *testing.T) {
	s := NewMemoryStore()
	s.Add(Draft{Description: "Movie", Stars: 50})
	snap := s.List()

	s.Update(1, Draft{Description: "Zoo", Stars: 70})
	s.Remove(1)

	assert.Equal(t, []Reward{{ID: 1, Description: "Movie", Stars: 50}}, snap)
}

func TestMemoryStore_UseAfterClosePanics(t *testing.T) {
	s := NewMemoryStore()
	s.Close()

	assert.PanicsWithValue(t, ErrClosed, func() { s.List() })
	assert.PanicsWithValue(t, ErrClosed, func() { s.Get(1) })
	assert.PanicsWithValue(t, ErrClosed, func() { s.Add(Draft{}) })
	assert.PanicsWithValue(t, ErrClosed, func() { s.Update(1, Draft{}) })
	assert.PanicsWithValue(t, ErrClosed, func() { s.Remove(1) })
}

func TestAffordable(t *testing.T) {
	got := Affordable([]Reward{
		{ID: 1, Description: "Snack", Stars: 10},
		{ID: 2, Description: "Movie", Stars: 34},
		{ID: 3, Description: "Bike", Stars: 500},
	}, 34)

	require.Len(t, got, 3)
	assert.True(t, got[0].Redeemable)
	assert.True(t, got[1].Redeemable)
	assert.False(t, got[2].Redeemable)
}

func TestMemoryStore_UpdateAndRemoveReportMatch(t *testing.T) {
	s := NewMemoryStore()
	s.Add(Draft{Description: "Movie", Stars: 50})

	assert.True(t, s.Update(1, Draft{Description: "Zoo", Stars: 70}))
	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))
	assert.False(t, s.Update(1, Draft{Description: "Zoo", Stars: 70}))
}

func TestMemoryStore_ConcurrentRemoveMatchesOnce(t *testing.T) {
	s := NewMemoryStore()
	s.Add(Draft{Description: "Movie", Stars: 50})

	var wg sync.WaitGroup
	var hits atomic.Int32
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Remove(1) {
				hits.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	assert.Empty(t, s.List())
}

func TestMemoryStore_ObserversSeeMutationOrder(t *testing.T) {
	s := NewMemoryStore()

	var sizes []int
	s.Subscribe(func(rs []Reward) { sizes = append(sizes, len(rs)) })

	const n = 32
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(Draft{Description: "r", Stars: i + 1})
		}()
	}
	wg.Wait()

	require.Len(t, sizes, n)
	for i, got := range sizes {
		assert.Equal(t, i+1, got)
	}
}
