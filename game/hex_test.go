package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	got := Hex{Q: 0, R: 0}.Neighbors()

	want := [6]Hex{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}}
	require.Equal(t, want, got)

	for _, n := range got {
		require.Equal(t, 1, Distance(Hex{}, n))
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Hex
		want int
	}{
		{Hex{0, 0}, Hex{0, 0}, 0},
		{Hex{0, 0}, Hex{1, 0}, 1},
		{Hex{0, 0}, Hex{-1, 1}, 1},
		{Hex{0, 0}, Hex{2, 0}, 2},
		{Hex{0, 0}, Hex{1, 1}, 2},
		{Hex{-1, 0}, Hex{1, 0}, 2},
		{Hex{0, 0}, Hex{3, -1}, 3},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Distance(tt.a, tt.b), "distance %v to %v", tt.a, tt.b)
		require.Equal(t, tt.want, Distance(tt.b, tt.a), "distance is symmetric")
	}
}

func TestCommonNeighbors(t *testing.T) {
	t.Run("adjacent hexes share exactly two neighbors", func(t *testing.T) {
		got := CommonNeighbors(Hex{0, 0}, Hex{1, 0})
		require.ElementsMatch(t, []Hex{{1, -1}, {0, 1}}, got)
	})

	t.Run("hexes two apart share exactly one or zero", func(t *testing.T) {
		require.Len(t, CommonNeighbors(Hex{0, 0}, Hex{2, 0}), 1)
		require.Empty(t, CommonNeighbors(Hex{0, 0}, Hex{3, 0}))
	})
}

func TestConnected(t *testing.T) {
	t.Run("empty set is connected by convention", func(t *testing.T) {
		require.True(t, Connected(map[Hex]bool{}))
	})

	t.Run("single hex is connected", func(t *testing.T) {
		require.True(t, Connected(map[Hex]bool{{5, -3}: true}))
	})

	t.Run("contiguous line is connected", func(t *testing.T) {
		require.True(t, Connected(map[Hex]bool{
			{0, 0}: true, {1, 0}: true, {2, 0}: true,
		}))
	})

	t.Run("gap splits the component", func(t *testing.T) {
		require.False(t, Connected(map[Hex]bool{
			{-1, 0}: true, {1, 0}: true,
		}))
	})

	t.Run("ring with a gap is still connected", func(t *testing.T) {
		ring := map[Hex]bool{}
		for _, n := range (Hex{}).Neighbors() {
			ring[n] = true
		}
		delete(ring, Hex{1, 0})
		require.True(t, Connected(ring))
	})
}
