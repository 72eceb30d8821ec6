package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstPlacement(t *testing.T) {
	gs := NewGameState()

	next := mustApply(t, gs, Placement{Type: Ant, To: Hex{0, 0}})

	require.Equal(t, 2, next.TurnNumber)
	require.Equal(t, Black, next.CurrentTurn)
	require.Equal(t, 1, next.Board.Height(Hex{0, 0}))
	top, _ := next.Board.Top(Hex{0, 0})
	require.Equal(t, Ant, top.Type)
	require.Equal(t, White, top.Color)
	require.Equal(t, 2, next.Hands[White][Ant])
}

func TestSecondPlacementMustTouchHive(t *testing.T) {
	gs := NewGameState()
	gs = mustApply(t, gs, Placement{Type: Ant, To: Hex{0, 0}})

	_, err := gs.Apply(Placement{Type: Ant, To: Hex{2, 2}})
	require.ErrorIs(t, err, ErrMustTouchHive)

	// Touching the opponent is unavoidable on the second ply and allowed.
	next := mustApply(t, gs, Placement{Type: Ant, To: Hex{1, 0}})
	require.True(t, next.Board.Occupied(Hex{1, 0}))
}

func TestLaterPlacementsRespectColors(t *testing.T) {
	gs := NewGameState()
	gs = mustApply(t, gs, Placement{Type: Ant, To: Hex{0, 0}})  // White
	gs = mustApply(t, gs, Placement{Type: Ant, To: Hex{1, 0}})  // Black

	t.Run("touching the opponent is rejected", func(t *testing.T) {
		// (0,1) touches both (0,0) White and (1,0) Black.
		_, err := gs.Apply(Placement{Type: Ant, To: Hex{0, 1}})
		require.ErrorIs(t, err, ErrCannotTouchOpponent)
	})

	t.Run("touching nothing of one's own is rejected", func(t *testing.T) {
		_, err := gs.Apply(Placement{Type: Ant, To: Hex{5, 5}})
		require.ErrorIs(t, err, ErrMustTouchOwnColor)
	})

	t.Run("touching only the opponent reports the missing own contact", func(t *testing.T) {
		// (2,0) is adjacent to (1,0) Black and nothing else; the missing
		// own-color contact outranks the opponent contact.
		_, err := gs.Apply(Placement{Type: Ant, To: Hex{2, 0}})
		require.ErrorIs(t, err, ErrMustTouchOwnColor)
	})

	t.Run("touching only one's own color succeeds", func(t *testing.T) {
		next := mustApply(t, gs, Placement{Type: Ant, To: Hex{-1, 0}})
		require.True(t, next.Board.Occupied(Hex{-1, 0}))
	})
}

func TestPlacementOnOccupiedTile(t *testing.T) {
	gs := NewGameState()
	gs = mustApply(t, gs, Placement{Type: Ant, To: Hex{0, 0}})

	_, err := gs.Apply(Placement{Type: Ant, To: Hex{0, 0}})
	require.ErrorIs(t, err, ErrTileOccupied)
}

func TestPlacementExhaustsHand(t *testing.T) {
	gs := NewGameState()
	gs.Hands[White][Ant] = 0

	_, err := gs.Apply(Placement{Type: Ant, To: Hex{0, 0}})
	require.ErrorIs(t, err, ErrNoPiecesRemaining)
}

func TestPlacementHexes(t *testing.T) {
	t.Run("empty board collapses to the origin", func(t *testing.T) {
		gs := NewGameState()
		require.Equal(t, map[Hex]bool{{0, 0}: true}, gs.PlacementHexes())
	})

	t.Run("second ply offers every hive neighbor", func(t *testing.T) {
		gs := NewGameState()
		gs = mustApply(t, gs, Placement{Type: Ant, To: Hex{0, 0}})

		hexes := gs.PlacementHexes()
		require.Len(t, hexes, 6)
		for _, n := range (Hex{0, 0}).Neighbors() {
			require.True(t, hexes[n])
		}
	})

	t.Run("every enumerated hex is accepted by Apply", func(t *testing.T) {
		gs := NewGameState()
		gs = mustApply(t, gs, Placement{Type: Ant, To: Hex{0, 0}})
		gs = mustApply(t, gs, Placement{Type: Ant, To: Hex{1, 0}})
		gs = mustApply(t, gs, Placement{Type: Queen, To: Hex{-1, 0}})
		gs = mustApply(t, gs, Placement{Type: Queen, To: Hex{2, 0}})

		hexes := gs.PlacementHexes()
		require.NotEmpty(t, hexes)
		for h := range hexes {
			_, err := gs.Apply(Placement{Type: Spider, To: h})
			require.NoError(t, err, "enumerated hex %v rejected", h)
		}

		// And a hex it does not enumerate is rejected.
		require.False(t, hexes[Hex{1, 1}])
		_, err := gs.Apply(Placement{Type: Spider, To: Hex{1, 1}})
		require.Error(t, err)
	})
}
