package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustApply applies an action that the test expects to be legal.
func mustApply(t *testing.T, gs *GameState, a Action) *GameState {
	t.Helper()
	next, err := gs.Apply(a)
	require.NoError(t, err, "expected %s to be legal", a)
	return next
}

// putPiece injects a piece directly onto the board, bypassing placement
// rules, and keeps the hand invariant intact. Tests use it to build
// mid-game scenarios without scripted openings.
func putPiece(gs *GameState, h Hex, t PieceType, c Color) {
	gs.Board.Place(h, Piece{Type: t, Color: c})
	gs.Hands[c][t]--
}
