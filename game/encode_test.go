package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexKey(t *testing.T) {
	require.Equal(t, "2,-1", Hex{2, -1}.Key())

	h, err := ParseHexKey("2,-1")
	require.NoError(t, err)
	require.Equal(t, Hex{2, -1}, h)

	for _, bad := range []string{"", "1", "a,b", "1,2,3"} {
		_, err := ParseHexKey(bad)
		require.Error(t, err, "key %q should not parse", bad)
	}
}

func TestGameStateWireFormat(t *testing.T) {
	gs := NewGameState()
	gs = mustApply(t, gs, Placement{Type: Ant, To: Hex{0, 0}})
	gs = mustApply(t, gs, Placement{Type: Queen, To: Hex{1, 0}})

	data, err := json.Marshal(gs)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, gs.ID, doc["id"])
	require.Equal(t, "WHITE", doc["currentTurn"])
	require.Equal(t, float64(3), doc["turnNumber"])
	require.Equal(t, "IN_PROGRESS", doc["status"])
	require.Nil(t, doc["winner"])

	board := doc["board"].(map[string]any)
	require.Len(t, board, 2)
	stack := board["1,0"].([]any)
	require.Len(t, stack, 1)
	piece := stack[0].(map[string]any)
	require.Equal(t, "QUEEN", piece["type"])
	require.Equal(t, "BLACK", piece["color"])
	require.NotEmpty(t, piece["id"])

	hands := doc["hands"].(map[string]any)
	white := hands["WHITE"].(map[string]any)
	require.Equal(t, float64(2), white["ANT"])
	require.Equal(t, float64(1), white["QUEEN"])
}

func TestGameStateRoundTrip(t *testing.T) {
	gs := NewGameState()
	gs = mustApply(t, gs, Placement{Type: Ant, To: Hex{0, 0}})
	gs = mustApply(t, gs, Placement{Type: Queen, To: Hex{1, 0}})
	gs = mustApply(t, gs, Placement{Type: Queen, To: Hex{-1, 0}})

	data, err := json.Marshal(gs)
	require.NoError(t, err)

	var got GameState
	require.NoError(t, json.Unmarshal(data, &got))

	require.Equal(t, gs.ID, got.ID)
	require.Equal(t, gs.Board, got.Board)
	require.Equal(t, gs.Hands, got.Hands)
	require.Equal(t, gs.CurrentTurn, got.CurrentTurn)
	require.Equal(t, gs.TurnNumber, got.TurnNumber)
	require.Equal(t, gs.Status, got.Status)
	require.Equal(t, gs.Hash(), got.Hash(), "round trip preserves the position")
}
