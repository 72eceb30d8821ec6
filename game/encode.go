package game

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Wire representation consumed by request/response layers: board keys are
// canonical "q,r" strings, stacks are ordered bottom to top, enums are
// upper-case names, and winner is null while in progress or drawn.

// Key returns the canonical "q,r" string form of a hex.
func (h Hex) Key() string {
	return strconv.Itoa(h.Q) + "," + strconv.Itoa(h.R)
}

// ParseHexKey parses the canonical "q,r" form.
func ParseHexKey(key string) (Hex, error) {
	qs, rs, ok := strings.Cut(key, ",")
	if !ok {
		return Hex{}, fmt.Errorf("malformed hex key %q", key)
	}
	q, err := strconv.Atoi(qs)
	if err != nil {
		return Hex{}, fmt.Errorf("malformed hex key %q: %v", key, err)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return Hex{}, fmt.Errorf("malformed hex key %q: %v", key, err)
	}
	return Hex{Q: q, R: r}, nil
}

// ParsePieceType maps an upper-case name back to a piece type.
func ParsePieceType(s string) (PieceType, error) {
	for _, t := range PieceTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown piece type %q", s)
}

// ParseColor maps an upper-case name back to a color.
func ParseColor(s string) (Color, error) {
	switch s {
	case "WHITE":
		return White, nil
	case "BLACK":
		return Black, nil
	default:
		return 0, fmt.Errorf("unknown color %q", s)
	}
}

type pieceDoc struct {
	Type  string `json:"type"`
	Color string `json:"color"`
	ID    string `json:"id"`
}

type gameDoc struct {
	ID          string                    `json:"id"`
	Board       map[string][]pieceDoc     `json:"board"`
	CurrentTurn string                    `json:"currentTurn"`
	TurnNumber  int                       `json:"turnNumber"`
	Hands       map[string]map[string]int `json:"hands"`
	Status      string                    `json:"status"`
	Winner      *string                   `json:"winner"`
}

func (gs *GameState) MarshalJSON() ([]byte, error) {
	doc := gameDoc{
		ID:          gs.ID,
		Board:       make(map[string][]pieceDoc, len(gs.Board)),
		CurrentTurn: gs.CurrentTurn.String(),
		TurnNumber:  gs.TurnNumber,
		Hands:       make(map[string]map[string]int, 2),
		Status:      gs.Status.String(),
	}
	for h, stack := range gs.Board {
		docStack := make([]pieceDoc, len(stack))
		for i, p := range stack {
			docStack[i] = pieceDoc{Type: p.Type.String(), Color: p.Color.String(), ID: p.ID}
		}
		doc.Board[h.Key()] = docStack
	}
	for _, c := range []Color{White, Black} {
		hand := make(map[string]int, len(PieceTypes))
		for _, t := range PieceTypes {
			hand[t.String()] = gs.Hands[c][t]
		}
		doc.Hands[c.String()] = hand
	}
	if gs.Won != nil {
		w := gs.Won.String()
		doc.Winner = &w
	}
	return json.Marshal(doc)
}

func (gs *GameState) UnmarshalJSON(data []byte) error {
	var doc gameDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	board := make(Board, len(doc.Board))
	for key, docStack := range doc.Board {
		h, err := ParseHexKey(key)
		if err != nil {
			return err
		}
		stack := make([]Piece, len(docStack))
		for i, pd := range docStack {
			t, err := ParsePieceType(pd.Type)
			if err != nil {
				return err
			}
			c, err := ParseColor(pd.Color)
			if err != nil {
				return err
			}
			stack[i] = Piece{Type: t, Color: c, ID: pd.ID}
		}
		board[h] = stack
	}

	turn, err := ParseColor(doc.CurrentTurn)
	if err != nil {
		return err
	}

	hands := map[Color]Hand{White: Hand{}, Black: Hand{}}
	for name, counts := range doc.Hands {
		c, err := ParseColor(name)
		if err != nil {
			return err
		}
		for typeName, n := range counts {
			t, err := ParsePieceType(typeName)
			if err != nil {
				return err
			}
			hands[c][t] = n
		}
	}

	status := InProgress
	if doc.Status == Finished.String() {
		status = Finished
	}
	var won *Color
	if doc.Winner != nil {
		c, err := ParseColor(*doc.Winner)
		if err != nil {
			return err
		}
		won = &c
	}

	gs.ID = doc.ID
	gs.Board = board
	gs.Hands = hands
	gs.CurrentTurn = turn
	gs.TurnNumber = doc.TurnNumber
	gs.Status = status
	gs.Won = won
	return nil
}
