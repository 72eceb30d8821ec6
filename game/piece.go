package game

import "fmt"

// PieceType identifies one of the five insect kinds.
type PieceType int

const (
	Queen PieceType = iota
	Ant
	Spider
	Beetle
	Grasshopper
)

// PieceTypes lists all five kinds in a fixed order, for deterministic
// iteration over hands.
var PieceTypes = [5]PieceType{Queen, Ant, Spider, Beetle, Grasshopper}

func (t PieceType) String() string {
	switch t {
	case Queen:
		return "QUEEN"
	case Ant:
		return "ANT"
	case Spider:
		return "SPIDER"
	case Beetle:
		return "BEETLE"
	case Grasshopper:
		return "GRASSHOPPER"
	default:
		return fmt.Sprintf("PieceType(%d)", int(t))
	}
}

// Color identifies a player.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "WHITE"
	}
	return "BLACK"
}

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Piece is a single physical tile. ID distinguishes otherwise-identical
// pieces for external tracking; rule logic never reads it.
type Piece struct {
	Type  PieceType
	Color Color
	ID    string
}

// Hand is the pool of a color's pieces not yet placed.
type Hand map[PieceType]int

// NewHand returns a full hand with the standard counts.
func NewHand() Hand {
	return Hand{
		Queen:       1,
		Ant:         3,
		Grasshopper: 3,
		Spider:      2,
		Beetle:      2,
	}
}

func (h Hand) Copy() Hand {
	c := make(Hand, len(h))
	for t, n := range h {
		c[t] = n
	}
	return c
}

// Total returns the number of pieces still in hand.
func (h Hand) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}
