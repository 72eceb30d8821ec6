package game

import "fmt"

// Action is either a Placement from hand or a Movement of a piece already
// on the board. The two variants carry exactly the fields relevant to each;
// the interface is sealed so no other variant can exist.
type Action interface {
	isAction()
	fmt.Stringer
}

// Placement puts a new piece of the given type from the mover's hand onto
// an empty hex.
type Placement struct {
	Type PieceType
	To   Hex
}

// Movement slides, jumps or climbs the top piece at From to To.
type Movement struct {
	From Hex
	To   Hex
}

func (Placement) isAction() {}
func (Movement) isAction()  {}

func (p Placement) String() string {
	return fmt.Sprintf("place %s at (%d,%d)", p.Type, p.To.Q, p.To.R)
}

func (m Movement) String() string {
	return fmt.Sprintf("move (%d,%d) to (%d,%d)", m.From.Q, m.From.R, m.To.Q, m.To.R)
}
