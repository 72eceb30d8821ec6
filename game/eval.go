package game

// surroundWeight makes each additional piece around a queen count for more
// than the last; index is the number of occupied neighbors.
var surroundWeight = [7]float64{0, 5, 15, 40, 100, 300, 1000}

// pieceValue weights placed material by mobility.
var pieceValue = map[PieceType]float64{
	Queen:       0,
	Ant:         80,
	Beetle:      60,
	Grasshopper: 40,
	Spider:      30,
}

// EvaluateQueenSafety scores a state between -1 and 1 from the current
// player's perspective, dominated by how far along each queen is to being
// surrounded, with placed material as a tiebreaker.
func EvaluateQueenSafety(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}

	if gs.Status == Finished {
		switch {
		case gs.Won == nil:
			return 0
		case *gs.Won == gs.CurrentTurn:
			return 1
		default:
			return -1
		}
	}

	current := gs.CurrentTurn
	opponent := current.Opponent()

	surround := map[Color]float64{}
	material := map[Color]float64{}
	for h, stack := range gs.Board {
		top := stack[len(stack)-1]
		material[top.Color] += pieceValue[top.Type]
		for _, p := range stack {
			if p.Type != Queen {
				continue
			}
			occupied := 0
			for _, n := range h.Neighbors() {
				if gs.Board.Occupied(n) {
					occupied++
				}
			}
			surround[p.Color] = surroundWeight[occupied]
		}
	}

	surroundScore := normalize(surround[opponent], surround[current])
	materialScore := normalize(material[current], material[opponent])

	return 0.8*surroundScore + 0.2*materialScore
}

// normalize converts two tallies into a single score between -1 and 1.
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
