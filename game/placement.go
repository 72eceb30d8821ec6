package game

// validatePlacement checks hand, target emptiness, and the
// placement-adjacency rule. It does not mutate anything.
func (gs *GameState) validatePlacement(p Placement) error {
	if gs.hand(gs.CurrentTurn)[p.Type] <= 0 {
		return ErrNoPiecesRemaining
	}
	if gs.Board.Occupied(p.To) {
		return ErrTileOccupied
	}

	switch {
	case len(gs.Board) == 0:
		// First piece of the game goes anywhere.
		return nil

	case gs.TurnNumber == 2:
		// Second piece of the game must touch the hive; touching the
		// opponent is unavoidable and allowed this one time.
		for _, n := range p.To.Neighbors() {
			if gs.Board.Occupied(n) {
				return nil
			}
		}
		return ErrMustTouchHive

	default:
		touchingOwn := false
		touchingOpponent := false
		for _, n := range p.To.Neighbors() {
			top, ok := gs.Board.Top(n)
			if !ok {
				continue
			}
			if top.Color == gs.CurrentTurn {
				touchingOwn = true
			} else {
				touchingOpponent = true
			}
		}
		// Missing own-color contact outranks opponent contact.
		if !touchingOwn {
			return ErrMustTouchOwnColor
		}
		if touchingOpponent {
			return ErrCannotTouchOpponent
		}
		return nil
	}
}

// PlacementHexes enumerates every hex where the current player may place a
// new piece. On an empty board the unbounded grid is collapsed to the
// canonical origin.
func (gs *GameState) PlacementHexes() map[Hex]bool {
	hexes := make(map[Hex]bool)

	if len(gs.Board) == 0 {
		hexes[Hex{}] = true
		return hexes
	}

	if gs.TurnNumber == 2 {
		for h := range gs.Board {
			for _, n := range h.Neighbors() {
				if !gs.Board.Occupied(n) {
					hexes[n] = true
				}
			}
		}
		return hexes
	}

	// Candidates are empty hexes adjacent to the mover's own color...
	for h := range gs.Board {
		top, _ := gs.Board.Top(h)
		if top.Color != gs.CurrentTurn {
			continue
		}
		for _, n := range h.Neighbors() {
			if !gs.Board.Occupied(n) {
				hexes[n] = true
			}
		}
	}
	// ...that do not touch the opponent's color.
	for h := range hexes {
		for _, n := range h.Neighbors() {
			if top, ok := gs.Board.Top(n); ok && top.Color != gs.CurrentTurn {
				delete(hexes, h)
				break
			}
		}
	}
	return hexes
}
