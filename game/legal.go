package game

// LegalDestinations returns every hex the piece at from may move to. It
// returns an empty set, not an error, when the origin is empty, the piece
// is not the mover's, the mover's queen is still in hand, or the piece is
// pinned by the one-hive rule.
func (gs *GameState) LegalDestinations(from Hex) map[Hex]bool {
	if gs.Status == Finished {
		return map[Hex]bool{}
	}
	top, ok := gs.Board.Top(from)
	if !ok || top.Color != gs.CurrentTurn {
		return map[Hex]bool{}
	}
	if !gs.queenPlaced(gs.CurrentTurn) {
		return map[Hex]bool{}
	}

	lifted := gs.liftedOccupancy(from)
	if !Connected(lifted) {
		return map[Hex]bool{} // pinned
	}
	return movers[top.Type].destinations(gs, from, lifted)
}

// LegalMoves enumerates every legal action for the current player:
// placements of each remaining piece type on each legal hex, plus movements
// of each of the player's movable pieces. The enumeration agrees exactly
// with Apply: an action is in the list iff Apply accepts it.
func (gs *GameState) LegalMoves() []Action {
	if gs.Status == Finished {
		return nil
	}

	var moves []Action
	hand := gs.hand(gs.CurrentTurn)

	placeable := make([]PieceType, 0, len(PieceTypes))
	if gs.fourthRound() && !gs.queenPlaced(gs.CurrentTurn) {
		placeable = append(placeable, Queen)
	} else {
		for _, t := range PieceTypes {
			if hand[t] > 0 {
				placeable = append(placeable, t)
			}
		}
	}
	for h := range gs.PlacementHexes() {
		for _, t := range placeable {
			moves = append(moves, Placement{Type: t, To: h})
		}
	}

	if !gs.queenPlaced(gs.CurrentTurn) {
		return moves // no piece may move before the queen is placed
	}
	for from := range gs.Board {
		for to := range gs.LegalDestinations(from) {
			moves = append(moves, Movement{From: from, To: to})
		}
	}
	return moves
}
