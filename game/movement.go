package game

// canSlide implements the freedom-to-move (gate) rule for a single step
// between adjacent hexes. Of the two neighbors flanking the edge, exactly
// one must be occupied: two means the gate is closed and the piece cannot
// squeeze through; zero means the piece would cross open space instead of
// sliding along the hive.
func canSlide(from, to Hex, occupied map[Hex]bool) bool {
	occupiedGates := 0
	for _, n := range CommonNeighbors(from, to) {
		if occupied[n] {
			occupiedGates++
		}
	}
	return occupiedGates == 1
}

// touchesHive reports whether h has at least one occupied neighbor.
func touchesHive(h Hex, occupied map[Hex]bool) bool {
	for _, n := range h.Neighbors() {
		if occupied[n] {
			return true
		}
	}
	return false
}

// liftedOccupancy returns the occupied set with the moving piece lifted off
// the board: the origin is removed iff the mover is alone on its hex. Every
// within-move check (one-hive, slide, hug) sees this same set, so the
// origin never counts as occupied during its own piece's move.
func (gs *GameState) liftedOccupancy(from Hex) map[Hex]bool {
	lifted := gs.Board.OccupiedHexes()
	if gs.Board.Height(from) == 1 {
		delete(lifted, from)
	}
	return lifted
}

// pieceMover is one entry of the closed dispatch table: a single-candidate
// legality predicate and a full destination generator. The two must accept
// exactly the same set of destinations for every input.
type pieceMover struct {
	legal        func(gs *GameState, from, to Hex, lifted map[Hex]bool) bool
	destinations func(gs *GameState, from Hex, lifted map[Hex]bool) map[Hex]bool
}

var movers = map[PieceType]pieceMover{
	Queen:       {legal: queenLegal, destinations: queenDestinations},
	Beetle:      {legal: beetleLegal, destinations: beetleDestinations},
	Grasshopper: {legal: grasshopperLegal, destinations: grasshopperDestinations},
	Spider:      {legal: spiderLegal, destinations: spiderDestinations},
	Ant:         {legal: antLegal, destinations: antDestinations},
}

// validateMovement composes the shared checks (origin, ownership, one-hive
// removal and insertion) with the piece-specific geometry check.
func (gs *GameState) validateMovement(m Movement) error {
	top, ok := gs.Board.Top(m.From)
	if !ok {
		return ErrNoPieceAtOrigin
	}
	if top.Color != gs.CurrentTurn {
		return ErrNotOwnPiece
	}
	if m.From == m.To {
		return ErrIllegalGeometry
	}

	lifted := gs.liftedOccupancy(m.From)
	if !Connected(lifted) {
		// The piece is an articulation point and cannot move at all.
		return ErrHiveDisconnected
	}
	wasOccupied := lifted[m.To]
	lifted[m.To] = true
	connected := Connected(lifted)
	if !wasOccupied {
		delete(lifted, m.To)
	}
	if !connected {
		return ErrDestinationDisconnected
	}

	if !movers[top.Type].legal(gs, m.From, m.To, lifted) {
		return ErrIllegalGeometry
	}
	return nil
}

func queenLegal(gs *GameState, from, to Hex, lifted map[Hex]bool) bool {
	return AreNeighbors(from, to) &&
		!lifted[to] &&
		canSlide(from, to, lifted) &&
		touchesHive(to, lifted)
}

func queenDestinations(gs *GameState, from Hex, lifted map[Hex]bool) map[Hex]bool {
	dests := make(map[Hex]bool)
	for _, n := range from.Neighbors() {
		if !lifted[n] && canSlide(from, n, lifted) && touchesHive(n, lifted) {
			dests[n] = true
		}
	}
	return dests
}

// Beetle steps to any adjacent hex, climbing onto stacks freely. The slide
// rule applies only for a ground-level step onto an empty hex; climbing on
// or dropping off a stack bypasses it.
func beetleLegal(gs *GameState, from, to Hex, lifted map[Hex]bool) bool {
	if !AreNeighbors(from, to) {
		return false
	}
	if lifted[to] {
		return true
	}
	if gs.Board.Height(from) == 1 && !canSlide(from, to, lifted) {
		return false
	}
	return touchesHive(to, lifted)
}

func beetleDestinations(gs *GameState, from Hex, lifted map[Hex]bool) map[Hex]bool {
	dests := make(map[Hex]bool)
	for _, n := range from.Neighbors() {
		if beetleLegal(gs, from, n, lifted) {
			dests[n] = true
		}
	}
	return dests
}

// Grasshopper jumps in a straight line over at least one contiguous piece
// and lands on the first empty hex beyond them.
func grasshopperLegal(gs *GameState, from, to Hex, lifted map[Hex]bool) bool {
	dq := to.Q - from.Q
	dr := to.R - from.R

	var step Hex
	switch {
	case dq == 0 && dr == 0:
		return false
	case dq == 0:
		step = Hex{Q: 0, R: sign(dr)}
	case dr == 0:
		step = Hex{Q: sign(dq), R: 0}
	case dq == -dr:
		step = Hex{Q: sign(dq), R: sign(dr)}
	default:
		return false // not a straight line
	}

	current := from.Add(step)
	if !lifted[current] {
		return false // nothing to jump over
	}
	for lifted[current] {
		current = current.Add(step)
	}
	return current == to
}

func grasshopperDestinations(gs *GameState, from Hex, lifted map[Hex]bool) map[Hex]bool {
	dests := make(map[Hex]bool)
	for _, d := range Directions {
		current := from.Add(d)
		if !lifted[current] {
			continue
		}
		for lifted[current] {
			current = current.Add(d)
		}
		dests[current] = true
	}
	return dests
}

// spiderFrame is one pending branch of the bounded spider walk.
type spiderFrame struct {
	pos       Hex
	remaining int
	visited   map[Hex]bool
}

// spiderWalk explores every simple 3-step slide path from origin, invoking
// found for each path endpoint. It stops early if found returns true.
func spiderWalk(from Hex, lifted map[Hex]bool, found func(Hex) bool) {
	stack := []spiderFrame{{pos: from, remaining: 3, visited: map[Hex]bool{from: true}}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range frame.pos.Neighbors() {
			if lifted[n] || frame.visited[n] {
				continue
			}
			if !canSlide(frame.pos, n, lifted) || !touchesHive(n, lifted) {
				continue
			}
			if frame.remaining == 1 {
				if found(n) {
					return
				}
				continue
			}
			visited := make(map[Hex]bool, len(frame.visited)+1)
			for h := range frame.visited {
				visited[h] = true
			}
			visited[n] = true
			stack = append(stack, spiderFrame{pos: n, remaining: frame.remaining - 1, visited: visited})
		}
	}
}

func spiderLegal(gs *GameState, from, to Hex, lifted map[Hex]bool) bool {
	reached := false
	spiderWalk(from, lifted, func(end Hex) bool {
		if end == to {
			reached = true
		}
		return reached
	})
	return reached
}

func spiderDestinations(gs *GameState, from Hex, lifted map[Hex]bool) map[Hex]bool {
	dests := make(map[Hex]bool)
	spiderWalk(from, lifted, func(end Hex) bool {
		dests[end] = true
		return false
	})
	return dests
}

// Ant slides any distance around the hive: a BFS over empty hexes where
// every step obeys the gate rule and keeps contact with the hive.
func antLegal(gs *GameState, from, to Hex, lifted map[Hex]bool) bool {
	if lifted[to] {
		return false
	}
	visited := map[Hex]bool{from: true}
	queue := []Hex{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors() {
			if lifted[n] || visited[n] {
				continue
			}
			if !canSlide(current, n, lifted) || !touchesHive(n, lifted) {
				continue
			}
			if n == to {
				return true
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return false
}

func antDestinations(gs *GameState, from Hex, lifted map[Hex]bool) map[Hex]bool {
	dests := make(map[Hex]bool)
	visited := map[Hex]bool{from: true}
	queue := []Hex{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors() {
			if lifted[n] || visited[n] {
				continue
			}
			if !canSlide(current, n, lifted) || !touchesHive(n, lifted) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
			dests[n] = true
		}
	}
	return dests
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	return -1
}
