package game

// Board maps a hex to the ordered stack of pieces on it, bottom to top.
// A hex is present only while its stack is non-empty; an emptied stack is
// deleted, never left as an empty entry.
//
// Board is a dumb container: it enforces no rules. Place and MoveTop are
// called only by already-validated code paths.
type Board map[Hex][]Piece

func (b Board) Copy() Board {
	c := make(Board, len(b))
	for h, stack := range b {
		stackCopy := make([]Piece, len(stack))
		copy(stackCopy, stack)
		c[h] = stackCopy
	}
	return c
}

// Top returns the topmost piece at h.
func (b Board) Top(h Hex) (Piece, bool) {
	stack := b[h]
	if len(stack) == 0 {
		return Piece{}, false
	}
	return stack[len(stack)-1], true
}

// Height returns the stack height at h (0 if empty).
func (b Board) Height(h Hex) int {
	return len(b[h])
}

func (b Board) Occupied(h Hex) bool {
	return len(b[h]) > 0
}

// OccupiedHexes returns the set of all hexes holding at least one piece.
func (b Board) OccupiedHexes() map[Hex]bool {
	hexes := make(map[Hex]bool, len(b))
	for h := range b {
		hexes[h] = true
	}
	return hexes
}

// Place pushes a new piece onto the stack at h.
func (b Board) Place(h Hex, p Piece) {
	b[h] = append(b[h], p)
}

// MoveTop pops the top piece off from and pushes it onto to, deleting the
// origin entry if it empties.
func (b Board) MoveTop(from, to Hex) {
	stack := b[from]
	p := stack[len(stack)-1]
	if len(stack) == 1 {
		delete(b, from)
	} else {
		b[from] = stack[:len(stack)-1]
	}
	b[to] = append(b[to], p)
}

// CountPieces returns how many pieces of the given type and color are on
// the board, including buried inside stacks.
func (b Board) CountPieces(t PieceType, c Color) int {
	count := 0
	for _, stack := range b {
		for _, p := range stack {
			if p.Type == t && p.Color == c {
				count++
			}
		}
	}
	return count
}
