package game

// Hex is a position on the unbounded grid in axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Directions defines the six neighbor offsets in axial coordinates.
var Directions = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R}
}

// Neighbors returns the six adjacent hexes.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, d := range Directions {
		result[i] = h.Add(d)
	}
	return result
}

// Distance returns the hex distance between two coordinates (max of the
// absolute cube-coordinate differences).
func Distance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs((-a.Q - a.R) - (-b.Q - b.R))
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

func AreNeighbors(a, b Hex) bool {
	return Distance(a, b) == 1
}

// CommonNeighbors returns the hexes adjacent to both a and b. Two adjacent
// hexes share exactly two neighbors; these flank the edge between them and
// form the "gate" of the slide rule.
func CommonNeighbors(a, b Hex) []Hex {
	var common []Hex
	bNeighbors := b.Neighbors()
	for _, n := range a.Neighbors() {
		for _, m := range bNeighbors {
			if n == m {
				common = append(common, n)
				break
			}
		}
	}
	return common
}

// Connected reports whether the given hexes form a single connected
// component under six-neighbor adjacency. The empty set is connected.
func Connected(hexes map[Hex]bool) bool {
	if len(hexes) == 0 {
		return true
	}

	var start Hex
	for h := range hexes {
		start = h
		break
	}

	visited := map[Hex]bool{start: true}
	queue := []Hex{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors() {
			if hexes[n] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(hexes)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
