package searcher

import (
	"math"
	"sync"

	"hive/game"
)

const cSquared = 2.0

// Loss is the virtual loss applied to a node while a simulation is in
// flight through it, discouraging other goroutines from piling onto the
// same branch.
const Loss = 0.0

// decision is a search tree node. Hive is fully deterministic, so every
// node is a decision node: one child per legal move, expanded in order.
//
// mover is the player who made the move into this node; rewards are stored
// from the mover's perspective. player is the player to move at this node.
type decision struct {
	sync.RWMutex
	parent   *decision
	mover    string
	player   string
	moves    []game.Action
	children []*decision
	rewards  float64
	visits   float64
}

func newDecision(parent *decision, mover string, state game.State) *decision {
	moves := state.LegalMoves()
	return &decision{
		parent:   parent,
		mover:    mover,
		player:   state.Player(),
		moves:    moves,
		children: make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand walks one level down the tree: it adds a child for the
// next unexplored move, or selects the max-UCB child when fully expanded.
// Terminal nodes return themselves.
func (d *decision) SelectOrExpand(state game.State) (child *decision, childState game.State, added bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.children) < len(d.moves) { // Expandable node
		move := d.moves[len(d.children)]
		childState = state.Play(move)
		child = newDecision(d, d.player, childState)
		d.children = append(d.children, child)
		child.applyLoss()
		return child, childState, true
	}

	ith := d.pickChild()
	child = d.children[ith]
	child.applyLoss()
	return child, state.Play(d.moves[ith]), false
}

func (d *decision) pickChild() int {
	if d.visits == 0 {
		panic("node has children but no visits")
	}

	normalizer := cSquared * math.Log(d.visits)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) score(normalizer float64) float64 {
	d.RLock()
	defer d.RUnlock()

	return ucb1(d.rewards, d.visits, normalizer)
}

// Backup folds a simulation result into the node and returns its parent.
// score is in [0, 1] from player's perspective.
func (d *decision) Backup(player string, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Loss is only ever applied below the root
		d.reverseLoss()
	}

	if d.mover == player {
		d.rewards += score
	} else {
		d.rewards += 1 - score
	}
	d.visits++

	return d.parent
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// bestMove returns the most-visited child's move.
func (d *decision) bestMove() game.Action {
	if len(d.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxVisits := d.children[0].Visits()
	for i, child := range d.children[1:] {
		if v := child.Visits(); v > maxVisits {
			maxVisits = v
			bestIndex = i + 1
		}
	}
	return d.moves[bestIndex]
}

func ucb1(rewards, visits, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/visits + math.Sqrt(c2LnN/visits)
}
