package searcher

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"hive/game"
)

const defaultCutoff = 200

type Option func(m *MCTS)

// MCTS runs tree-parallel Monte Carlo tree search with virtual loss. It
// consumes only game.State: LegalMoves and Play.
type MCTS struct {
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
	evaluate   game.Evaluate
	metrics    MetricsCollector
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithCutoff truncates rollouts after depth moves and scores the reached
// position with the evaluation function instead of playing out.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: goroutines,
		cutoff:     defaultCutoff,
		evaluate:   game.EvaluateQueenSafety,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// FindMove searches from state and returns the most-visited root move,
// or nil if the position has no legal moves.
func (m *MCTS) FindMove(state game.State) (game.Action, MoveMetrics) {
	root := newDecision(nil, "", state)
	if len(root.moves) == 0 {
		return nil, MoveMetrics{}
	}
	if len(root.moves) == 1 {
		return root.moves[0], MoveMetrics{}
	}

	m.metrics.Start()
	if m.episodes > 0 {
		m.iterate(root, state)
	} else {
		m.countdown(root, state)
	}
	return root.bestMove(), m.metrics.Complete()
}

func (m *MCTS) iterate(root *decision, state game.State) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range task {
				m.simulate(root, state)
				m.metrics.AddEpisode()
			}
		}()
	}
	wg.Wait()
}

func (m *MCTS) countdown(root *decision, state game.State) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, state)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *decision, state game.State) {
	newNode, newState := selectThenExpand(root, state)
	player, score := m.rollout(newState)
	backup(newNode, player, score)
}

func selectThenExpand(root *decision, state game.State) (*decision, game.State) {
	parent := root
	child, state, added := parent.SelectOrExpand(state)
	for child != parent && !added {
		parent = child
		child, state, added = parent.SelectOrExpand(state)
	}
	return child, state
}

// rollout plays random moves until the game ends or the cutoff is reached,
// returning a score in [0, 1] from the returned player's perspective. A
// draw or stalled position scores 0.5 for everyone.
func (m *MCTS) rollout(state game.State) (string, float64) {
	depth := 0
	moves := state.LegalMoves()
	for len(moves) > 0 && depth < m.cutoff {
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	if len(moves) == 0 { // Game over before cutoff
		m.metrics.AddFullPlayout()
		if winner := state.Winner(); winner != "" {
			return winner, 1.0
		}
		return "", 0.5
	}

	// At the cutoff, score the position from the current player's view,
	// mapped from [-1, 1] to [0, 1].
	return state.Player(), (m.evaluate(state) + 1) / 2
}

func backup(node *decision, player string, score float64) {
	for node != nil {
		node = node.Backup(player, score)
	}
}
