package engine

import (
	"github.com/rs/zerolog/log"

	"hive/game"
	"hive/searcher"
)

// MCTSAgent adapts a searcher.MCTS to the Agent interface.
type MCTSAgent struct {
	Search *searcher.MCTS
}

func (a *MCTSAgent) FindMove(state *game.GameState) game.Action {
	move, metrics := a.Search.FindMove(state)
	if metrics.Episodes > 0 {
		log.Debug().Int64("episodes", metrics.Episodes).
			Int64("fullPlayouts", metrics.FullPlayouts).
			Dur("took", metrics.Duration).Msg("search finished")
	}
	return move
}
