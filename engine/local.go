package engine

import (
	"github.com/rs/zerolog/log"

	"hive/game"
)

// MaxPlies caps runaway games; a game still in progress at the cap is
// scored as a draw.
const MaxPlies = 300

// Agent picks a move for the color to move. A nil move means the agent has
// no legal action.
type Agent interface {
	FindMove(state *game.GameState) game.Action
}

// Engine drives a local game between two agents, White first.
type Engine struct {
	State  *game.GameState
	Agents map[game.Color]Agent
}

func NewLocalEngine(white, black Agent) *Engine {
	return &Engine{
		State:  game.NewGameState(),
		Agents: map[game.Color]Agent{game.White: white, game.Black: black},
	}
}

// Run executes the game loop until a win, a draw, a stalled position, or
// the ply cap. It returns the winner's identifier, "" for a draw.
func (e *Engine) Run() string {
	log.Info().Str("game", e.State.ID).Msg("game started")

	for e.State.Status == game.InProgress && e.State.TurnNumber <= MaxPlies {
		mover := e.State.CurrentTurn
		move := e.Agents[mover].FindMove(e.State)
		if move == nil {
			log.Info().Str("game", e.State.ID).Stringer("color", mover).
				Msg("no legal moves, game stalled")
			return ""
		}

		next, err := e.State.Apply(move)
		if err != nil {
			log.Error().Err(err).Str("game", e.State.ID).Stringer("color", mover).
				Stringer("move", move).Msg("agent returned an illegal move")
			return ""
		}

		log.Debug().Str("game", e.State.ID).Stringer("color", mover).
			Stringer("move", move).Int("ply", next.TurnNumber).Msg("move applied")
		e.State = next
	}

	winner := e.State.Winner()
	log.Info().Str("game", e.State.ID).Str("winner", winner).
		Int("plies", e.State.TurnNumber-1).Msg("game over")
	return winner
}
