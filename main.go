package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hive/engine"
	"hive/searcher"
)

type config struct {
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	runSelfPlay()
}

// runSelfPlay pits two search configurations against each other for a
// handful of games and tallies the results.
func runSelfPlay() {
	numGames := 10
	white := config{goroutines: 8, duration: 200 * time.Millisecond, cutoff: 60}
	black := config{goroutines: 8, duration: 200 * time.Millisecond, cutoff: 60}

	results := map[string]int{}
	fmt.Printf("Running %d self-play games...\n", numGames)
	for i := 0; i < numGames; i++ {
		winner := runGame(white, black)
		if winner == "" {
			winner = "DRAW"
		}
		results[winner]++
		fmt.Printf("Game %d over! Winner: %s\n", i+1, winner)
	}
	fmt.Printf("Results: %v\n", results)
}

// runGame executes a single game between two agents and returns the winner.
func runGame(white, black config) string {
	e := engine.NewLocalEngine(
		&engine.MCTSAgent{Search: createMCTS(white)},
		&engine.MCTSAgent{Search: createMCTS(black)},
	)
	return e.Run()
}

func createMCTS(cfg config) *searcher.MCTS {
	options := []searcher.Option{searcher.WithMetrics()}

	if cfg.episodes > 0 {
		options = append(options, searcher.WithEpisodes(cfg.episodes))
	}
	if cfg.duration > 0 {
		options = append(options, searcher.WithDuration(cfg.duration))
	}
	if cfg.cutoff > 0 {
		options = append(options, searcher.WithCutoff(cfg.cutoff))
	}

	return searcher.NewMCTS(cfg.goroutines, options...)
}
