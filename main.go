package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"durak/engine"
	"durak/experiments"
	"durak/game"
	"durak/player"
	"durak/searcher"
	"durak/searcher/agent"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func envInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return n
}

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "heuristic", "heuristic, random, epsilon or throughput experiment, or play against the search")
	players := flag.Int("players", envInt("DURAK_PLAYERS", 2), "Number of players")
	games := flag.Int("games", envInt("DURAK_GAMES", 10), "Number of games per experiment")
	iterations := flag.Int("iterations", envInt("DURAK_ITERATIONS", 1000), "Number of MCTS episodes per move")
	seed := flag.Uint64("seed", uint64(envInt("DURAK_SEED", int(time.Now().UnixNano()))), "Random seed")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var baseline player.Policy
	switch *mode {
	case "heuristic":
		baseline = player.Heuristic{}
	case "random":
		baseline = player.Random{}
	case "epsilon":
		baseline = player.NewEpsilonHeuristic()
	case "throughput":
		results, err := experiments.Throughput(*players, time.Second, []int{1, 2, 4, 8}, *seed)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		for _, metric := range results {
			fmt.Printf("goroutines %d: %d episodes\n", metric.Goroutines, metric.Episodes)
		}
		return
	case "play":
		if err := play(*players, *iterations, *seed); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
		return
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}

	losers, err := experiments.Run(baseline, *iterations, *games, *players, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for i, loser := range losers {
		fmt.Printf("game %d: durak %d\n", i+1, loser)
	}
}

// play seats a human at position 0 against search agents.
func play(players, iterations int, seed uint64) error {
	rng := rand.New(rand.NewSource(seed))
	state, err := game.New(players, game.WithSeed(rng.Uint64()))
	if err != nil {
		return err
	}
	agents := []agent.Agent{agent.NewHumanAgent(player.NewHuman(os.Stdin, os.Stdout))}
	for i := 1; i < players; i++ {
		mcts, err := searcher.NewMCTS(searcher.WithEpisodes(iterations), searcher.WithSeed(rng.Uint64()))
		if err != nil {
			return err
		}
		agents = append(agents, agent.NewEndgameAgent(mcts, rand.New(rand.NewSource(rng.Uint64()))))
	}

	e, err := engine.NewLocalEngine(state, agents)
	if err != nil {
		return err
	}
	gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	if gameMetric.Loser == 0 {
		fmt.Println("you are the durak")
	} else {
		fmt.Println("you are not the durak")
	}
	return nil
}
