package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"tdants/experiments"
	"tdants/meta"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Settings in .env only fill in what the environment leaves unset
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	mode := flag.String("mode", experiments.ModeTrain, "train or eval")
	games := flag.Int("games", meta.GAMES, "Number of games to play")
	seed := flag.Uint64("seed", 0, "Random seed, 0 for a clock based seed")
	selfPlay := flag.Bool("self-play", false, "Train against itself instead of a random player")
	tablePath := flag.String("table", envOr("TDANTS_TABLE", meta.TABLE_PATH), "Utility table file")
	outDir := flag.String("out", envOr("TDANTS_OUT", meta.OUT_DIR), "Directory for game records and charts, empty to skip")
	dbPath := flag.String("db", os.Getenv("TDANTS_DB"), "SQLite run ledger, empty to skip")
	window := flag.Int("window", 10, "Games in the learning curve's win rate window")
	maxMoves := flag.Int("max-moves", meta.MAX_MOVES, "Move limit per game")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	cfg := experiments.Config{
		Games:      *games,
		Seed:       *seed,
		SelfPlay:   *selfPlay,
		TablePath:  *tablePath,
		OutDir:     *outDir,
		LedgerPath: *dbPath,
		Window:     *window,
		MaxMoves:   *maxMoves,
	}

	var summary experiments.Summary
	switch *mode {
	case experiments.ModeTrain:
		summary, err = experiments.Run(cfg)
	case experiments.ModeEvaluate:
		summary, err = experiments.Evaluate(cfg)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s run failed", *mode)
	}

	printSummary(summary)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func printSummary(s experiments.Summary) {
	fmt.Printf("%s run %s\n", aurora.Bold(s.Mode), s.RunID)
	fmt.Printf("  games   %d\n", s.Games)
	fmt.Printf("  wins    %v\n", aurora.Green(s.Wins))
	fmt.Printf("  losses  %v\n", aurora.Red(s.Losses))
	fmt.Printf("  draws   %v\n", aurora.Yellow(s.Draws))
	fmt.Printf("  win rate %.1f%%\n", 100*s.WinRate())
	fmt.Printf("  table   %d utilities, epsilon %.4f\n", s.TableSize, s.Epsilon)
	if s.Dir != "" {
		fmt.Printf("  records %s\n", aurora.Blue(s.Dir))
	}
}
