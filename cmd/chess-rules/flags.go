// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Print the final board after each game")

	// Game options
	startPlacement = flag.String("fen", config.StandardPlacement, "FEN piece placement games start from")
	firstMover     = flag.String("first", "white", "Team that moves first: white or black")
	drawPlies      = flag.Int("drawplies", config.DefaultDrawPlies, "Reversible plies that draw a game")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games that repeat an earlier game")
	duplicateFile      = flag.String("d", "", "Output duplicate games to this file")
	exactDuplicates    = flag.Bool("exactdup", false, "Duplicates must repeat the move sequence, not just the final position")

	// Processing options
	workers     = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	stopOnError = flag.Bool("stoponerror", false, "Stop after the first game with an illegal move")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of move files to process (one per line)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("verbose", false, "Log every ply as it is played")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game summaries in the log)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyOutputFlags(cfg)
	if err := applyGameFlags(cfg); err != nil {
		return err
	}

	applyDuplicateFlags(cfg)

	cfg.Workers = *workers
	cfg.StopOnError = *stopOnError

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
	return nil
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.OutputFilename = *outputFile
}

// applyGameFlags configures the rules games start with.
func applyGameFlags(cfg *config.Config) error {
	team, err := config.ParseTeam(*firstMover)
	if err != nil {
		return err
	}
	cfg.Game.FirstMover = team
	cfg.Game.StartPlacement = *startPlacement
	cfg.Game.DrawPlies = *drawPlies
	return nil
}

// applyDuplicateFlags configures duplicate detection settings.
// The duplicate file itself is opened by setupDuplicateFile.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
}
