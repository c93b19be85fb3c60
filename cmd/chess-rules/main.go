// chess-rules replays move lists under the rules of chess and reports how each game stands.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if _, err := newGame(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error in start position: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	items, unreadable := readInputs(inputFiles(), cfg)

	writer := output.NewSummaryWriter(cfg.OutputFile, cfg)
	stats, err := replayAll(items, cfg, writer)
	if err == nil {
		err = writer.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	cfg.Logf(config.Summary, "%d game(s) replayed, %d failed, %d finished.",
		stats.Replayed, stats.Failed, stats.Finished)
	if cfg.Duplicate.Enabled() {
		cfg.Logf(config.Summary, "%d duplicate game(s).", stats.Duplicates)
	}

	if stats.Failed > 0 || unreadable > 0 {
		os.Exit(1)
	}
}

// inputFiles returns the files named on the command line and in the -f list.
func inputFiles() []string {
	files := flag.Args()
	if *fileListFile == "" {
		return files
	}

	file, err := os.Open(*fileListFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file list %s: %v\n", *fileListFile, err)
		os.Exit(1)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" && !strings.HasPrefix(name, "#") {
			files = append(files, name)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
		os.Exit(1)
	}
	return files
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile opens the file that receives duplicate games.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}
	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [move-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays each file (or stdin) as one game of whitespace-separated moves.\n")
	fmt.Fprintf(os.Stderr, "Move numbers, results, comments and variations are skipped.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notation:\n")
	fmt.Fprintf(os.Stderr, "  san         e4 exd5 Nbd7 R1e2 e8=Q O-O O-O-O\n")
	fmt.Fprintf(os.Stderr, "  coordinate  e2e4 e2-e4 e7e8q (castle as e1g1 or king onto rook)\n")
	fmt.Fprintf(os.Stderr, "\nExit status is 1 if any game contains an illegal or ambiguous move.\n")
}
