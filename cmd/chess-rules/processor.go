package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// replayStats counts what happened to the replayed games.
type replayStats struct {
	Replayed   int // games whose result was reported
	Failed     int // games stopped by an unplayable move
	Finished   int // games that reached a terminal state
	Duplicates int // games that repeat an earlier one
}

// newGame starts a game with the configured placement and rules.
func newGame(cfg *config.Config) (*engine.Game, error) {
	board, err := engine.ParsePlacement(cfg.Game.StartPlacement)
	if err != nil {
		return nil, err
	}
	return engine.NewGame(board,
		engine.WithFirstMover(cfg.Game.FirstMover),
		engine.WithDrawPlies(cfg.Game.DrawPlies))
}

// readInputs reads each named file as one game, or stdin when no files are
// named. Files that cannot be read are reported and counted, not replayed.
func readInputs(files []string, cfg *config.Config) ([]worker.WorkItem, int) {
	if len(files) == 0 {
		item, err := readInput(os.Stdin, "", 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return nil, 1
		}
		return []worker.WorkItem{item}, 0
	}

	var items []worker.WorkItem
	unreadable := 0
	for _, filename := range files {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			unreadable++
			continue
		}

		item, err := readInput(file, filename, len(items))
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
			unreadable++
			continue
		}
		items = append(items, item)
	}
	cfg.Logf(config.Commentary, "Read %d file(s)", len(items))
	return items, unreadable
}

// readInput reads one move list.
func readInput(r io.Reader, name string, index int) (worker.WorkItem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return worker.WorkItem{}, err
	}
	return worker.WorkItem{Index: index, Source: name, Text: string(data)}, nil
}

// gameName labels a game in log lines.
func gameName(index int, source string) string {
	if source != "" {
		return source
	}
	return fmt.Sprintf("game %d", index+1)
}

// replayGame plays every move of item from the configured start. It stops
// at the first move that cannot be read or played, or that follows the end
// of the game, and reports it as a *errors.GameError.
func replayGame(item worker.WorkItem, cfg *config.Config) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, Source: item.Source}

	g, err := newGame(cfg)
	if err != nil {
		result.Err = &errors.GameError{Err: err, GameNum: item.Index + 1, File: item.Source}
		return result
	}
	result.Game = g
	name := gameName(item.Index, item.Source)

	fail := func(tok notation.Token, err error) worker.ProcessResult {
		result.Err = &errors.GameError{
			Err:      err,
			GameNum:  item.Index + 1,
			PlyNum:   g.Plies() + 1,
			MoveText: tok.Text,
			File:     item.Source,
		}
		return result
	}

	s := notation.NewScanner(strings.NewReader(item.Text))
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		if outcome := g.Status(); outcome.IsOver() {
			return fail(tok, errors.Wrapf(errors.ErrIllegalMove, "game already ended by %s", outcome.Reason))
		}

		req, err := notation.Parse(tok.Text)
		if err != nil {
			return fail(tok, err)
		}
		rm, err := g.Play(req, g.ToMove())
		if err != nil {
			return fail(tok, err)
		}
		cfg.Logf(config.Commentary, "%s: ply %d %s", name, g.Plies(), rm)
	}
	if err := s.Err(); err != nil {
		result.Err = &errors.GameError{Err: err, GameNum: item.Index + 1, File: item.Source}
		return result
	}

	if claimed, actual := s.Result(), g.Status().Result(); claimed != "" && claimed != actual {
		cfg.Logf(config.Summary, "%s: result given as %s but the position stands at %s", name, claimed, actual)
	}
	return result
}

// replayAll replays items on a worker pool and writes their summaries in
// input order.
func replayAll(items []worker.WorkItem, cfg *config.Config, writer output.SummaryWriter) (replayStats, error) {
	var stats replayStats
	var writeErr error
	record := func(err error) {
		if err != nil && writeErr == nil {
			writeErr = err
		}
	}

	var detector *hashing.DuplicateDetector
	var dupWriter output.SummaryWriter
	if cfg.Duplicate.Enabled() {
		detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch)
	}
	if cfg.Duplicate.DuplicateFile != nil {
		dupWriter = output.NewSummaryWriter(cfg.Duplicate.DuplicateFile, cfg)
	}

	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return replayGame(item, cfg)
	}, worker.WithWorkers(numWorkers), worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	// Results are consumed on this goroutine only, so the writer needs no locking.
	worker.InOrder(pool.Results(), func(r worker.ProcessResult) {
		stats.Replayed++
		name := gameName(r.Index, r.Source)

		if r.Err != nil {
			stats.Failed++
			cfg.Logf(config.Summary, "%v", r.Err)
			if cfg.StopOnError {
				pool.Stop()
			}
		}
		if r.Game == nil {
			return
		}

		s := output.NewSummary(r.Game, r.Source, r.Err)
		if r.Game.Status().IsOver() {
			stats.Finished++
		}
		cfg.Logf(config.Summary, "%s: %s (%s) after %d plies", name, s.Result, s.Reason, s.Plies)

		// Only completed replays take part in duplicate detection.
		if detector != nil && r.Err == nil && detector.CheckAndAdd(r.Game) {
			stats.Duplicates++
			cfg.Logf(config.Summary, "%s: duplicate of an earlier game", name)
			if dupWriter != nil {
				record(dupWriter.WriteSummary(s))
			}
			if cfg.Duplicate.Suppress {
				return
			}
		}
		record(writer.WriteSummary(s))
	})

	if dupWriter != nil {
		record(dupWriter.Close())
	}
	return stats, writeErr
}
