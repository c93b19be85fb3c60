package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// SummaryWriter is the interface for writing game summaries to output.
// Different implementations handle different output formats (text, JSON).
type SummaryWriter interface {
	// WriteSummary writes a single summary to the output.
	WriteSummary(s *GameSummary) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewSummaryWriter returns the writer selected by cfg.
func NewSummaryWriter(w io.Writer, cfg *config.Config) SummaryWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes summaries as move text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteSummary writes a header line, the numbered moves and, when
// configured, the final board.
func (tw *TextWriter) WriteSummary(s *GameSummary) error {
	header := s.ID
	if s.Source != "" {
		header = s.Source + " " + header
	}
	if _, err := fmt.Fprintf(tw.w, "[%s] %s (%s)\n", header, s.Result, s.Reason); err != nil {
		return err
	}

	ow := NewOutputWriter(tw.w, int(tw.cfg.Output.MaxLineLength))
	WriteMoveText(ow, s.Moves, s.FirstMover, s.Result)

	if s.Error != "" {
		if _, err := fmt.Fprintf(tw.w, "error: %s\n", s.Error); err != nil {
			return err
		}
	}
	if tw.cfg.Output.ShowBoard && s.Board != nil {
		RenderBoard(tw.w, s.Board)
	}
	_, err := fmt.Fprintln(tw.w)
	return err
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes summaries in JSON format.
// It buffers summaries and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*GameSummary
	single bool // If true, write each summary immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches summaries and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*GameSummary, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each summary immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteSummary buffers a summary for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteSummary(s *GameSummary) error {
	if jw.single {
		return WriteSummaryJSON(jw.w, s)
	}

	// Buffer for batch output
	jw.games = append(jw.games, s)
	return nil
}

// Flush writes all buffered summaries as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
