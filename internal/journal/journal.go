// Package journal is the append-only game journal spec.md §6 requires:
// one JSON-line record per submitted action, each holding the acting
// player's visible_state snapshot immediately before the action, the
// action itself, and the result it produced — enough to replay a game
// without re-deriving any hidden information. It never feeds back into
// the engine; replay is a debugging/analysis concern, not a resume
// mechanism (resume lives entirely in state.Game, never in this
// package), mirroring `original_source/bob/mtg/journal.py`'s logs-only
// `GameJournal.append`.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/arcanecore/phase1/internal/engine"
)

// Journal appends one Entry per submitted action to a JSONL file.
type Journal struct {
	path string
	mu   sync.Mutex
}

// Open prepares the journal file's parent directory and returns a
// Journal ready to append to path. It does not truncate an existing
// file — a rerun with the same path appends to history rather than
// silently losing it.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}
	return &Journal{path: path}, nil
}

// Entry is one journal line: the (visible_state_snapshot, submitted_action,
// action_result) triple spec.md §6 names, tagged with the game id and a
// wall-clock timestamp.
type Entry struct {
	TSUTC          string                `json:"ts_utc"`
	GameID         string                `json:"game_id"`
	VisibleState   engine.VisibleState   `json:"visible_state_snapshot"`
	SubmittedAction engine.Action        `json:"submitted_action"`
	ActionResult   engine.ActionResult   `json:"action_result"`
}

// Append writes one Entry as a JSON line. Safe for concurrent use,
// though a single engine.Engine is single-threaded per game; the lock
// exists so nothing else writing to the same file path interleaves
// partial lines.
func (j *Journal) Append(gameID string, snapshot engine.VisibleState, action engine.Action, result engine.ActionResult) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	line, err := json.Marshal(Entry{
		TSUTC:           time.Now().UTC().Format(time.RFC3339Nano),
		GameID:          gameID,
		VisibleState:    snapshot,
		SubmittedAction: action,
		ActionResult:    result,
	})
	if err != nil {
		return fmt.Errorf("marshal journal entry: %w", err)
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write journal line: %w", err)
	}
	return nil
}

// Summary is the whole-game snapshot WriteSummary persists once a game
// ends: enough to answer "who won and how, and how many actions did it
// take" without replaying the full journal.
type Summary struct {
	GameID     string `json:"game_id"`
	WinnerID   string `json:"winner_id"`
	Reason     string `json:"reason"`
	ActionCount int   `json:"action_count"`
}

// WriteSummary writes summary as pretty-printed JSON to path, overwriting
// any existing file — a summary file is a point-in-time snapshot, not an
// append-only log.
func WriteSummary(path string, summary Summary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create summary directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal game summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write game summary: %w", err)
	}
	return nil
}
