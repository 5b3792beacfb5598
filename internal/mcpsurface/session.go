// Package mcpsurface wraps a single in-memory engine.Engine as an MCP
// tool surface: start_game, get_game_state, get_actions (which also
// returns the action schema) and submit_action, the same calls a CLI or
// web client would make against VisibleState/GetActionList/SubmitAction
// directly.
package mcpsurface

import (
	"fmt"
	"sync"

	"github.com/arcanecore/phase1/internal/card"
	_ "github.com/arcanecore/phase1/internal/card/pool" // registers the bundled card pool
	"github.com/arcanecore/phase1/internal/deckfile"
	"github.com/arcanecore/phase1/internal/engine"
	"github.com/arcanecore/phase1/internal/journal"
	"github.com/arcanecore/phase1/internal/log"
	"github.com/arcanecore/phase1/internal/pregame"
)

// activeSession is the singleton running game (one per MCP server
// process), mirroring the teacher's own activeSession/decksFile
// package-level singletons in internal/mcp/tools.go — this process
// hosts exactly one duel at a time.
var activeSession *Session

// decksPath is the YAML deck file new games load from, set by main
// before the server starts serving requests.
var decksPath string

// SetDecksPath records the deck file path new games should load from.
func SetDecksPath(path string) { decksPath = path }

// Session owns one running game plus its journal.
type Session struct {
	mu          sync.Mutex
	eng         *engine.Engine
	db          card.DB
	jrnl        *journal.Journal
	summaryPath string
	gameID      string
	actionCount int
	players     [2]string
}

// StartGame loads deckAName and deckBName from the configured deck
// file, builds the card database, starts a new game, runs the London
// mulligan loop with pregame.AlwaysKeepDecider (this surface has no
// tool call to ask a real player to mulligan yet — see DESIGN.md), and
// installs the result as the active session.
func StartGame(deckAName, deckBName string, seed int64, journalPath string) (*Session, error) {
	if activeSession != nil {
		return nil, fmt.Errorf("a game is already running; only one game at a time is supported")
	}
	if decksPath == "" {
		return nil, fmt.Errorf("no deck file configured")
	}

	db, err := card.BuildDB()
	if err != nil {
		return nil, fmt.Errorf("build card database: %w", err)
	}

	df, err := deckfile.Parse(decksPath)
	if err != nil {
		return nil, fmt.Errorf("load deck file: %w", err)
	}
	deckA, ok := df.ByName(deckAName)
	if !ok {
		return nil, fmt.Errorf("unknown deck %q", deckAName)
	}
	deckB, ok := df.ByName(deckBName)
	if !ok {
		return nil, fmt.Errorf("unknown deck %q", deckBName)
	}

	logger := log.NewMemoryLogger()
	eng, err := engine.NewGame(db, seed,
		engine.Deck{PlayerID: "P1", CardIDs: deckA.CardIDs(), DeckName: deckA.Name},
		engine.Deck{PlayerID: "P2", CardIDs: deckB.CardIDs(), DeckName: deckB.Name},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	err = pregame.Run(eng, []pregame.PlayerSetup{
		{PlayerID: "P1", DeckName: deckA.Name, OnPlay: true, Decider: pregame.AlwaysKeepDecider{}},
		{PlayerID: "P2", DeckName: deckB.Name, OnPlay: false, Decider: pregame.AlwaysKeepDecider{}},
	})
	if err != nil {
		return nil, fmt.Errorf("pregame mulligans: %w", err)
	}

	var jrnl *journal.Journal
	var summaryPath string
	if journalPath != "" {
		jrnl, err = journal.Open(journalPath)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		summaryPath = journalPath + ".summary.json"
	}

	sess := &Session{
		eng: eng, db: db, jrnl: jrnl, summaryPath: summaryPath,
		gameID: eng.VisibleState("P1").GameID, players: [2]string{"P1", "P2"},
	}
	activeSession = sess
	return sess, nil
}

// Active returns the running session, or nil if no game has started.
func Active() *Session { return activeSession }

// End clears the active session, called once a game reaches GameOver.
func (s *Session) End() {
	if activeSession == s {
		activeSession = nil
	}
}

// Submit applies action and, per spec.md §6's journal contract, records
// the (visible_state_snapshot, submitted_action, action_result) triple:
// the acting player's view immediately before the action, the action
// itself, and what it produced.
func (s *Session) Submit(action engine.Action) engine.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.eng.VisibleState(action.ActorID)
	result := s.eng.SubmitAction(action)
	s.actionCount++
	if s.jrnl != nil {
		_ = s.jrnl.Append(s.gameID, snapshot, action, result)
	}
	if s.eng.GameOver().Over {
		info := s.eng.GameOver()
		if s.jrnl != nil && s.summaryPath != "" {
			_ = journal.WriteSummary(s.summaryPath, journal.Summary{
				GameID:      s.gameID,
				WinnerID:    info.WinnerID,
				Reason:      info.Reason,
				ActionCount: s.actionCount,
			})
		}
		s.End()
	}
	return result
}

// Engine exposes the underlying engine for read-only calls
// (VisibleState, GetActionList, GetActionSchema, GameOver).
func (s *Session) Engine() *engine.Engine { return s.eng }
