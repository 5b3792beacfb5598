// Command phase1-cli runs a local hot-seat duel in a terminal: both
// players take turns at the same keyboard, each shown only their own
// VisibleState between prompts. Grounded on the teacher's tcgx-cli/
// internal/net.Client REPL (renderState/renderActions/readChoice), with
// the TCP host/join split dropped — this engine runs one process with
// no network boundary between the two seats.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arcanecore/phase1/internal/card"
	_ "github.com/arcanecore/phase1/internal/card/pool" // registers the bundled card pool
	"github.com/arcanecore/phase1/internal/deckfile"
	"github.com/arcanecore/phase1/internal/engine"
	"github.com/arcanecore/phase1/internal/journal"
	"github.com/arcanecore/phase1/internal/log"
	"github.com/arcanecore/phase1/internal/pregame"
)

func main() {
	decksFile := flag.String("decks", "decks.yaml", "path to decks YAML file")
	deckAName := flag.String("deck-a", "", "deck name for P1 (goes first)")
	deckBName := flag.String("deck-b", "", "deck name for P2")
	seed := flag.Int64("seed", 1, "RNG seed")
	journalFile := flag.String("journal", "", "path to write a game journal (omit to skip journaling)")
	flag.Parse()

	if err := run(*decksFile, *deckAName, *deckBName, *seed, *journalFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(decksFile, deckAName, deckBName string, seed int64, journalFile string) error {
	db, err := card.BuildDB()
	if err != nil {
		return fmt.Errorf("build card database: %w", err)
	}
	df, err := deckfile.Parse(decksFile)
	if err != nil {
		return fmt.Errorf("load deck file: %w", err)
	}
	deckA, ok := df.ByName(deckAName)
	if !ok {
		return fmt.Errorf("unknown deck %q", deckAName)
	}
	deckB, ok := df.ByName(deckBName)
	if !ok {
		return fmt.Errorf("unknown deck %q", deckBName)
	}

	reader := bufio.NewReader(os.Stdin)
	logger := log.NewTextLogger(os.Stdout)

	eng, err := engine.NewGame(db, seed,
		engine.Deck{PlayerID: "P1", CardIDs: deckA.CardIDs(), DeckName: deckA.Name},
		engine.Deck{PlayerID: "P2", CardIDs: deckB.CardIDs(), DeckName: deckB.Name},
		logger,
	)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	err = pregame.Run(eng, []pregame.PlayerSetup{
		{PlayerID: "P1", DeckName: deckA.Name, OnPlay: true, Decider: &stdinDecider{reader: reader, label: "P1"}},
		{PlayerID: "P2", DeckName: deckB.Name, OnPlay: false, Decider: &stdinDecider{reader: reader, label: "P2"}},
	})
	if err != nil {
		return fmt.Errorf("pregame mulligans: %w", err)
	}

	var jrnl *journal.Journal
	gameID := eng.VisibleState("P1").GameID
	if journalFile != "" {
		jrnl, err = journal.Open(journalFile)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
	}

	actionCount := 0
	for {
		info := eng.GameOver()
		if info.Over {
			fmt.Println()
			fmt.Println("=== GAME OVER ===")
			fmt.Printf("Winner: %s (%s)\n", info.WinnerID, info.Reason)
			if jrnl != nil {
				_ = journal.WriteSummary(journalFile+".summary.json", journal.Summary{
					GameID: gameID, WinnerID: info.WinnerID, Reason: info.Reason, ActionCount: actionCount,
				})
			}
			return nil
		}

		actorID := activePlayer(eng)
		view := eng.VisibleState(actorID)
		printState(view)

		descriptors := eng.GetActionList(actorID)
		action, ok := promptAction(reader, actorID, view, descriptors)
		if !ok {
			continue
		}

		snapshot := eng.VisibleState(actorID)
		result := eng.SubmitAction(action)
		actionCount++
		if jrnl != nil {
			_ = jrnl.Append(gameID, snapshot, action, result)
		}
		if !result.OK {
			fmt.Printf("  -> rejected: %s\n", result.Error.Message)
			continue
		}
		for _, line := range result.Events {
			fmt.Printf("  %s\n", line)
		}
	}
}

// activePlayer returns whichever player the engine is currently waiting
// on: the pending-decision holder if one is outstanding, otherwise
// whoever holds priority.
func activePlayer(eng *engine.Engine) string {
	for _, pid := range []string{"P1", "P2"} {
		v := eng.VisibleState(pid)
		if v.Pending != nil {
			if v.Pending.ForViewer {
				return pid
			}
			continue
		}
		if v.PriorityHolderID == pid {
			return pid
		}
	}
	return "P1"
}

func printState(v engine.VisibleState) {
	fmt.Println()
	fmt.Printf("Turn %d  %s/%s\n", v.TurnNumber, v.Phase, v.Step)
	fmt.Printf("%s: %d life | Opponent: %d life\n", v.ViewerID, v.OwnLife, v.OpponentLife)
	fmt.Printf("Hand: %s\n", strings.Join(v.OwnHand, ", "))
	if len(v.Battlefield) > 0 {
		fmt.Println("Battlefield:")
		for _, p := range v.Battlefield {
			fmt.Printf("  %+v\n", p)
		}
	}
	if v.Pending != nil {
		fmt.Printf("Pending decision: %+v\n", *v.Pending)
	}
}

func promptAction(reader *bufio.Reader, actorID string, view engine.VisibleState, descriptors []engine.ActionDescriptor) (engine.Action, bool) {
	if len(descriptors) == 0 {
		fmt.Println("No legal actions; waiting.")
		return engine.Action{}, false
	}
	fmt.Println("Actions:")
	for i, d := range descriptors {
		fmt.Printf("  %d) %s\n", i+1, describeDescriptor(d))
	}
	fmt.Print("> ")
	line, _ := reader.ReadString('\n')
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 1 || idx > len(descriptors) {
		fmt.Println("invalid choice")
		return engine.Action{}, false
	}
	d := descriptors[idx-1]

	action := engine.Action{Type: d.Type, ActorID: actorID}

	if d.Type == engine.ActionResolveDecision {
		fmt.Print("choice(s), comma-separated: ")
		line, _ = reader.ReadString('\n')
		action.Choices = splitCSV(line)
		return action, true
	}

	if len(d.ObjectChoices) > 0 {
		for i, oc := range d.ObjectChoices {
			fmt.Printf("  %d) %s (%s)\n", i+1, oc.CardID, oc.InstanceID)
		}
		fmt.Print("object> ")
		line, _ = reader.ReadString('\n')
		oi, _ := strconv.Atoi(strings.TrimSpace(line))
		if oi < 1 || oi > len(d.ObjectChoices) {
			fmt.Println("invalid object choice")
			return engine.Action{}, false
		}
		action.ObjectID = d.ObjectChoices[oi-1].InstanceID
	}

	if d.Type == engine.ActionDeclareAttackers {
		fmt.Print("attacker instance ids, comma-separated (blank for none): ")
		line, _ = reader.ReadString('\n')
		action.Attackers = splitCSV(line)
	}
	if d.Type == engine.ActionDeclareBlockers {
		fmt.Print("blocks as attackerID=blockerID,blockerID; attackerID2=blockerID3 (blank for none): ")
		line, _ = reader.ReadString('\n')
		action.Blockers = parseBlockAssignments(line)
	}

	for _, group := range d.TargetGroups {
		if len(group.Candidates) == 0 {
			continue
		}
		fmt.Printf("targets (min %d, max %d):\n", group.Min, group.Max)
		for i, c := range group.Candidates {
			fmt.Printf("  %d) %s\n", i+1, targetLabel(c))
		}
		fmt.Print("target(s)> ")
		line, _ = reader.ReadString('\n')
		var refs []engine.TargetRef
		for _, tok := range splitCSV(line) {
			ti, err := strconv.Atoi(tok)
			if err != nil || ti < 1 || ti > len(group.Candidates) {
				continue
			}
			refs = append(refs, group.Candidates[ti-1])
		}
		action.Targets = append(action.Targets, refs)
	}

	if d.XMax > 0 {
		fmt.Printf("X value (0-%d): ", d.XMax)
		line, _ = reader.ReadString('\n')
		action.XValue, _ = strconv.Atoi(strings.TrimSpace(line))
	}

	return action, true
}

func describeDescriptor(d engine.ActionDescriptor) string {
	s := string(d.Type)
	if d.UsesFlashback {
		s += " (flashback)"
	}
	if len(d.ObjectChoices) == 1 {
		s += " " + d.ObjectChoices[0].CardID
	}
	return s
}

func targetLabel(r engine.TargetRef) string {
	if r.IsPlayer() {
		return "player:" + r.PlayerID
	}
	return r.InstanceID
}

func parseBlockAssignments(line string) map[string][]string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	out := map[string][]string{}
	for _, clause := range strings.Split(line, ";") {
		parts := strings.SplitN(clause, "=", 2)
		if len(parts) != 2 {
			continue
		}
		attackerID := strings.TrimSpace(parts[0])
		if attackerID == "" {
			continue
		}
		out[attackerID] = splitCSV(parts[1])
	}
	return out
}

func splitCSV(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	parts := strings.Split(line, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// stdinDecider is the terminal's pregame.Decider: it prints the hand and
// asks the human at the keyboard to keep or mulligan, and which cards to
// bottom, mirroring the teacher's client.go readYesNo/readCardIndices
// prompting style.
type stdinDecider struct {
	reader *bufio.Reader
	label  string
}

func (d *stdinDecider) DecideMulligan(ctx pregame.MulliganContext) pregame.MulliganDecision {
	fmt.Printf("\n[%s] Opening hand (mulligan #%d):\n", d.label, ctx.MulligansTaken)
	for _, c := range ctx.Hand {
		fmt.Printf("  %s\n", c.CardID)
	}
	fmt.Print("Keep this hand? (y/n): ")
	line, _ := d.reader.ReadString('\n')
	keep := strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
	return pregame.MulliganDecision{Keep: keep}
}

func (d *stdinDecider) DecideBottom(ctx pregame.BottomContext) pregame.BottomDecision {
	fmt.Printf("[%s] Bottom %d card(s):\n", d.label, ctx.BottomingRequired)
	for i, c := range ctx.Hand {
		fmt.Printf("  %d) %s (%s)\n", i+1, c.CardID, c.InstanceID)
	}
	fmt.Print("indices, comma-separated> ")
	line, _ := d.reader.ReadString('\n')
	var ids []string
	for _, tok := range splitCSV(line) {
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 1 || idx > len(ctx.Hand) {
			continue
		}
		ids = append(ids, ctx.Hand[idx-1].InstanceID)
	}
	return pregame.BottomDecision{InstanceIDs: ids}
}
