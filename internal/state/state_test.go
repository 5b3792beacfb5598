package state

import "testing"

func TestNewGameRequiresExactlyTwoPlayers(t *testing.T) {
	if _, err := NewGame([]string{"P1"}, 1); err == nil {
		t.Fatalf("expected an error for a single player")
	}
	if _, err := NewGame([]string{"P1", "P2", "P3"}, 1); err == nil {
		t.Fatalf("expected an error for three players")
	}
}

func TestNewGameStartsActivePlayerAtTurnOneUntap(t *testing.T) {
	g, err := NewGame([]string{"P1", "P2"}, 1)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.Turn.ActivePlayerID != "P1" || g.StartingPlayerID != "P1" {
		t.Fatalf("expected P1 to start, got active=%q starting=%q", g.Turn.ActivePlayerID, g.StartingPlayerID)
	}
	if g.Turn.TurnNumber != 1 || g.Turn.Phase != PhaseBegin || g.Turn.Step != StepUntap {
		t.Fatalf("expected turn 1 BEGIN/UNTAP, got %d %s/%s", g.Turn.TurnNumber, g.Turn.Phase, g.Turn.Step)
	}
	for _, p := range g.Players {
		if p.Life != 20 {
			t.Fatalf("expected starting life 20, got %d", p.Life)
		}
	}
}

func TestNextInstanceIDIsMonotonicAndNeverReused(t *testing.T) {
	g, _ := NewGame([]string{"P1", "P2"}, 1)
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		id := g.NextInstanceID()
		if seen[id] {
			t.Fatalf("instance id %q reused", id)
		}
		seen[id] = true
	}
}

func TestOpponent(t *testing.T) {
	g, _ := NewGame([]string{"P1", "P2"}, 1)
	if got := g.Opponent("P1"); got != "P2" {
		t.Fatalf("Opponent(P1) = %q, want P2", got)
	}
	if got := g.Opponent("P2"); got != "P1" {
		t.Fatalf("Opponent(P2) = %q, want P1", got)
	}
}

func TestOpponentPanicsOnUnknownPlayer(t *testing.T) {
	g, _ := NewGame([]string{"P1", "P2"}, 1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Opponent to panic for an unknown player id")
		}
	}()
	g.Opponent("P3")
}

func TestStepsOfAndNextPhaseWrap(t *testing.T) {
	if got := StepsOf(PhaseCombat); len(got) != 5 {
		t.Fatalf("expected 5 combat steps, got %d", len(got))
	}
	if got := NextPhase(PhaseMain1); got != PhaseCombat {
		t.Fatalf("NextPhase(MAIN1) = %q, want COMBAT", got)
	}
	if got := NextPhase(PhaseEnd); got != PhaseBegin {
		t.Fatalf("expected PhaseEnd to wrap to PhaseBegin, got %q", got)
	}
}

func TestTurnCombatDeclarationTracking(t *testing.T) {
	turn := NewTurn("P1")
	turn.Attackers = append(turn.Attackers, Attacker{InstanceID: "a1", Defending: "P2"})
	turn.Blockers["a1"] = []string{"b1", "b2"}

	if !turn.IsAttacker("a1") {
		t.Fatalf("expected a1 to be recorded as an attacker")
	}
	if turn.IsAttacker("a2") {
		t.Fatalf("a2 was never declared as an attacker")
	}
	if !turn.IsBlocked("a1") {
		t.Fatalf("expected a1 to be blocked")
	}
	if got := turn.BlockersOf("a1"); len(got) != 2 {
		t.Fatalf("expected 2 blockers, got %d", len(got))
	}

	turn.ResetCombat()
	if turn.IsAttacker("a1") || turn.IsBlocked("a1") || turn.AttackersDeclared || turn.BlockersDeclared {
		t.Fatalf("expected ResetCombat to clear all combat declarations")
	}
}

func TestTemporaryEffectExpired(t *testing.T) {
	untilCleanupThisTurn := TemporaryEffect{ExpiresTurn: 3, ExpiresStep: StepCleanup}
	if untilCleanupThisTurn.Expired(2, StepCleanup) {
		t.Fatalf("should not be expired before its turn arrives")
	}
	if untilCleanupThisTurn.Expired(3, StepMain1) {
		t.Fatalf("should not be expired before reaching its expiration step")
	}
	if !untilCleanupThisTurn.Expired(3, StepCleanup) {
		t.Fatalf("should be expired once its turn and step are reached")
	}
	if !untilCleanupThisTurn.Expired(4, StepUntap) {
		t.Fatalf("should be expired on any later turn")
	}

	defaultExpiry := TemporaryEffect{ExpiresTurn: 1}
	if defaultExpiry.Expired(1, StepMain1) {
		t.Fatalf("an effect with no explicit step should only expire at cleanup")
	}
	if !defaultExpiry.Expired(1, StepCleanup) {
		t.Fatalf("an effect with no explicit step should expire at its turn's cleanup")
	}
}

func TestExtraTurnQueueFIFO(t *testing.T) {
	var q ExtraTurnQueue
	if got := q.Pop(); got != "" {
		t.Fatalf("expected an empty queue to pop empty, got %q", got)
	}
	q.Push("P1")
	q.Push("P2")
	if got := q.Pop(); got != "P1" {
		t.Fatalf("expected FIFO order, got %q first", got)
	}
	if got := q.Pop(); got != "P2" {
		t.Fatalf("expected FIFO order, got %q second", got)
	}
	if got := q.Pop(); got != "" {
		t.Fatalf("expected the drained queue to pop empty, got %q", got)
	}
}

func TestRandomShuffleIsDeterministicForASeed(t *testing.T) {
	shuffle := func(seed int64) []int {
		r := NewRandom(seed)
		vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
		r.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
		return vals
	}
	a := shuffle(42)
	b := shuffle(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected the same seed to reproduce the same shuffle, diverged at index %d", i)
		}
	}
}
