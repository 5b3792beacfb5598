package pregame

import (
	"testing"

	"github.com/arcanecore/phase1/internal/card"
	_ "github.com/arcanecore/phase1/internal/card/pool"
	"github.com/arcanecore/phase1/internal/engine"
	"github.com/arcanecore/phase1/internal/log"
)

func testDB(t *testing.T) card.DB {
	t.Helper()
	db, err := card.BuildDB()
	if err != nil {
		t.Fatalf("build card db: %v", err)
	}
	return db
}

// newTestEngine builds a fresh two-player game with a 40-card
// all-forest library for each side, so a mulligan loop never runs dry
// no matter how many times it draws and shuffles back.
func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	lib := make([]string, 40)
	for i := range lib {
		lib[i] = "basic_forest"
	}
	eng, err := engine.NewGame(testDB(t), 1,
		engine.Deck{PlayerID: "P1", DeckName: "Deck A", CardIDs: lib},
		engine.Deck{PlayerID: "P2", DeckName: "Deck B", CardIDs: lib},
		log.NewMemoryLogger(),
	)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return eng
}

// scriptedDecider keeps on the keepOnMulligan'th mulligan round (0 means
// keep the first hand seen) and always bottoms the first BottomingRequired
// instance ids it's shown.
type scriptedDecider struct {
	keepOnMulligan int
	mulligansSeen  int
}

func (d *scriptedDecider) DecideMulligan(ctx MulliganContext) MulliganDecision {
	keep := d.mulligansSeen >= d.keepOnMulligan
	d.mulligansSeen++
	return MulliganDecision{Keep: keep, Reasoning: "scripted"}
}

func (d *scriptedDecider) DecideBottom(ctx BottomContext) BottomDecision {
	ids := make([]string, ctx.BottomingRequired)
	for i := 0; i < ctx.BottomingRequired; i++ {
		ids[i] = ctx.Hand[i].InstanceID
	}
	return BottomDecision{InstanceIDs: ids, Reasoning: "scripted"}
}

func TestRunKeepsFirstHandWithoutBottoming(t *testing.T) {
	eng := newTestEngine(t)
	p1Decider := &scriptedDecider{keepOnMulligan: 0}
	p2Decider := &scriptedDecider{keepOnMulligan: 0}

	err := Run(eng, []PlayerSetup{
		{PlayerID: "P1", DeckName: "Deck A", OnPlay: true, Decider: p1Decider},
		{PlayerID: "P2", DeckName: "Deck B", OnPlay: false, Decider: p2Decider},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	vs := eng.VisibleState("P1")
	if len(vs.OwnHand) != StartingHandSize {
		t.Fatalf("expected P1's opening hand to have %d cards, got %d", StartingHandSize, len(vs.OwnHand))
	}
	vs2 := eng.VisibleState("P2")
	if len(vs2.OwnHand) != StartingHandSize {
		t.Fatalf("expected P2's opening hand to have %d cards, got %d", StartingHandSize, len(vs2.OwnHand))
	}
}

func TestRunMulligansThenBottoms(t *testing.T) {
	eng := newTestEngine(t)
	// P1 mulligans twice (keeps on the third hand it's shown), so it
	// should end up with StartingHandSize-2 cards after bottoming 2.
	p1Decider := &scriptedDecider{keepOnMulligan: 2}
	p2Decider := &scriptedDecider{keepOnMulligan: 0}

	err := Run(eng, []PlayerSetup{
		{PlayerID: "P1", DeckName: "Deck A", OnPlay: true, Decider: p1Decider},
		{PlayerID: "P2", DeckName: "Deck B", OnPlay: false, Decider: p2Decider},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	vs := eng.VisibleState("P1")
	want := StartingHandSize - 2
	if len(vs.OwnHand) != want {
		t.Fatalf("expected P1's opening hand to have %d cards after two mulligans, got %d", want, len(vs.OwnHand))
	}

	vs2 := eng.VisibleState("P2")
	if len(vs2.OwnHand) != StartingHandSize {
		t.Fatalf("expected P2 (no mulligan) to keep %d cards, got %d", StartingHandSize, len(vs2.OwnHand))
	}
}

func TestRunRejectsBottomDecisionOfWrongSize(t *testing.T) {
	eng := newTestEngine(t)
	p1Decider := &scriptedDecider{keepOnMulligan: 1}
	badBottom := badBottomCountDecider{scriptedDecider{keepOnMulligan: 1}}

	err := Run(eng, []PlayerSetup{
		{PlayerID: "P1", DeckName: "Deck A", OnPlay: true, Decider: &badBottom},
		{PlayerID: "P2", DeckName: "Deck B", OnPlay: false, Decider: p1Decider},
	})
	if err == nil {
		t.Fatalf("expected Run to reject a bottom decision with the wrong number of instance ids")
	}
}

// badBottomCountDecider always returns zero bottomed cards regardless of
// how many are required, to exercise Run's bottom-count validation.
type badBottomCountDecider struct {
	scriptedDecider
}

func (d *badBottomCountDecider) DecideBottom(ctx BottomContext) BottomDecision {
	return BottomDecision{}
}

func TestAlwaysKeepDeciderNeverMulligans(t *testing.T) {
	eng := newTestEngine(t)
	err := Run(eng, []PlayerSetup{
		{PlayerID: "P1", DeckName: "Deck A", OnPlay: true, Decider: AlwaysKeepDecider{}},
		{PlayerID: "P2", DeckName: "Deck B", OnPlay: false, Decider: AlwaysKeepDecider{}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	vs := eng.VisibleState("P1")
	if len(vs.OwnHand) != StartingHandSize {
		t.Fatalf("expected AlwaysKeepDecider to keep a full hand, got %d", len(vs.OwnHand))
	}
}
