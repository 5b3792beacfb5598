// Package pregame runs the London mulligan loop above
// engine.Engine.MulliganHand/BeginPostMulligan: draw seven, ask a
// Decider to keep or mulligan, reshuffle and redraw on a mulligan, then
// bottom one card per mulligan taken once a hand is kept. The engine
// itself exposes no mulligan/bottom decision logic (spec.md §1's
// Non-goals place that here); this package is the collaborator that
// sits above the post-mulligan seam, grounded on
// original_source/mtg_core/ai_pregame.py's MulliganContext/BottomContext
// decision boundary, generalized from an LLM-only decider to any
// Decider implementation (a human prompt, a scripted test stub, and so
// on — AI opponents are themselves out of scope here, only the decision
// boundary shape is kept).
package pregame

import (
	"fmt"

	"github.com/arcanecore/phase1/internal/engine"
)

// StartingHandSize is the number of cards a kept hand begins the game
// with, before any mulligan bottoming.
const StartingHandSize = 7

// MaxMulligans caps how many times a player may mulligan before being
// forced to keep, so a pathological Decider cannot loop forever.
const MaxMulligans = 6

// CardView is a (instance id, card id) pair shown to a Decider — enough
// to identify and describe a card without exposing engine internals.
type CardView struct {
	InstanceID string `json:"instance_id"`
	CardID     string `json:"card_id"`
}

// MulliganContext is everything a Decider needs to decide whether to
// keep or mulligan a freshly drawn hand.
type MulliganContext struct {
	PlayerID       string     `json:"player_id"`
	DeckName       string     `json:"deck_name"`
	OnPlay         bool       `json:"on_play"`
	MulligansTaken int        `json:"mulligans_taken"`
	Hand           []CardView `json:"hand"`
}

// BottomContext is everything a Decider needs to choose which cards to
// put back after keeping a hand with prior mulligans.
type BottomContext struct {
	PlayerID          string     `json:"player_id"`
	DeckName          string     `json:"deck_name"`
	Hand              []CardView `json:"hand"`
	BottomingRequired int        `json:"bottoming_required"`
}

// MulliganDecision is a Decider's keep/mulligan answer.
type MulliganDecision struct {
	Keep      bool
	Reasoning string
}

// BottomDecision is a Decider's choice of which instance ids to bottom.
// Len(InstanceIDs) must equal the BottomingRequired it was asked for.
type BottomDecision struct {
	InstanceIDs []string
	Reasoning   string
}

// Decider answers the two pregame decision points. Implementations may
// prompt a human, consult a fixed script in a test, or apply a simple
// heuristic — this package does not care which, mirroring how
// ai_pregame.py's AIPregameDecider sits behind a narrow two-method
// decision surface that mtg_core itself never reaches into.
type Decider interface {
	DecideMulligan(ctx MulliganContext) MulliganDecision
	DecideBottom(ctx BottomContext) BottomDecision
}

// PlayerSetup names one player's deck and whether they're on the play,
// the inputs Run needs beyond the engine itself.
type PlayerSetup struct {
	PlayerID string
	DeckName string
	OnPlay   bool
	Decider  Decider
}

// Run drives the London mulligan loop for both players against eng,
// then calls eng.BeginPostMulligan with the resulting opening hand
// sizes. eng must not have had BeginPostMulligan called yet.
func Run(eng *engine.Engine, players []PlayerSetup) error {
	openingHandSize := map[string]int{}
	for _, ps := range players {
		n, err := runOnePlayer(eng, ps)
		if err != nil {
			return err
		}
		openingHandSize[ps.PlayerID] = n
	}
	eng.BeginPostMulligan(openingHandSize)
	return nil
}

// runOnePlayer mulligans ps.PlayerID until it keeps (or hits
// MaxMulligans), bottoms the required cards, and returns how many cards
// remain in the kept hand — StartingHandSize minus mulligans taken,
// since each mulligan bottoms exactly one extra card.
func runOnePlayer(eng *engine.Engine, ps PlayerSetup) (int, error) {
	hand := eng.MulliganHand(ps.PlayerID)
	mulligansTaken := 0

	for {
		for i := 0; i < StartingHandSize; i++ {
			hand.Draw()
		}

		ctx := MulliganContext{
			PlayerID:       ps.PlayerID,
			DeckName:       ps.DeckName,
			OnPlay:         ps.OnPlay,
			MulligansTaken: mulligansTaken,
			Hand:           cardViews(hand),
		}
		decision := ps.Decider.DecideMulligan(ctx)
		if decision.Keep || mulligansTaken >= MaxMulligans {
			break
		}
		mulligansTaken++
		hand.ReturnAndShuffle()
	}

	if mulligansTaken == 0 {
		return StartingHandSize, nil
	}

	bctx := BottomContext{
		PlayerID:          ps.PlayerID,
		DeckName:          ps.DeckName,
		Hand:              cardViews(hand),
		BottomingRequired: mulligansTaken,
	}
	bottom := ps.Decider.DecideBottom(bctx)
	if len(bottom.InstanceIDs) != mulligansTaken {
		return 0, fmt.Errorf("pregame: %s bottomed %d cards, expected %d",
			ps.PlayerID, len(bottom.InstanceIDs), mulligansTaken)
	}
	for _, id := range bottom.InstanceIDs {
		if !hand.Bottom(id) {
			return 0, fmt.Errorf("pregame: %s tried to bottom unknown instance %q", ps.PlayerID, id)
		}
	}
	return StartingHandSize - mulligansTaken, nil
}

// AlwaysKeepDecider keeps every opening hand without looking at it,
// never mulliganing. It exists for callers that need a Decider but have
// nowhere to surface the decision yet (see internal/mcpsurface), not as
// a recommended play pattern.
type AlwaysKeepDecider struct{}

func (AlwaysKeepDecider) DecideMulligan(MulliganContext) MulliganDecision {
	return MulliganDecision{Keep: true, Reasoning: "no mulligan decision surface wired"}
}

func (AlwaysKeepDecider) DecideBottom(BottomContext) BottomDecision {
	return BottomDecision{}
}

func cardViews(hand engine.MulliganHand) []CardView {
	instances := hand.Hand()
	out := make([]CardView, len(instances))
	for i, inst := range instances {
		out[i] = CardView{InstanceID: inst.InstanceID, CardID: inst.CardID}
	}
	return out
}
