// Package state holds the whole-game state record: turn/phase/step, the
// seeded RNG, temporary effects, pending decisions, and the extra-turn
// queue. Zone contents (internal/zone) and card definitions
// (internal/card) are referenced from here but owned by their own
// packages; this package is the top-level container the engine mutates.
package state

// Phase is one of the five top-level turn phases, in their fixed order.
type Phase string

const (
	PhaseBegin  Phase = "BEGIN"
	PhaseMain1  Phase = "MAIN1"
	PhaseCombat Phase = "COMBAT"
	PhaseMain2  Phase = "MAIN2"
	PhaseEnd    Phase = "END"
)

// Step is one of the fine-grained steps within a phase.
type Step string

const (
	StepUntap           Step = "UNTAP"
	StepUpkeep          Step = "UPKEEP"
	StepDraw            Step = "DRAW"
	StepMain1           Step = "MAIN1"
	StepBeginCombat     Step = "BEGIN_COMBAT"
	StepDeclareAttackers Step = "DECLARE_ATTACKERS"
	StepDeclareBlockers Step = "DECLARE_BLOCKERS"
	StepDamage          Step = "DAMAGE"
	StepEndCombat       Step = "END_COMBAT"
	StepMain2           Step = "MAIN2"
	StepEnd             Step = "END"
	StepCleanup         Step = "CLEANUP"
)

// stepsByPhase gives each phase's steps, in order, and the phase each
// step belongs to — the engine's phase/step advancement walks this table
// rather than hardcoding transitions inline.
var stepsByPhase = map[Phase][]Step{
	PhaseBegin:  {StepUntap, StepUpkeep, StepDraw},
	PhaseMain1:  {StepMain1},
	PhaseCombat: {StepBeginCombat, StepDeclareAttackers, StepDeclareBlockers, StepDamage, StepEndCombat},
	PhaseMain2:  {StepMain2},
	PhaseEnd:    {StepEnd, StepCleanup},
}

var phaseOrder = []Phase{PhaseBegin, PhaseMain1, PhaseCombat, PhaseMain2, PhaseEnd}

// StepsOf returns the ordered steps belonging to phase.
func StepsOf(phase Phase) []Step {
	return stepsByPhase[phase]
}

// NextPhase returns the phase following phase, wrapping to PhaseBegin
// (the caller is responsible for incrementing turn_number on wrap).
func NextPhase(phase Phase) Phase {
	for i, p := range phaseOrder {
		if p == phase {
			return phaseOrder[(i+1)%len(phaseOrder)]
		}
	}
	return PhaseBegin
}

// Attacker is one declared attacking creature together with the
// defending player it was declared against (always the active player's
// opponent in a two-player game, kept explicit for clarity at the call
// site).
type Attacker struct {
	InstanceID string
	Defending  string
}

// Turn tracks the active player, the current phase/step, and the
// in-progress combat declaration for the turn underway.
type Turn struct {
	ActivePlayerID string
	TurnNumber     int
	Phase          Phase
	Step           Step

	PriorityHolderID string
	PlayersPassedInSuccession []string // player ids who have passed since the last stack-changing action

	Attackers         []Attacker
	Blockers          map[string][]string // attacker instance id -> blocker instance ids
	AttackersDeclared bool
	BlockersDeclared  bool

	FirstStrikeDamageDone bool // tracks the two-substep first-strike/double-strike damage model within StepDamage

	LandPlayedThisTurnBy map[string]bool
}

// NewTurn starts turn 1 for activePlayerID at the first step of BEGIN.
func NewTurn(activePlayerID string) *Turn {
	return &Turn{
		ActivePlayerID:       activePlayerID,
		TurnNumber:           1,
		Phase:                PhaseBegin,
		Step:                 StepUntap,
		Blockers:             map[string][]string{},
		LandPlayedThisTurnBy: map[string]bool{},
	}
}

// ResetCombat clears the turn's combat declaration, done at the start of
// BEGIN_COMBAT and again when a new turn begins.
func (t *Turn) ResetCombat() {
	t.Attackers = nil
	t.Blockers = map[string][]string{}
	t.AttackersDeclared = false
	t.BlockersDeclared = false
	t.FirstStrikeDamageDone = false
}

// IsAttacker reports whether instanceID was declared as an attacker.
func (t *Turn) IsAttacker(instanceID string) bool {
	for _, a := range t.Attackers {
		if a.InstanceID == instanceID {
			return true
		}
	}
	return false
}

// BlockersOf returns the instance ids blocking the given attacker.
func (t *Turn) BlockersOf(attackerInstanceID string) []string {
	return t.Blockers[attackerInstanceID]
}

// IsBlocked reports whether attackerInstanceID has at least one blocker.
func (t *Turn) IsBlocked(attackerInstanceID string) bool {
	return len(t.Blockers[attackerInstanceID]) > 0
}
