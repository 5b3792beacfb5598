package engine

import (
	"github.com/arcanecore/phase1/internal/card"
	"github.com/arcanecore/phase1/internal/state"
	"github.com/arcanecore/phase1/internal/zone"
)

// PermanentView is the derived, read-only projection of one battlefield
// permanent, after the §4.1 derivation pass has folded in static
// abilities, temporary effects, and attachments.
type PermanentView struct {
	InstanceID    string
	CardID        string
	ControllerID  string
	OwnerID       string
	Tapped        bool
	DamageMarked  int
	Counters      zone.Counters
	AttachedTo    string
	SummoningSick bool

	Power         int
	Toughness     int
	Keywords      []card.Keyword
	Subtypes      []string

	// DamagePrevented mirrors derived.damagePrevented: combat damage this
	// permanent would deal is zeroed out, per a PREVENT_COMBAT_DAMAGE grant.
	DamagePrevented bool
}

// StackItemView is the public projection of one stack entry.
type StackItemView struct {
	ItemID       string
	Kind         zone.StackItemKind
	ControllerID string
	CardID       string // empty for abilities
	SourceID     string // source permanent instance id, for abilities
	XValue       int
}

// PendingDecisionView is what a VisibleState exposes about an
// outstanding pending decision: the full prompt if the viewer is the
// actor, otherwise just the fact that the opponent is deciding.
type PendingDecisionView struct {
	ForViewer bool
	Kind      state.DecisionKind
	Options   []string
	OpponentIsDeciding bool
}

// CombatView is the in-progress attacker/blocker declaration, populated
// only during combat steps.
type CombatView struct {
	Attackers []state.Attacker
	Blockers  map[string][]string
}

// VisibleState is the engine-produced, per-player projection: everything
// player_id may legally see, and nothing else (the opponent's hand
// contents are never included, only its count).
type VisibleState struct {
	GameID           string
	TurnNumber       int
	Phase            state.Phase
	Step             state.Step
	ActivePlayerID   string
	PriorityHolderID string

	ViewerID     string
	OwnLife      int
	OpponentLife int

	OwnHand        []string // card ids, full contents
	OpponentHandCount int

	OwnLibraryCount       int
	OpponentLibraryCount  int

	OwnGraveyard      []string
	OpponentGraveyard []string
	Exile             []string

	Battlefield []PermanentView
	Stack       []StackItemView

	OwnManaPool            zone.ManaPool
	OwnLandsPlayedThisTurn int

	Combat *CombatView

	Pending *PendingDecisionView

	GameOver GameOverInfo
}

// instanceCardIDs projects a slice of instances down to their card ids,
// for zones whose full contents are public (own hand, graveyards, exile).
func instanceCardIDs(instances []*zone.Instance) []string {
	ids := make([]string, len(instances))
	for i, inst := range instances {
		ids[i] = inst.CardID
	}
	return ids
}
