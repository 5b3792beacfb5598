package zone

import "github.com/arcanecore/phase1/internal/card"

// StackItemKind distinguishes a cast spell from an activated/triggered
// ability sitting on the stack.
type StackItemKind string

const (
	ItemSpell   StackItemKind = "SPELL"
	ItemAbility StackItemKind = "ABILITY"
)

// ResolvedTarget is one target chosen for a stack item, either an object
// (permanent, spell on the stack) or a player.
type ResolvedTarget struct {
	InstanceID string // object target, empty if PlayerID is set
	PlayerID   string // player target, empty if InstanceID is set
}

// StackItem is one entry on the shared stack: a spell (with its own
// CardInstance, now temporarily a STACK-zone object) or an ability
// (referencing its source permanent by id; a dies trigger's source has
// already left the battlefield).
type StackItem struct {
	ItemID           string
	Kind             StackItemKind
	ControllerID     string
	Instance         *Instance // non-nil for ItemSpell
	SourceInstanceID string    // non-nil-equivalent (non-empty) for ItemAbility
	Effects          []card.EffectSpec
	Targets          [][]ResolvedTarget // one slice per TargetGroup, indexed by EffectSpec.GroupIdx
	XValue           int
	Countered        bool
}
