// Package zone holds the mutable, per-game objects: card instances, the
// battlefield's permanent state, the shared stack, and each player's
// private library/hand/graveyard. Nothing here knows the rules of when
// these zones change — that belongs to the engine — it only knows how to
// represent them consistently.
package zone

// Kind names the zone a CardInstance currently occupies.
type Kind string

const (
	Library    Kind = "LIBRARY"
	Hand       Kind = "HAND"
	Graveyard  Kind = "GRAVEYARD"
	Battlefield Kind = "BATTLEFIELD"
	Stack      Kind = "STACK"
	Exile      Kind = "EXILE"
)

// Instance is one physical card existing in exactly one zone at a time.
type Instance struct {
	InstanceID string
	CardID     string
	OwnerID    string
	IsToken    bool
	Zone       Kind
}

// Counters tracks the two +1/+1 and -1/-1 counter piles a permanent can
// carry; phase-1 does not model any other counter type.
type Counters struct {
	PlusOnePlusOne int
	MinusOneMinusOne int
}

// Net returns the counters' combined P/T delta after the state-based
// annihilation rule (equal +1/+1 and -1/-1 counters cancel in pairs,
// applied by the engine's state-based action pass, not here).
func (c Counters) Net() int {
	return c.PlusOnePlusOne - c.MinusOneMinusOne
}

// PermanentState is the mutable battlefield-only state a CardInstance
// picks up while it is a Permanent, and loses the moment it leaves.
type PermanentState struct {
	Tapped          bool
	DamageMarked    int
	Counters        Counters
	SummoningSick   bool
	AttachedTo      string // instance id of the permanent this aura/equipment is attached to
	GoadedBy        string // controller id of whoever goaded this creature
	GoadedUntilTurn int

	// CastTargets preserves the targets chosen when this permanent was
	// cast as a spell, indexed by TargetSpec group, so an ETB trigger
	// whose effect references a GroupIdx can still resolve it after the
	// spell has already left the stack.
	CastTargets [][]ResolvedTarget
}

// Permanent is a CardInstance on the battlefield together with its
// mutable state and current controller, tracked separately from the
// instance's OwnerID.
type Permanent struct {
	Instance   Instance
	ControllerID string
	State      PermanentState
}
