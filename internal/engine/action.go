package engine

// ActionKind is the closed set of action templates the action surface
// can enumerate and submit_action can accept.
type ActionKind string

const (
	ActionPlayLand         ActionKind = "PLAY_LAND"
	ActionTapForMana       ActionKind = "TAP_FOR_MANA"
	ActionCastSpell        ActionKind = "CAST_SPELL"
	ActionActivateAbility  ActionKind = "ACTIVATE_ABILITY"
	ActionDeclareAttackers ActionKind = "DECLARE_ATTACKERS"
	ActionDeclareBlockers  ActionKind = "DECLARE_BLOCKERS"
	ActionPassPriority     ActionKind = "PASS_PRIORITY"
	ActionResolveDecision  ActionKind = "RESOLVE_DECISION"
	ActionSkipCombat       ActionKind = "SKIP_COMBAT"
	ActionSkipMain2        ActionKind = "SKIP_MAIN2"
	ActionScoop            ActionKind = "SCOOP"
)

// TargetRef names one chosen target: either a game object (by instance
// id) or a player.
type TargetRef struct {
	InstanceID string `json:"instance_id,omitempty"`
	PlayerID   string `json:"player_id,omitempty"`
}

// IsPlayer reports whether this ref names a player rather than an object.
func (r TargetRef) IsPlayer() bool {
	return r.PlayerID != ""
}

// Action is the wire shape a surface submits: {type, actor, object_id?,
// targets?} plus typed action-specific fields (X value, flashback flag,
// mana color choice, attackers, blocker assignment map, decision
// choices) that don't fit the common fields.
type Action struct {
	Type     ActionKind
	ActorID  string
	ObjectID string
	Targets  [][]TargetRef // one slice per TargetSpec group

	XValue       int
	UsesFlashback bool
	ManaColor    string // which color TAP_FOR_MANA or an ability's mana effect should add, when ambiguous

	// DeclareAttackers payload: instance ids of the declared attackers.
	Attackers []string
	// DeclareBlockers payload: attacker instance id -> blocker instance ids.
	Blockers map[string][]string

	// RESOLVE_DECISION payload: the chosen option id(s) echoed back from
	// PendingDecision.Options.
	Choices []string
}

// ActionResult is what submit_action returns: either a successful
// mutation (with the events it produced and any newly pending decision)
// or an error that leaves state unchanged.
type ActionResult struct {
	OK         bool
	Error      *Error
	Events     []string // human-readable summaries; the structured log.GameEvent stream is the primary record
	NewPending *PendingDecisionView
}

// GameOverInfo reports the terminal state of a finished game.
type GameOverInfo struct {
	Over     bool
	WinnerID string
	Reason   string
}
