package state

import "github.com/arcanecore/phase1/internal/card"

// TemporaryEffect is a continuous effect with a fixed expiration,
// produced by an "until end of turn"-style resolution (a pump spell, a
// goad, a draw-on-attack grant). Derivation (internal/engine's
// battlefield pass) folds these in alongside static abilities when
// computing a permanent's current characteristics.
type TemporaryEffect struct {
	Effect           card.EffectSpec
	SourceInstanceID string
	ControllerID     string
	TargetInstanceID string // the permanent this effect applies to, empty if it targets a player
	TargetPlayerID   string
	ExpiresTurn      int
	ExpiresStep      Step // empty means "expires at cleanup of ExpiresTurn"
}

// Expired reports whether the effect has passed its expiration, given
// the current turn number and step.
func (e TemporaryEffect) Expired(turnNumber int, step Step) bool {
	if turnNumber < e.ExpiresTurn {
		return false
	}
	if turnNumber > e.ExpiresTurn {
		return true
	}
	if e.ExpiresStep == "" {
		return step == StepCleanup
	}
	return step == e.ExpiresStep
}
