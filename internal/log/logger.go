package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions and the journal ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	if e.Step != "" {
		phase = phase + "/" + e.Step
	}
	for len(phase) < 24 {
		phase += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewPhaseChangeEvent(turn int, phase string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, Type: EventPhaseChange, Details: fmt.Sprintf("Phase -> %s", phase)}
}

func NewStepChangeEvent(turn int, phase, step string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, Step: step, Type: EventStepChange, Details: fmt.Sprintf("Step -> %s", step)}
}

func NewDrawEvent(turn int, phase, playerID, cardID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventDraw, CardID: cardID,
		Details: fmt.Sprintf("%s draws %s", playerID, cardID)}
}

func NewDeckOutEvent(turn int, phase, playerID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventDeckOut,
		Details: fmt.Sprintf("%s attempted to draw from an empty library", playerID)}
}

func NewShuffleEvent(turn int, playerID string) GameEvent {
	return GameEvent{Turn: turn, PlayerID: playerID, Type: EventShuffle, Details: fmt.Sprintf("%s shuffles their library", playerID)}
}

func NewPlayLandEvent(turn int, phase, playerID, cardID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventPlayLand, CardID: cardID,
		Details: fmt.Sprintf("%s plays %s", playerID, cardID)}
}

func NewTapForManaEvent(turn int, phase, playerID, cardID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventTapForMana, CardID: cardID,
		Details: fmt.Sprintf("%s taps %s for mana", playerID, cardID)}
}

func NewCastSpellEvent(turn int, phase, playerID, cardID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventCastSpell, CardID: cardID,
		Details: fmt.Sprintf("%s casts %s", playerID, cardID)}
}

func NewActivateAbilityEvent(turn int, phase, playerID, cardID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventActivateAbility, CardID: cardID,
		Details: fmt.Sprintf("%s activates an ability of %s", playerID, cardID)}
}

func NewStackResolveEvent(turn int, phase, cardID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, Type: EventStackResolve, CardID: cardID,
		Details: fmt.Sprintf("%s resolves", cardID)}
}

func NewCounterSpellEvent(turn int, phase, controllerID, reason string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: controllerID, Type: EventCounterSpell,
		Details: fmt.Sprintf("%s's spell is countered (%s)", controllerID, reason)}
}

func NewDestroyEvent(turn int, phase, controllerID, cardID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: controllerID, Type: EventDestroy, CardID: cardID,
		Details: fmt.Sprintf("%s's %s is destroyed", controllerID, cardID)}
}

func NewExileEvent(turn int, phase, controllerID, cardID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: controllerID, Type: EventExile, CardID: cardID,
		Details: fmt.Sprintf("%s's %s is exiled", controllerID, cardID)}
}

func NewReturnToZoneEvent(turn int, phase, controllerID, cardID, zone string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: controllerID, Type: EventReturnToZone, CardID: cardID,
		Details: fmt.Sprintf("%s returns to %s", cardID, zone)}
}

func NewSacrificeEvent(turn int, phase, playerID, cardID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventSacrifice, CardID: cardID,
		Details: fmt.Sprintf("%s sacrifices %s", playerID, cardID)}
}

func NewDiscardEvent(turn int, phase, playerID, cardID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventDiscard, CardID: cardID,
		Details: fmt.Sprintf("%s discards %s", playerID, cardID)}
}

func NewGainLifeEvent(turn int, phase, playerID string, amount int) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventGainLife,
		Details: fmt.Sprintf("%s gains %d life", playerID, amount)}
}

func NewLoseLifeEvent(turn int, phase, playerID string, amount int, reason string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventLoseLife,
		Details: fmt.Sprintf("%s loses %d life (%s)", playerID, amount, reason)}
}

func NewDamageEvent(turn int, phase, sourceControllerID, targetID string, amount int) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: sourceControllerID, Type: EventDamage,
		Details: fmt.Sprintf("%s deals %d damage to %s", sourceControllerID, amount, targetID)}
}

func NewCreateTokenEvent(turn int, phase, playerID, tokenName string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventCreateToken,
		Details: fmt.Sprintf("%s creates a %s token", playerID, tokenName)}
}

func NewAttachEvent(turn int, phase, sourceID, hostID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, Type: EventAttach, CardID: sourceID,
		Details: fmt.Sprintf("%s attaches to %s", sourceID, hostID)}
}

func NewDetachEvent(turn int, phase, sourceID, reason string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, Type: EventDetach, CardID: sourceID,
		Details: fmt.Sprintf("%s detaches (%s)", sourceID, reason)}
}

func NewDeclareAttackersEvent(turn int, phase, playerID string, count int) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventDeclareAttackers,
		Details: fmt.Sprintf("%s declares %d attacker(s)", playerID, count)}
}

func NewDeclareBlockersEvent(turn int, phase, playerID string, count int) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventDeclareBlockers,
		Details: fmt.Sprintf("%s declares %d blocker(s)", playerID, count)}
}

func NewCombatDamageEvent(turn int, phase, sourceControllerID, sourceID string, amount int) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: sourceControllerID, Type: EventCombatDamage,
		Details: fmt.Sprintf("%s deals %d combat damage", sourceID, amount)}
}

func NewTriggerQueuedEvent(turn int, phase, cardID, triggerName string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, Type: EventTriggerQueued, CardID: cardID,
		Details: fmt.Sprintf("%s trigger queued: %s", cardID, triggerName)}
}

func NewStateBasedActionEvent(turn int, phase, details string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, Type: EventStateBasedAction, Details: details}
}

func NewPendingDecisionEvent(turn int, phase, playerID, kind string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventPendingDecision,
		Details: fmt.Sprintf("%s must decide: %s", playerID, kind)}
}

func NewDecisionResolvedEvent(turn int, phase, playerID string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: playerID, Type: EventDecisionResolved,
		Details: fmt.Sprintf("%s resolves pending decision", playerID)}
}

func NewExtraTurnQueuedEvent(turn int, playerID string) GameEvent {
	return GameEvent{Turn: turn, PlayerID: playerID, Type: EventExtraTurnQueued,
		Details: fmt.Sprintf("%s takes an extra turn", playerID)}
}

func NewWinEvent(turn int, phase, winnerID, reason string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, PlayerID: winnerID, Type: EventWin, Details: fmt.Sprintf("%s wins (%s)", winnerID, reason)}
}

func NewScoopEvent(turn int, playerID string) GameEvent {
	return GameEvent{Turn: turn, PlayerID: playerID, Type: EventScoop, Details: fmt.Sprintf("%s scoops", playerID)}
}
