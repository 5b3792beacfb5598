package card

import "fmt"

// DB is the read-only mapping from card_id to its parsed descriptor, the
// external interface spec.md §6 calls the "card DB contract."
type DB map[string]*Card

// Registry maps card_id to constructor functions, mirroring the teacher's
// CardRegistry / LookupCard: each card definition is a small Go function
// returning a fresh *Card literal, registered once at package init.
var Registry = map[string]func() *Card{}

// Register adds a card constructor to the registry. Called from init()
// in the pool subpackages that define individual cards.
func Register(id string, ctor func() *Card) {
	if _, exists := Registry[id]; exists {
		panic(fmt.Sprintf("card %q registered twice", id))
	}
	Registry[id] = ctor
}

// Lookup looks up a card by its canonical id and returns a fresh instance.
// Panics if the id is not found — an unknown card id reaching this point
// means the caller failed to validate against the DB first.
func Lookup(id string) *Card {
	id = CanonicalCardID(id)
	ctor, ok := Registry[id]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", id))
	}
	c := ctor()
	if c.ID == "" {
		c.ID = id
	}
	return c
}

// BuildDB validates every registered card's effect/ability tags against the
// closed dispatch set and returns the resulting database. Unknown tags are
// rejected at load time, per the "Dynamic effect dispatch" design note:
// unknown tags must be rejected, not tolerated.
func BuildDB() (DB, error) {
	db := make(DB, len(Registry))
	for id, ctor := range Registry {
		c := ctor()
		if c.ID == "" {
			c.ID = id
		}
		if err := validateCard(c); err != nil {
			return nil, fmt.Errorf("card %q: %w", id, err)
		}
		db[id] = c
	}
	return db, nil
}

func validateCard(c *Card) error {
	for _, e := range c.Rules.Effects {
		if !IsKnownEffectKind(e.Kind) {
			return fmt.Errorf("unknown effect kind %q", e.Kind)
		}
	}
	for _, a := range c.Rules.ActivatedAbilities {
		for _, e := range a.Effects {
			if !IsKnownEffectKind(e.Kind) {
				return fmt.Errorf("unknown effect kind %q in activated ability", e.Kind)
			}
		}
	}
	for _, t := range c.Rules.TriggeredAbilities {
		for _, e := range t.Effects {
			if !IsKnownEffectKind(e.Kind) {
				return fmt.Errorf("unknown effect kind %q in triggered ability", e.Kind)
			}
		}
	}
	for _, s := range c.Rules.StaticAbilities {
		if !IsKnownEffectKind(s.Effect.Kind) {
			return fmt.Errorf("unknown effect kind %q in static ability", s.Effect.Kind)
		}
	}
	return nil
}

// Get looks up a card_id in the database, resolving basic-land aliases.
func (db DB) Get(id string) (*Card, bool) {
	c, ok := db[CanonicalCardID(id)]
	return c, ok
}
