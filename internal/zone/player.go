package zone

// ManaPool is the mana a player has available to spend this priority
// window; it empties at each step/phase change per the cost resolver.
type ManaPool struct {
	Colored map[string]int // keys are card.Color values, kept as strings to avoid an import cycle
	Generic int
}

// Add deposits amount mana of the given color ("" for colorless/generic)
// into the pool.
func (m *ManaPool) Add(color string, amount int) {
	if color == "" {
		m.Generic += amount
		return
	}
	if m.Colored == nil {
		m.Colored = map[string]int{}
	}
	m.Colored[color] += amount
}

// Total returns the pool's combined mana count across all colors.
func (m *ManaPool) Total() int {
	total := m.Generic
	for _, v := range m.Colored {
		total += v
	}
	return total
}

// Clear empties the pool, as happens at the end of every step and phase.
func (m *ManaPool) Clear() {
	m.Colored = nil
	m.Generic = 0
}

// Player is one player's private state: their two hidden zones (library,
// hand is semi-hidden) and visible graveyard, life total, and mana pool.
type Player struct {
	PlayerID string
	IsAI     bool

	Library   []*Instance
	Hand      []*Instance
	Graveyard []*Instance

	Life     int
	ManaPool ManaPool

	LandsPlayedThisTurn int

	MulligansTaken   int
	HasKeptHand      bool
	BottomingRequired int

	DeckName string
}

// LibraryCount returns the number of cards left in the library.
func (p *Player) LibraryCount() int {
	return len(p.Library)
}

// HandCount returns the number of cards in hand.
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// DrawCard removes the top card of the library (the last element, so
// shuffling and drawing are both simple slice operations) and moves it
// to hand. Returns nil if the library is empty; the caller is
// responsible for the resulting state-based loss.
func (p *Player) DrawCard() *Instance {
	n := len(p.Library)
	if n == 0 {
		return nil
	}
	inst := p.Library[n-1]
	p.Library = p.Library[:n-1]
	inst.Zone = Hand
	p.Hand = append(p.Hand, inst)
	return inst
}

// RemoveFromHand removes a card from hand by instance id.
func (p *Player) RemoveFromHand(instanceID string) *Instance {
	for i, c := range p.Hand {
		if c.InstanceID == instanceID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return c
		}
	}
	return nil
}

// SendToGraveyard moves a card instance into this player's graveyard.
func (p *Player) SendToGraveyard(inst *Instance) {
	inst.Zone = Graveyard
	p.Graveyard = append(p.Graveyard, inst)
}

// RemoveFromGraveyard removes a card from the graveyard by instance id.
func (p *Player) RemoveFromGraveyard(instanceID string) *Instance {
	for i, c := range p.Graveyard {
		if c.InstanceID == instanceID {
			p.Graveyard = append(p.Graveyard[:i], p.Graveyard[i+1:]...)
			return c
		}
	}
	return nil
}

// PutOnBottomOfLibrary inserts inst at the bottom (index 0, since the top
// is the last element) of the library.
func (p *Player) PutOnBottomOfLibrary(inst *Instance) {
	inst.Zone = Library
	p.Library = append([]*Instance{inst}, p.Library...)
}

// PutOnTopOfLibrary inserts inst at the top of the library.
func (p *Player) PutOnTopOfLibrary(inst *Instance) {
	inst.Zone = Library
	p.Library = append(p.Library, inst)
}
