package zone

import "testing"

func TestManaPoolAddAndClear(t *testing.T) {
	var pool ManaPool
	pool.Add("GREEN", 2)
	pool.Add("", 3)
	pool.Add("GREEN", 1)

	if got := pool.Colored["GREEN"]; got != 3 {
		t.Fatalf("expected 3 green, got %d", got)
	}
	if pool.Generic != 3 {
		t.Fatalf("expected 3 generic, got %d", pool.Generic)
	}
	if got := pool.Total(); got != 6 {
		t.Fatalf("Total() = %d, want 6", got)
	}

	pool.Clear()
	if pool.Total() != 0 || pool.Colored != nil {
		t.Fatalf("expected Clear to empty the pool entirely, got %+v", pool)
	}
}

func TestPlayerDrawCardFromEmptyLibraryReturnsNil(t *testing.T) {
	p := &Player{PlayerID: "P1"}
	if inst := p.DrawCard(); inst != nil {
		t.Fatalf("expected drawing from an empty library to return nil")
	}
}

func TestPlayerDrawCardMovesTopOfLibraryToHand(t *testing.T) {
	p := &Player{PlayerID: "P1"}
	p.Library = []*Instance{
		{InstanceID: "bottom", Zone: Library},
		{InstanceID: "top", Zone: Library},
	}
	inst := p.DrawCard()
	if inst == nil || inst.InstanceID != "top" {
		t.Fatalf("expected to draw the library's last element as the top card")
	}
	if inst.Zone != Hand {
		t.Fatalf("expected drawn card's zone to become HAND, got %q", inst.Zone)
	}
	if len(p.Library) != 1 || p.Library[0].InstanceID != "bottom" {
		t.Fatalf("expected the remaining library to be just the bottom card")
	}
	if len(p.Hand) != 1 || p.Hand[0].InstanceID != "top" {
		t.Fatalf("expected the drawn card to land in hand")
	}
}

func TestPlayerRemoveFromHand(t *testing.T) {
	p := &Player{PlayerID: "P1"}
	p.Hand = []*Instance{{InstanceID: "a"}, {InstanceID: "b"}}

	if got := p.RemoveFromHand("missing"); got != nil {
		t.Fatalf("expected removing an absent instance to return nil")
	}
	removed := p.RemoveFromHand("a")
	if removed == nil || removed.InstanceID != "a" {
		t.Fatalf("expected to remove instance a")
	}
	if len(p.Hand) != 1 || p.Hand[0].InstanceID != "b" {
		t.Fatalf("expected only b to remain in hand")
	}
}

func TestPlayerPutOnBottomAndTopOfLibrary(t *testing.T) {
	p := &Player{PlayerID: "P1"}
	p.Library = []*Instance{{InstanceID: "mid"}}

	p.PutOnBottomOfLibrary(&Instance{InstanceID: "bottom"})
	p.PutOnTopOfLibrary(&Instance{InstanceID: "top"})

	if len(p.Library) != 3 {
		t.Fatalf("expected 3 cards in library, got %d", len(p.Library))
	}
	if p.Library[0].InstanceID != "bottom" {
		t.Fatalf("expected bottom card at index 0, got %q", p.Library[0].InstanceID)
	}
	if p.Library[len(p.Library)-1].InstanceID != "top" {
		t.Fatalf("expected top card as the last (drawable) element, got %q", p.Library[len(p.Library)-1].InstanceID)
	}
	drawn := p.DrawCard()
	if drawn.InstanceID != "top" {
		t.Fatalf("expected the card put on top to be drawn next, got %q", drawn.InstanceID)
	}
}

func TestPlayerSendToGraveyardAndRemove(t *testing.T) {
	p := &Player{PlayerID: "P1"}
	inst := &Instance{InstanceID: "dead"}
	p.SendToGraveyard(inst)
	if inst.Zone != Graveyard {
		t.Fatalf("expected zone to become GRAVEYARD, got %q", inst.Zone)
	}
	if len(p.Graveyard) != 1 {
		t.Fatalf("expected 1 card in graveyard")
	}
	if got := p.RemoveFromGraveyard("dead"); got == nil {
		t.Fatalf("expected to remove the card from graveyard")
	}
	if len(p.Graveyard) != 0 {
		t.Fatalf("expected graveyard to be empty after removal")
	}
}

func TestCountersNet(t *testing.T) {
	c := Counters{PlusOnePlusOne: 3, MinusOneMinusOne: 1}
	if got := c.Net(); got != 2 {
		t.Fatalf("Net() = %d, want 2", got)
	}
}

func TestGlobalBattlefieldLookupAndRemoval(t *testing.T) {
	g := NewGlobal()
	perm := &Permanent{Instance: Instance{InstanceID: "p1"}, ControllerID: "P1"}
	g.Battlefield["p1"] = perm

	if got := g.Get("p1"); got != perm {
		t.Fatalf("expected Get to find the permanent")
	}
	if got := g.Get("missing"); got != nil {
		t.Fatalf("expected Get of an absent id to return nil")
	}

	controlled := g.PermanentsControlledBy("P1")
	if len(controlled) != 1 {
		t.Fatalf("expected 1 permanent controlled by P1, got %d", len(controlled))
	}

	removed := g.RemoveFromBattlefield("p1")
	if removed != perm {
		t.Fatalf("expected RemoveFromBattlefield to return the removed permanent")
	}
	if _, ok := g.Battlefield["p1"]; ok {
		t.Fatalf("expected p1 to be gone from the battlefield")
	}
	if got := g.RemoveFromBattlefield("p1"); got != nil {
		t.Fatalf("expected a second removal to return nil")
	}
}

func TestGlobalStackPushPeekPop(t *testing.T) {
	g := NewGlobal()
	if g.Peek() != nil {
		t.Fatalf("expected an empty stack to peek nil")
	}
	first := &StackItem{ItemID: "s1"}
	second := &StackItem{ItemID: "s2"}
	g.Push(first)
	g.Push(second)

	if top := g.Peek(); top.ItemID != "s2" {
		t.Fatalf("expected s2 on top, got %q", top.ItemID)
	}
	popped := g.Pop()
	if popped.ItemID != "s2" {
		t.Fatalf("expected to pop s2 first, got %q", popped.ItemID)
	}
	if top := g.Peek(); top.ItemID != "s1" {
		t.Fatalf("expected s1 left on top, got %q", top.ItemID)
	}
}

func TestGlobalRemoveFromStackByID(t *testing.T) {
	g := NewGlobal()
	g.Push(&StackItem{ItemID: "bottom"})
	g.Push(&StackItem{ItemID: "middle"})
	g.Push(&StackItem{ItemID: "top"})

	removed := g.RemoveFromStack("middle")
	if removed == nil || removed.ItemID != "middle" {
		t.Fatalf("expected to remove the middle item")
	}
	if len(g.Stack) != 2 {
		t.Fatalf("expected 2 items left on the stack, got %d", len(g.Stack))
	}
	if g.Stack[0].ItemID != "bottom" || g.Stack[1].ItemID != "top" {
		t.Fatalf("expected bottom/top to remain in order, got %+v", g.Stack)
	}
}

func TestGlobalExileTracksSource(t *testing.T) {
	g := NewGlobal()
	inst := &Instance{InstanceID: "exiled"}
	g.PutInExile(inst, "source1")

	if inst.Zone != Exile {
		t.Fatalf("expected zone to become EXILE, got %q", inst.Zone)
	}
	if _, ok := g.Exile["exiled"]; !ok {
		t.Fatalf("expected the instance to be tracked in exile")
	}
	if got := g.ExileLinks["exiled"]; got != "source1" {
		t.Fatalf("expected exile link to source1, got %q", got)
	}

	removed := g.RemoveFromExile("exiled")
	if removed != inst {
		t.Fatalf("expected RemoveFromExile to return the instance")
	}
	if _, ok := g.Exile["exiled"]; ok {
		t.Fatalf("expected the instance to be gone from exile")
	}
}
