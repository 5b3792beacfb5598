package deckfile

import (
	"os"
	"path/filepath"
	"testing"

	_ "github.com/arcanecore/phase1/internal/card/pool"
)

func writeDeckFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decks.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write deck file: %v", err)
	}
	return path
}

const validDeckYAML = `
decks:
  - name: Mono Green
    cards:
      - name: basic_forest
        count: 2
      - name: grizzly_bear
        count: 1
  - name: Mono Black
    cards:
      - name: basic_swamp
        count: 1
`

func TestParseValidDeckFile(t *testing.T) {
	path := writeDeckFile(t, validDeckYAML)
	f, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Decks) != 2 {
		t.Fatalf("expected 2 decks, got %d", len(f.Decks))
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected an error reading a missing file")
	}
}

func TestParseRejectsNoDecks(t *testing.T) {
	path := writeDeckFile(t, "decks: []\n")
	if _, err := Parse(path); err == nil {
		t.Fatalf("expected an error for a deck file with no decks")
	}
}

func TestParseRejectsUnnamedDeck(t *testing.T) {
	path := writeDeckFile(t, "decks:\n  - cards:\n      - name: basic_forest\n        count: 1\n")
	if _, err := Parse(path); err == nil {
		t.Fatalf("expected an error for an unnamed deck")
	}
}

func TestParseRejectsUnknownCard(t *testing.T) {
	path := writeDeckFile(t, "decks:\n  - name: Bad Deck\n    cards:\n      - name: not_a_real_card\n        count: 1\n")
	if _, err := Parse(path); err == nil {
		t.Fatalf("expected an error for a reference to an unknown card")
	}
}

func TestParseRejectsNonPositiveCount(t *testing.T) {
	path := writeDeckFile(t, "decks:\n  - name: Bad Deck\n    cards:\n      - name: basic_forest\n        count: 0\n")
	if _, err := Parse(path); err == nil {
		t.Fatalf("expected an error for a non-positive card count")
	}
}

func TestEntryCardIDsExpandsCounts(t *testing.T) {
	path := writeDeckFile(t, validDeckYAML)
	f, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	deck, ok := f.ByName("Mono Green")
	if !ok {
		t.Fatalf("expected to find Mono Green")
	}
	ids := deck.CardIDs()
	if len(ids) != 3 {
		t.Fatalf("expected 3 expanded card ids, got %d: %v", len(ids), ids)
	}
	forestCount := 0
	for _, id := range ids {
		if id == "basic_forest" {
			forestCount++
		}
	}
	if forestCount != 2 {
		t.Fatalf("expected 2 copies of basic_forest, got %d", forestCount)
	}
}

func TestByNameAndByIndex(t *testing.T) {
	path := writeDeckFile(t, validDeckYAML)
	f, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := f.ByName("Does Not Exist"); ok {
		t.Fatalf("expected ByName to miss an unknown deck")
	}
	first, err := f.ByIndex(1)
	if err != nil || first.Name != "Mono Green" {
		t.Fatalf("ByIndex(1) = %+v, %v; want Mono Green", first, err)
	}
	if _, err := f.ByIndex(0); err == nil {
		t.Fatalf("expected ByIndex(0) to error")
	}
	if _, err := f.ByIndex(99); err == nil {
		t.Fatalf("expected an out-of-range index to error")
	}
}
