// Package deckfile parses the YAML deck-list format: a top-level list of
// named decks, each a list of card names with a count. Card names are
// resolved against internal/card's registry so a malformed deck file
// fails at load time rather than at first draw.
package deckfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arcanecore/phase1/internal/card"
)

// File is the top-level YAML structure.
type File struct {
	Decks []Entry `yaml:"decks"`
}

// Entry is a single named deck.
type Entry struct {
	Name  string       `yaml:"name"`
	Cards []CardCount `yaml:"cards"`
}

// CardCount is one card name and how many copies the deck runs.
type CardCount struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// Parse reads and validates a deck file. It does not expand entries;
// Entry.CardIDs produces the flat list of canonical card ids the engine
// expects (one id per physical copy, in file order).
func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	if len(f.Decks) == 0 {
		return nil, fmt.Errorf("deck file %q declares no decks", path)
	}
	for _, deck := range f.Decks {
		if deck.Name == "" {
			return nil, fmt.Errorf("deck file %q has an unnamed deck", path)
		}
		for _, cc := range deck.Cards {
			id := card.CanonicalCardID(cc.Name)
			if _, ok := card.Registry[id]; !ok {
				return nil, fmt.Errorf("deck %q references unknown card %q", deck.Name, cc.Name)
			}
			if cc.Count < 1 {
				return nil, fmt.Errorf("deck %q: card %q has a non-positive count", deck.Name, cc.Name)
			}
		}
	}
	return &f, nil
}

// CardIDs expands one deck entry into its flat card-id list, one entry
// per physical copy, in the order the file lists them.
func (e Entry) CardIDs() []string {
	var out []string
	for _, cc := range e.Cards {
		id := card.CanonicalCardID(cc.Name)
		for i := 0; i < cc.Count; i++ {
			out = append(out, id)
		}
	}
	return out
}

// ByName returns the named deck's entry, or false if the file has none
// by that name.
func (f *File) ByName(name string) (Entry, bool) {
	for _, d := range f.Decks {
		if d.Name == name {
			return d, true
		}
	}
	return Entry{}, false
}

// ByIndex returns the nth deck (1-indexed, matching how a deck-select
// CLI flag is usually typed in).
func (f *File) ByIndex(n int) (Entry, error) {
	if n < 1 || n > len(f.Decks) {
		return Entry{}, fmt.Errorf("deck %d not found (file has %d decks)", n, len(f.Decks))
	}
	return f.Decks[n-1], nil
}
