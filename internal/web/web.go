// Package web is the deck- and card-browsing HTTP surface: GET /api/cards
// lists the registered card pool, GET /api/decks lists the parsed decks
// a client could pick from, and GET /ws (internal/wsserver.Handler)
// rounds out the same mux with the spectator feed. Grounded on the
// teacher's internal/web (server.go's handleCards/handleDecks), with
// the embedded static asset serving and card-art mapping dropped —
// this engine has no client-rendered board art to serve, only JSON.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/arcanecore/phase1/internal/card"
	_ "github.com/arcanecore/phase1/internal/card/pool" // registers the bundled card pool
	"github.com/arcanecore/phase1/internal/deckfile"
	"github.com/arcanecore/phase1/internal/wsserver"
)

// CardInfo is the JSON representation of one registered card.
type CardInfo struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	TypeLine  []string `json:"type_line"`
	Subtypes  []string `json:"subtypes,omitempty"`
	ManaCost  string   `json:"mana_cost"`
	Power     int      `json:"power,omitempty"`
	Toughness int       `json:"toughness,omitempty"`
}

// DeckInfo is the JSON representation of one parsed deck entry.
type DeckInfo struct {
	Name  string   `json:"name"`
	Cards []string `json:"cards"`
}

// Server serves the deck/card browsing API plus the spectator websocket.
type Server struct {
	decksPath string
	mux       *http.ServeMux
}

// NewServer builds a Server that reads decks from decksPath on every
// request — decksPath is small and rarely changes, so there's no cache
// to invalidate.
func NewServer(decksPath string) *Server {
	s := &Server{decksPath: decksPath, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("GET /ws", wsserver.Handler())
	return s
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	infos := make([]CardInfo, 0, len(card.Registry))
	for id, ctor := range card.Registry {
		c := ctor()
		typeLine := make([]string, len(c.TypeLine))
		for i, t := range c.TypeLine {
			typeLine[i] = string(t)
		}
		info := CardInfo{
			ID:       id,
			Name:     c.Name,
			TypeLine: typeLine,
			Subtypes: c.Subtypes,
			ManaCost: c.ManaCost.String(),
		}
		if c.HasType(card.TypeCreature) {
			info.Power = c.Power
			info.Toughness = c.Toughness
		}
		infos = append(infos, info)
	}
	writeJSON(w, infos)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	df, err := deckfile.Parse(s.decksPath)
	if err != nil {
		http.Error(w, "could not load deck file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	infos := make([]DeckInfo, 0, len(df.Decks))
	for _, d := range df.Decks {
		names := make([]string, 0, len(d.Cards))
		for _, c := range d.Cards {
			names = append(names, c.Name)
		}
		infos = append(infos, DeckInfo{Name: d.Name, Cards: names})
	}
	writeJSON(w, infos)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
