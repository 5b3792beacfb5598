// Package wsserver streams the active game to read-only spectators over
// a websocket: on connect, a client sends which player's viewpoint to
// watch, then receives a VisibleState snapshot followed by one message
// per new GameEvent as the game progresses. It never reads an action
// off the socket — the in-process mcpsurface.Session owns the only
// path that mutates the game — grounded on the teacher's
// internal/web.handleWebSocket, with the TCP-proxy half of that handler
// (bridging a browser socket to a separate game-server TCP connection)
// dropped: this engine has no out-of-process duel to proxy to, so the
// handler talks to the in-process session directly instead.
package wsserver

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/arcanecore/phase1/internal/mcpsurface"
)

// pollInterval is how often the handler checks for new events to push.
// The engine has no event-subscription hook of its own (SubmitAction is
// synchronous and returns its own result directly to the caller that
// invoked it); polling Engine.Events() is the simplest way for a
// read-only bystander to notice new ones.
const pollInterval = 150 * time.Millisecond

// connectMessage is the one message a client must send immediately
// after the socket opens, naming which player's VisibleState to watch.
type connectMessage struct {
	PlayerID string `json:"player_id"`
}

// outMessage is the envelope every server-to-client message uses.
type outMessage struct {
	Type  string      `json:"type"`
	State interface{} `json:"state,omitempty"`
	Event interface{} `json:"event,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Handler returns an http.HandlerFunc for the GET /ws route.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			log.Printf("wsserver: accept: %v", err)
			return
		}
		defer conn.CloseNow()
		serve(r.Context(), conn)
	}
}

func serve(ctx context.Context, conn *websocket.Conn) {
	_, data, err := conn.Read(ctx)
	if err != nil {
		return
	}
	var connect connectMessage
	if err := json.Unmarshal(data, &connect); err != nil || connect.PlayerID == "" {
		_ = conn.Close(websocket.StatusPolicyViolation, "expected a connect message naming player_id")
		return
	}

	sess := mcpsurface.Active()
	if sess == nil {
		writeJSON(ctx, conn, outMessage{Type: "error", Error: "no game is running"})
		_ = conn.Close(websocket.StatusNormalClosure, "no game")
		return
	}

	if err := writeJSON(ctx, conn, outMessage{Type: "state", State: sess.Engine().VisibleState(connect.PlayerID)}); err != nil {
		return
	}

	seen := len(sess.Engine().Events())
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if mcpsurface.Active() != sess {
				writeJSON(ctx, conn, outMessage{Type: "game_over"})
				_ = conn.Close(websocket.StatusNormalClosure, "game ended")
				return
			}
			events := sess.Engine().Events()
			for _, ev := range events[seen:] {
				if err := writeJSON(ctx, conn, outMessage{Type: "event", Event: ev}); err != nil {
					return
				}
			}
			seen = len(events)
			if err := writeJSON(ctx, conn, outMessage{Type: "state", State: sess.Engine().VisibleState(connect.PlayerID)}); err != nil {
				return
			}
		}
	}
}

func writeJSON(ctx context.Context, conn *websocket.Conn, v outMessage) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
