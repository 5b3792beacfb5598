package mcpsurface

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/arcanecore/phase1/internal/engine"
)

// RegisterTools adds every phase1 tool to an MCP server, mirroring the
// teacher's own RegisterTools(s *server.MCPServer) entry point.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(getGameStateTool(), handleGetGameState)
	s.AddTool(getActionsTool(), handleGetActions)
	s.AddTool(submitActionTool(), handleSubmitAction)
}

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new phase-1 duel between two named decks from the configured deck file. "+
			"Returns the starting player's VisibleState. Only one game runs per process at a time."),
		mcp.WithString("deck_a", mcp.Required(), mcp.Description("Deck name for player P1 (goes first)")),
		mcp.WithString("deck_b", mcp.Required(), mcp.Description("Deck name for player P2")),
		mcp.WithNumber("seed", mcp.Description("RNG seed; defaults to 0 when omitted")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the active game's VisibleState for the given viewer. Read-only."),
		mcp.WithString("player_id", mcp.Required(), mcp.Description("P1 or P2")),
	)
}

func getActionsTool() mcp.Tool {
	return mcp.NewTool("get_actions",
		mcp.WithDescription("List every legal ActionDescriptor for the given player right now, plus the JSON Schema "+
			"the wire Action shape must validate against. Read-only."),
		mcp.WithString("player_id", mcp.Required(), mcp.Description("P1 or P2")),
	)
}

func submitActionTool() mcp.Tool {
	return mcp.NewTool("submit_action",
		mcp.WithDescription("Submit one Action (as returned by get_actions, serialized to JSON) to the active game."),
		mcp.WithString("action_json", mcp.Required(), mcp.Description("JSON-encoded engine.Action")),
	)
}

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deckA := request.GetString("deck_a", "")
	deckB := request.GetString("deck_b", "")
	seed := int64(request.GetInt("seed", 0))

	sess, err := StartGame(deckA, deckB, seed, "")
	if err != nil {
		return mcp.NewToolResultErrorf("failed to start game: %v", err), nil
	}

	return mcp.NewToolResultText(marshalOrError(sess.Engine().VisibleState("P1"))), nil
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := Active()
	if sess == nil {
		return mcp.NewToolResultError("no game is running; use start_game first"), nil
	}
	playerID := request.GetString("player_id", "")
	return mcp.NewToolResultText(marshalOrError(sess.Engine().VisibleState(playerID))), nil
}

func handleGetActions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := Active()
	if sess == nil {
		return mcp.NewToolResultError("no game is running; use start_game first"), nil
	}
	playerID := request.GetString("player_id", "")

	resp := struct {
		Actions []engine.ActionDescriptor    `json:"actions"`
		Schema  engine.ActionSchemaResponse `json:"schema"`
	}{
		Actions: sess.Engine().GetActionList(playerID),
		Schema:  sess.Engine().GetActionSchema(playerID),
	}
	return mcp.NewToolResultText(marshalOrError(resp)), nil
}

func handleSubmitAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := Active()
	if sess == nil {
		return mcp.NewToolResultError("no game is running; use start_game first"), nil
	}

	raw := request.GetString("action_json", "")
	var action engine.Action
	if err := json.Unmarshal([]byte(raw), &action); err != nil {
		return mcp.NewToolResultErrorf("invalid action_json: %v", err), nil
	}

	result := sess.Submit(action)
	return mcp.NewToolResultText(marshalOrError(result)), nil
}

func marshalOrError(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return `{"error": "marshal error"}`
	}
	return string(data)
}
