package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/draffetseder/sleeper-mcp/internal/sleeper"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultSport         = "nfl"
	defaultLookbackHours = 24
	defaultTrendingLimit = 25
)

type NoArgs struct{}

type UserArgs struct {
	Username string `json:"username" jsonschema:"Sleeper username or user id (required)"`
}

type UserSeasonArgs struct {
	UserID string `json:"user_id" jsonschema:"Sleeper user id (required)"`
	Sport  string `json:"sport,omitempty" jsonschema:"Sport (default nfl)"`
	Season string `json:"season" jsonschema:"Season year, e.g. 2025 (required)"`
}

type LeagueArgs struct {
	LeagueID string `json:"league_id" jsonschema:"League id (required)"`
}

type LeagueWeekArgs struct {
	LeagueID string `json:"league_id" jsonschema:"League id (required)"`
	Week     int    `json:"week" jsonschema:"Week number (required)"`
}

type LeagueRoundArgs struct {
	LeagueID string `json:"league_id" jsonschema:"League id (required)"`
	Round    int    `json:"round" jsonschema:"Week/leg of the season (required)"`
}

type DraftArgs struct {
	DraftID string `json:"draft_id" jsonschema:"Draft id (required)"`
}

type PlayersArgs struct {
	Sport string `json:"sport,omitempty" jsonschema:"Sport (default nfl)"`
}

type TrendingArgs struct {
	Type          string `json:"type"`
	Sport         string `json:"sport"`
	LookbackHours int    `json:"lookback_hours"`
	Limit         int    `json:"limit"`
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// toolServer routes each tool invocation to exactly one upstream GET.
type toolServer struct {
	api *sleeper.Client
	log *slog.Logger
}

// newServer builds the MCP server with all tools registered, returning the
// registration-order registry alongside it.
func newServer(api *sleeper.Client, logger *slog.Logger) (*mcp.Server, []toolInfo) {
	s := &toolServer{api: api, log: logger}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "sleeper-mcp",
			Version: version,
		},
		nil,
	)

	registry := make([]toolInfo, 0, 18)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_nfl_state",
		Description: "Current NFL season state (week, season type, key dates)",
	}, s.getNFLState)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_user",
		Description: "Look up a Sleeper user by username or user id",
	}, s.getUser)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_user_leagues",
		Description: "All leagues a user belongs to for a sport and season",
	}, s.getUserLeagues)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_user_drafts",
		Description: "All drafts a user participated in for a sport and season",
	}, s.getUserDrafts)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_league",
		Description: "League settings and metadata",
	}, s.getLeague)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_league_rosters",
		Description: "All rosters in a league",
	}, s.getLeagueRosters)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_league_users",
		Description: "All users in a league",
	}, s.getLeagueUsers)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_league_matchups",
		Description: "Matchups in a league for a given week",
	}, s.getLeagueMatchups)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_league_winners_bracket",
		Description: "Playoff winners bracket for a league",
	}, s.getLeagueWinnersBracket)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_league_losers_bracket",
		Description: "Playoff losers bracket for a league",
	}, s.getLeagueLosersBracket)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_league_transactions",
		Description: "Transactions (waivers, free agents, trades) for a league week",
	}, s.getLeagueTransactions)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_league_traded_picks",
		Description: "Traded draft picks in a league",
	}, s.getLeagueTradedPicks)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_league_drafts",
		Description: "All drafts for a league",
	}, s.getLeagueDrafts)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_draft",
		Description: "Draft settings and metadata",
	}, s.getDraft)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_draft_picks",
		Description: "All picks made in a draft",
	}, s.getDraftPicks)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_draft_traded_picks",
		Description: "Traded picks in a draft",
	}, s.getDraftTradedPicks)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_players",
		Description: "Full player catalog for a sport (large response, fetch sparingly)",
	}, s.getPlayers)

	addTool(server, &registry, logger, &mcp.Tool{
		Name:        "get_trending_players",
		Description: "Players trending by adds or drops over a lookback window",
		InputSchema: trendingInputSchema(),
	}, s.getTrendingPlayers)

	return server, registry
}

// addTool registers the tool with the MCP server and records it in the
// side registry served at GET /tools.
func addTool[T any](server *mcp.Server, registry *[]toolInfo, logger *slog.Logger, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	name := tool.Name
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
		logger.Debug("tool call", "tool", name)
		return handler(ctx, req, args)
	})
}

// trendingInputSchema is the one hand-built schema: "type" carries an enum
// and the optional parameters advertise their defaults.
func trendingInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"type": {
				Type:        "string",
				Description: "Trend direction: add or drop",
				Enum:        []any{"add", "drop"},
			},
			"sport": {
				Type:        "string",
				Description: "Sport (default nfl)",
				Default:     json.RawMessage(`"nfl"`),
			},
			"lookback_hours": {
				Type:        "integer",
				Description: "Hours to look back (default 24)",
				Default:     json.RawMessage(`24`),
			},
			"limit": {
				Type:        "integer",
				Description: "Number of results (default 25)",
				Default:     json.RawMessage(`25`),
			},
		},
		Required: []string{"type"},
	}
}

func (s *toolServer) getNFLState(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(s.api.NFLState(ctx))
}

func (s *toolServer) getUser(ctx context.Context, req *mcp.CallToolRequest, args UserArgs) (*mcp.CallToolResult, any, error) {
	if args.Username == "" {
		return toolError(fmt.Errorf("username is required")), nil, nil
	}
	return toolJSON(s.api.User(ctx, args.Username))
}

func (s *toolServer) getUserLeagues(ctx context.Context, req *mcp.CallToolRequest, args UserSeasonArgs) (*mcp.CallToolResult, any, error) {
	if args.UserID == "" {
		return toolError(fmt.Errorf("user_id is required")), nil, nil
	}
	if args.Season == "" {
		return toolError(fmt.Errorf("season is required")), nil, nil
	}
	sport := args.Sport
	if sport == "" {
		sport = defaultSport
	}
	return toolJSON(s.api.UserLeagues(ctx, args.UserID, sport, args.Season))
}

func (s *toolServer) getUserDrafts(ctx context.Context, req *mcp.CallToolRequest, args UserSeasonArgs) (*mcp.CallToolResult, any, error) {
	if args.UserID == "" {
		return toolError(fmt.Errorf("user_id is required")), nil, nil
	}
	if args.Season == "" {
		return toolError(fmt.Errorf("season is required")), nil, nil
	}
	sport := args.Sport
	if sport == "" {
		sport = defaultSport
	}
	return toolJSON(s.api.UserDrafts(ctx, args.UserID, sport, args.Season))
}

func (s *toolServer) getLeague(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
	if args.LeagueID == "" {
		return toolError(fmt.Errorf("league_id is required")), nil, nil
	}
	return toolJSON(s.api.League(ctx, args.LeagueID))
}

func (s *toolServer) getLeagueRosters(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
	if args.LeagueID == "" {
		return toolError(fmt.Errorf("league_id is required")), nil, nil
	}
	return toolJSON(s.api.LeagueRosters(ctx, args.LeagueID))
}

func (s *toolServer) getLeagueUsers(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
	if args.LeagueID == "" {
		return toolError(fmt.Errorf("league_id is required")), nil, nil
	}
	return toolJSON(s.api.LeagueUsers(ctx, args.LeagueID))
}

func (s *toolServer) getLeagueMatchups(ctx context.Context, req *mcp.CallToolRequest, args LeagueWeekArgs) (*mcp.CallToolResult, any, error) {
	if args.LeagueID == "" {
		return toolError(fmt.Errorf("league_id is required")), nil, nil
	}
	if args.Week <= 0 {
		return toolError(fmt.Errorf("week is required")), nil, nil
	}
	return toolJSON(s.api.LeagueMatchups(ctx, args.LeagueID, args.Week))
}

func (s *toolServer) getLeagueWinnersBracket(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
	if args.LeagueID == "" {
		return toolError(fmt.Errorf("league_id is required")), nil, nil
	}
	return toolJSON(s.api.LeagueWinnersBracket(ctx, args.LeagueID))
}

func (s *toolServer) getLeagueLosersBracket(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
	if args.LeagueID == "" {
		return toolError(fmt.Errorf("league_id is required")), nil, nil
	}
	return toolJSON(s.api.LeagueLosersBracket(ctx, args.LeagueID))
}

func (s *toolServer) getLeagueTransactions(ctx context.Context, req *mcp.CallToolRequest, args LeagueRoundArgs) (*mcp.CallToolResult, any, error) {
	if args.LeagueID == "" {
		return toolError(fmt.Errorf("league_id is required")), nil, nil
	}
	if args.Round <= 0 {
		return toolError(fmt.Errorf("round is required")), nil, nil
	}
	return toolJSON(s.api.LeagueTransactions(ctx, args.LeagueID, args.Round))
}

func (s *toolServer) getLeagueTradedPicks(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
	if args.LeagueID == "" {
		return toolError(fmt.Errorf("league_id is required")), nil, nil
	}
	return toolJSON(s.api.LeagueTradedPicks(ctx, args.LeagueID))
}

func (s *toolServer) getLeagueDrafts(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
	if args.LeagueID == "" {
		return toolError(fmt.Errorf("league_id is required")), nil, nil
	}
	return toolJSON(s.api.LeagueDrafts(ctx, args.LeagueID))
}

func (s *toolServer) getDraft(ctx context.Context, req *mcp.CallToolRequest, args DraftArgs) (*mcp.CallToolResult, any, error) {
	if args.DraftID == "" {
		return toolError(fmt.Errorf("draft_id is required")), nil, nil
	}
	return toolJSON(s.api.Draft(ctx, args.DraftID))
}

func (s *toolServer) getDraftPicks(ctx context.Context, req *mcp.CallToolRequest, args DraftArgs) (*mcp.CallToolResult, any, error) {
	if args.DraftID == "" {
		return toolError(fmt.Errorf("draft_id is required")), nil, nil
	}
	return toolJSON(s.api.DraftPicks(ctx, args.DraftID))
}

func (s *toolServer) getDraftTradedPicks(ctx context.Context, req *mcp.CallToolRequest, args DraftArgs) (*mcp.CallToolResult, any, error) {
	if args.DraftID == "" {
		return toolError(fmt.Errorf("draft_id is required")), nil, nil
	}
	return toolJSON(s.api.DraftTradedPicks(ctx, args.DraftID))
}

func (s *toolServer) getPlayers(ctx context.Context, req *mcp.CallToolRequest, args PlayersArgs) (*mcp.CallToolResult, any, error) {
	sport := args.Sport
	if sport == "" {
		sport = defaultSport
	}
	return toolJSON(s.api.Players(ctx, sport))
}

func (s *toolServer) getTrendingPlayers(ctx context.Context, req *mcp.CallToolRequest, args TrendingArgs) (*mcp.CallToolResult, any, error) {
	trendType := strings.ToLower(strings.TrimSpace(args.Type))
	if trendType != "add" && trendType != "drop" {
		return toolError(fmt.Errorf("type must be \"add\" or \"drop\"")), nil, nil
	}
	sport := args.Sport
	if sport == "" {
		sport = defaultSport
	}
	lookback := args.LookbackHours
	if lookback <= 0 {
		lookback = defaultLookbackHours
	}
	limit := args.Limit
	if limit <= 0 {
		limit = defaultTrendingLimit
	}
	return toolJSON(s.api.TrendingPlayers(ctx, sport, trendType, lookback, limit))
}

func toolJSON(res []byte, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(res), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: prettyJSON(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}

// prettyJSON reindents the upstream body; non-JSON bodies pass through.
func prettyJSON(b []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return string(b)
	}
	return buf.String()
}
