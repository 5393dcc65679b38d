package sleeper

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// /state/nfl
func (c *Client) NFLState(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/state/nfl", nil)
}

// /user/{username_or_id}
func (c *Client) User(ctx context.Context, username string) ([]byte, error) {
	return c.get(ctx, "/user/"+url.PathEscape(username), nil)
}

// /user/{user_id}/leagues/{sport}/{season}
func (c *Client) UserLeagues(ctx context.Context, userID, sport, season string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/user/%s/leagues/%s/%s",
		url.PathEscape(userID), url.PathEscape(sport), url.PathEscape(season)), nil)
}

// /user/{user_id}/drafts/{sport}/{season}
func (c *Client) UserDrafts(ctx context.Context, userID, sport, season string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/user/%s/drafts/%s/%s",
		url.PathEscape(userID), url.PathEscape(sport), url.PathEscape(season)), nil)
}

// /league/{league_id}
func (c *Client) League(ctx context.Context, leagueID string) ([]byte, error) {
	return c.get(ctx, "/league/"+url.PathEscape(leagueID), nil)
}

// /league/{league_id}/rosters
func (c *Client) LeagueRosters(ctx context.Context, leagueID string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/league/%s/rosters", url.PathEscape(leagueID)), nil)
}

// /league/{league_id}/users
func (c *Client) LeagueUsers(ctx context.Context, leagueID string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/league/%s/users", url.PathEscape(leagueID)), nil)
}

// /league/{league_id}/matchups/{week}
func (c *Client) LeagueMatchups(ctx context.Context, leagueID string, week int) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/league/%s/matchups/%d", url.PathEscape(leagueID), week), nil)
}

// /league/{league_id}/winners_bracket
func (c *Client) LeagueWinnersBracket(ctx context.Context, leagueID string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/league/%s/winners_bracket", url.PathEscape(leagueID)), nil)
}

// /league/{league_id}/losers_bracket
func (c *Client) LeagueLosersBracket(ctx context.Context, leagueID string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/league/%s/losers_bracket", url.PathEscape(leagueID)), nil)
}

// /league/{league_id}/transactions/{round}
func (c *Client) LeagueTransactions(ctx context.Context, leagueID string, round int) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/league/%s/transactions/%d", url.PathEscape(leagueID), round), nil)
}

// /league/{league_id}/traded_picks
func (c *Client) LeagueTradedPicks(ctx context.Context, leagueID string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/league/%s/traded_picks", url.PathEscape(leagueID)), nil)
}

// /league/{league_id}/drafts
func (c *Client) LeagueDrafts(ctx context.Context, leagueID string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/league/%s/drafts", url.PathEscape(leagueID)), nil)
}

// /draft/{draft_id}
func (c *Client) Draft(ctx context.Context, draftID string) ([]byte, error) {
	return c.get(ctx, "/draft/"+url.PathEscape(draftID), nil)
}

// /draft/{draft_id}/picks
func (c *Client) DraftPicks(ctx context.Context, draftID string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/draft/%s/picks", url.PathEscape(draftID)), nil)
}

// /draft/{draft_id}/traded_picks
func (c *Client) DraftTradedPicks(ctx context.Context, draftID string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/draft/%s/traded_picks", url.PathEscape(draftID)), nil)
}

// /players/{sport}
//
// The full player dump is large (several MB); Sleeper asks callers to fetch
// it sparingly. The client forwards it as-is like every other endpoint.
func (c *Client) Players(ctx context.Context, sport string) ([]byte, error) {
	return c.get(ctx, "/players/"+url.PathEscape(sport), nil)
}

// /players/{sport}/trending/{type}?lookback_hours=&limit=
func (c *Client) TrendingPlayers(ctx context.Context, sport, trendType string, lookbackHours, limit int) ([]byte, error) {
	q := url.Values{}
	q.Set("lookback_hours", strconv.Itoa(lookbackHours))
	q.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, fmt.Sprintf("/players/%s/trending/%s",
		url.PathEscape(sport), url.PathEscape(trendType)), q)
}
