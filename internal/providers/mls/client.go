package mls

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/league-schedules/internal/domain/games"
	"github.com/preston-bernstein/league-schedules/internal/logging"
	"github.com/preston-bernstein/league-schedules/internal/providers"
	"github.com/preston-bernstein/league-schedules/internal/timeutil"
)

// Config controls how the MLS client reaches its upstream sources.
// WindowStart and WindowEnd are month-day bounds ("06-01") within Season.
type Config struct {
	BaseURL       string
	RankingsURL   string
	Season        int
	CompetitionID int
	WindowStart   string
	WindowEnd     string
	Fetcher       *providers.Fetcher
}

// Client fetches MLS matches, standings and power rankings and maps them to domain games.
type Client struct {
	baseURL       string
	rankingsURL   string
	season        int
	competitionID int
	windowStart   string
	windowEnd     string
	fetcher       *providers.Fetcher
}

var _ providers.LeagueProvider = (*Client)(nil)

// NewClient constructs an MLS client with the provided configuration.
func NewClient(cfg Config) *Client {
	fetcher := cfg.Fetcher
	if fetcher == nil {
		fetcher = providers.NewFetcher(providers.FetcherConfig{})
	}
	return &Client{
		baseURL:       providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		rankingsURL:   orDefault(cfg.RankingsURL, defaultRankingsURL),
		season:        positiveOrDefault(cfg.Season, defaultSeason),
		competitionID: positiveOrDefault(cfg.CompetitionID, defaultCompetitionID),
		windowStart:   orDefault(cfg.WindowStart, defaultWindowStart),
		windowEnd:     orDefault(cfg.WindowEnd, defaultWindowEnd),
		fetcher:       fetcher,
	}
}

// League returns the short league identifier.
func (c *Client) League() string {
	return league
}

// FetchGames fetches all three sources concurrently and normalizes the match list.
// Any source failure fails the whole league.
func (c *Client) FetchGames(ctx context.Context) ([]games.Game, error) {
	var (
		matches   []MatchResponse
		standings []StandingResponse
		rankings  []string
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		matches, err = c.FetchSchedule(ctx, c.season)
		return err
	})
	g.Go(func() error {
		var err error
		standings, err = c.FetchStandings(ctx, c.season)
		return err
	})
	g.Go(func() error {
		var err error
		rankings, err = c.FetchRankings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Normalize(matches, rankings, standings)
}

// FetchSchedule retrieves the season's matches within the configured date window.
func (c *Client) FetchSchedule(ctx context.Context, season int) ([]MatchResponse, error) {
	from := fmt.Sprintf("%d-%s", season, c.windowStart)
	to := fmt.Sprintf("%d-%s", season, c.windowEnd)
	for _, day := range []string{from, to} {
		if _, err := timeutil.ParseDate(day); err != nil {
			return nil, &providers.SourceParseError{
				Source: sourceSchedule,
				Err:    fmt.Errorf("date window %s..%s: %w", from, to, err),
			}
		}
	}

	q := url.Values{}
	q.Set("culture", "en-us")
	q.Set("dateFrom", from)
	q.Set("dateTo", to)
	q.Set("excludeSecondaryTeams", "true")

	var payload []MatchResponse
	err := c.fetcher.GetJSON(ctx, sourceSchedule, c.baseURL+matchesPath+"?"+q.Encode(), &payload)
	return payload, err
}

// FetchStandings retrieves the final standings of the configured competition for season.
func (c *Client) FetchStandings(ctx context.Context, season int) ([]StandingResponse, error) {
	q := url.Values{}
	q.Set("isLive", "false")
	q.Set("seasonId", strconv.Itoa(season))
	q.Set("competitionId", strconv.Itoa(c.competitionID))

	var payload []StandingResponse
	err := c.fetcher.GetJSON(ctx, sourceStandings, c.baseURL+standingsPath+"?"+q.Encode(), &payload)
	return payload, err
}

// FetchRankings scrapes club abbreviations from the power rankings page, best club first,
// lower-cased and reconciled with the match feed's spelling.
func (c *Client) FetchRankings(ctx context.Context) ([]string, error) {
	doc, err := c.fetcher.GetDocument(ctx, sourceRankings, c.rankingsURL)
	if err != nil {
		return nil, err
	}
	abbreviations := parseRankings(doc)
	if len(abbreviations) == 0 {
		logging.Warn(logging.FromContext(ctx, nil), "power rankings page yielded no teams",
			slog.String(logging.FieldSource, sourceRankings),
			slog.String(logging.FieldURL, c.rankingsURL),
		)
	}
	return abbreviations, nil
}

func parseRankings(doc *goquery.Document) []string {
	var out []string
	doc.Find(rankingsSelector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, normalizeAbbreviation(s.Text()))
	})
	return out
}

func normalizeAbbreviation(raw string) string {
	abbr := strings.ToLower(strings.TrimSpace(raw))
	if mapped, ok := abbreviationMap[abbr]; ok {
		return mapped
	}
	return abbr
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func positiveOrDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
