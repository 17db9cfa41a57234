package nba

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/league-schedules/internal/domain/games"
	"github.com/preston-bernstein/league-schedules/internal/logging"
	"github.com/preston-bernstein/league-schedules/internal/providers"
)

// Config controls how the NBA client reaches its upstream sources.
type Config struct {
	ScheduleBaseURL string
	StandingsURL    string
	RankingsURL     string
	SeasonEndYear   int
	Fetcher         *providers.Fetcher
}

// Client fetches the NBA schedule, standings and power rankings and maps them to domain games.
type Client struct {
	scheduleBaseURL string
	standingsURL    string
	rankingsURL     string
	seasonEndYear   int
	fetcher         *providers.Fetcher
}

var _ providers.LeagueProvider = (*Client)(nil)

// NewClient constructs an NBA client with the provided configuration.
func NewClient(cfg Config) *Client {
	fetcher := cfg.Fetcher
	if fetcher == nil {
		fetcher = providers.NewFetcher(providers.FetcherConfig{})
	}
	seasonEndYear := cfg.SeasonEndYear
	if seasonEndYear <= 0 {
		seasonEndYear = defaultSeasonEndYear
	}
	return &Client{
		scheduleBaseURL: providers.NormalizeBaseURL(cfg.ScheduleBaseURL, defaultScheduleBaseURL),
		standingsURL:    orDefault(cfg.StandingsURL, defaultStandingsURL),
		rankingsURL:     orDefault(cfg.RankingsURL, defaultRankingsURL),
		seasonEndYear:   seasonEndYear,
		fetcher:         fetcher,
	}
}

// League returns the short league identifier.
func (c *Client) League() string {
	return league
}

// FetchGames fetches all three sources concurrently and normalizes the schedule.
// Any source failure fails the whole league.
func (c *Client) FetchGames(ctx context.Context) ([]games.Game, error) {
	var (
		schedule  ScheduleResponse
		standings StandingsResponse
		rankings  []string
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		schedule, err = c.FetchSchedule(ctx, c.seasonEndYear)
		return err
	})
	g.Go(func() error {
		var err error
		standings, err = c.FetchStandings(ctx)
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

	return Normalize(schedule, rankings, standings)
}

// FetchSchedule retrieves the full schedule for the season ending in seasonEndYear.
func (c *Client) FetchSchedule(ctx context.Context, seasonEndYear int) (ScheduleResponse, error) {
	var payload ScheduleResponse
	err := c.fetcher.GetJSON(ctx, sourceSchedule, c.scheduleURL(seasonEndYear), &payload)
	return payload, err
}

// FetchStandings retrieves the current conference standings.
func (c *Client) FetchStandings(ctx context.Context) (StandingsResponse, error) {
	var payload StandingsResponse
	err := c.fetcher.GetJSON(ctx, sourceStandings, c.standingsURL, &payload)
	return payload, err
}

// FetchRankings scrapes team full names from the power rankings page, best team first.
func (c *Client) FetchRankings(ctx context.Context) ([]string, error) {
	doc, err := c.fetcher.GetDocument(ctx, sourceRankings, c.rankingsURL)
	if err != nil {
		return nil, err
	}
	names := parseRankings(doc)
	if len(names) == 0 {
		logging.Warn(logging.FromContext(ctx, nil), "power rankings page yielded no teams",
			slog.String(logging.FieldSource, sourceRankings),
			slog.String(logging.FieldURL, c.rankingsURL),
		)
	}
	return names, nil
}

func (c *Client) scheduleURL(seasonEndYear int) string {
	return c.scheduleBaseURL + fmt.Sprintf(schedulePathFormat, seasonEndYear-1)
}

func parseRankings(doc *goquery.Document) []string {
	var names []string
	doc.Find(rankingsSelector).Each(func(_ int, s *goquery.Selection) {
		names = append(names, strings.TrimSpace(s.Text()))
	})
	return names
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
