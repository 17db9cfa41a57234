package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls            int
	errors           int
	lastFetchLatency time.Duration
}

type leagueStats struct {
	builds        int
	failures      int
	lastGames     int
	lastBuildTime time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches and league builds.
type Recorder struct {
	mu      sync.Mutex
	sources map[string]*sourceStats
	leagues map[string]*leagueStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources: make(map[string]*sourceStats),
		leagues: make(map[string]*leagueStats),
		otel:    otel,
	}
}

// RecordSourceFetch counts one upstream fetch and stores its latency.
func (r *Recorder) RecordSourceFetch(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	stats.calls++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceFetch(source, duration, err)
	}
}

// RecordLeagueBuild counts one league assembly and the number of games it produced.
func (r *Recorder) RecordLeagueBuild(league string, duration time.Duration, games int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.leagues[league]
	if !ok {
		stats = &leagueStats{}
		r.leagues[league] = stats
	}
	stats.builds++
	stats.lastBuildTime = duration
	if err != nil {
		stats.failures++
	} else {
		stats.lastGames = games
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLeagueBuild(league, duration, games, err)
	}
}

// RecordRunCycle tracks one full build cycle across all leagues.
func (r *Recorder) RecordRunCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRun(duration, err)
}

// SourceSnapshot is a copy of the current stats for one upstream source.
type SourceSnapshot struct {
	Calls            int
	Errors           int
	LastFetchLatency time.Duration
}

// LeagueSnapshot is a copy of the current stats for one league.
type LeagueSnapshot struct {
	Builds        int
	Failures      int
	LastGames     int
	LastBuildTime time.Duration
}

func (r *Recorder) Source(source string) SourceSnapshot {
	if r == nil {
		return SourceSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.sources[source]
	if !ok {
		return SourceSnapshot{}
	}
	return SourceSnapshot{
		Calls:            stats.calls,
		Errors:           stats.errors,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

func (r *Recorder) League(league string) LeagueSnapshot {
	if r == nil {
		return LeagueSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.leagues[league]
	if !ok {
		return LeagueSnapshot{}
	}
	return LeagueSnapshot{
		Builds:        stats.builds,
		Failures:      stats.failures,
		LastGames:     stats.lastGames,
		LastBuildTime: stats.lastBuildTime,
	}
}
