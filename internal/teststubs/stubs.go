package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/league-schedules/internal/domain"
	domaingames "github.com/preston-bernstein/league-schedules/internal/domain/games"
	"github.com/preston-bernstein/league-schedules/internal/snapshots"
)

// StubProvider is a test double for providers.LeagueProvider.
type StubProvider struct {
	Name   string
	Games  []domaingames.Game
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}

	notifyOnce sync.Once
}

// League returns the configured league name.
func (s *StubProvider) League() string {
	return s.Name
}

// FetchGames returns configured games and error while tracking calls.
// Notify is closed on the first call.
func (s *StubProvider) FetchGames(ctx context.Context) ([]domaingames.Game, error) {
	_ = ctx
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	s.Calls.Add(1)
	return s.Games, s.Err
}

// StubScheduleWriter is a test double for runner.ScheduleWriter.
type StubScheduleWriter struct {
	mu      sync.Mutex
	Written map[string]domain.Schedule // keyed by league
	Metas   map[string]snapshots.BuildMeta
	Err     error
}

// WriteSchedule records the schedule for verification in tests.
func (w *StubScheduleWriter) WriteSchedule(meta snapshots.BuildMeta, sched domain.Schedule) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]domain.Schedule)
		w.Metas = make(map[string]snapshots.BuildMeta)
	}
	w.Written[sched.League] = sched
	w.Metas[sched.League] = meta
	return nil
}

// Schedule returns the schedule written for league, if any.
func (w *StubScheduleWriter) Schedule(league string) (domain.Schedule, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	sched, ok := w.Written[league]
	return sched, ok
}
