package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/league-schedules/internal/domain"
	"github.com/preston-bernstein/league-schedules/internal/domain/games"
	"github.com/preston-bernstein/league-schedules/internal/domain/teams"
)

func sampleSchedule(league string) domain.Schedule {
	home := teams.Team{Abbreviation: "MIL", Sport: "basketball"}
	away := teams.Team{Abbreviation: "BKN", Sport: "basketball"}
	g := games.Game{Code: "g1", Home: home, Away: away, Date: time.Date(2021, 10, 19, 23, 30, 0, 0, time.UTC)}

	byTeam := games.NewIndex()
	byTeam.Append("mil", g)
	byTeam.Append("bkn", g)
	byDay := games.NewIndex()
	byDay.Append("2021-10-19", g)

	return domain.Schedule{
		League:        league,
		Games:         []games.Game{g},
		Teams:         []teams.Team{home, away},
		TeamSchedules: byTeam,
		GamesByDate:   byDay,
	}
}

func readEnvelope(t *testing.T, path string) Envelope {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected document at %s: %v", path, err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return env
}

func TestWriteScheduleWritesAllDocuments(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	built := time.Date(2021, 10, 1, 12, 0, 0, 0, time.UTC)

	if err := w.WriteSchedule(BuildMeta{BuildDate: built, RunID: "run-1"}, sampleSchedule("nba")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, doc := range Documents() {
		env := readEnvelope(t, DocumentPath(dir, "nba", doc))
		if env.Meta.League != "nba" || env.Meta.RunID != "run-1" || !env.Meta.BuildDate.Equal(built) {
			t.Fatalf("%s: unexpected meta %+v", doc, env.Meta)
		}
		if len(env.Data) == 0 {
			t.Fatalf("%s: expected data", doc)
		}
	}

	env := readEnvelope(t, DocumentPath(dir, "nba", DocTeamSchedules))
	var idx games.Index
	if err := json.Unmarshal(env.Data, &idx); err != nil {
		t.Fatalf("decode team schedules: %v", err)
	}
	if keys := idx.Keys(); len(keys) != 2 || keys[0] != "mil" || keys[1] != "bkn" {
		t.Fatalf("expected team schedule keys in insertion order, got %v", keys)
	}

	env = readEnvelope(t, DocumentPath(dir, "nba", DocGames))
	var gs []games.Game
	if err := json.Unmarshal(env.Data, &gs); err != nil {
		t.Fatalf("decode games: %v", err)
	}
	if len(gs) != 1 || gs[0].Code != "g1" {
		t.Fatalf("unexpected games %+v", gs)
	}
}

func TestWriteScheduleUpdatesManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	w.now = func() time.Time { return time.Date(2021, 10, 2, 0, 0, 0, 0, time.UTC) }

	if err := w.WriteSchedule(BuildMeta{RunID: "a"}, sampleSchedule("nba")); err != nil {
		t.Fatalf("write nba: %v", err)
	}
	if err := w.WriteSchedule(BuildMeta{RunID: "b"}, sampleSchedule("mls")); err != nil {
		t.Fatalf("write mls: %v", err)
	}

	m, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	names := m.LeagueNames()
	if len(names) != 2 || names[0] != "mls" || names[1] != "nba" {
		t.Fatalf("expected both leagues, got %v", names)
	}
	nba := m.Leagues["nba"]
	if nba.RunID != "a" || nba.Games != 1 || nba.Teams != 2 || len(nba.Documents) != 4 {
		t.Fatalf("unexpected nba entry %+v", nba)
	}
	if m.Version != manifestVersion || !m.GeneratedAt.Equal(time.Date(2021, 10, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected manifest header %+v", m)
	}
}

func TestWriteScheduleOverwritesPreviousRun(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	if err := w.WriteSchedule(BuildMeta{RunID: "first"}, sampleSchedule("nba")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	empty := domain.Schedule{League: "nba", Games: []games.Game{}, Teams: []teams.Team{}, TeamSchedules: games.NewIndex(), GamesByDate: games.NewIndex()}
	if err := w.WriteSchedule(BuildMeta{RunID: "second"}, empty); err != nil {
		t.Fatalf("second write: %v", err)
	}

	env := readEnvelope(t, DocumentPath(dir, "nba", DocGamesByDate))
	if env.Meta.RunID != "second" || string(env.Data) != "{}" {
		t.Fatalf("expected replaced document, got %s %s", env.Meta.RunID, env.Data)
	}
	if _, err := os.Stat(DocumentPath(dir, "nba", DocGamesByDate) + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected no temp file left behind, got %v", err)
	}
}

func TestWriteScheduleReportsWriteError(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the league directory should be.
	if err := os.WriteFile(filepath.Join(dir, "nba"), []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	err := NewWriter(dir).WriteSchedule(BuildMeta{RunID: "r"}, sampleSchedule("nba"))
	writeErr, ok := AsWriteError(err)
	if !ok {
		t.Fatalf("expected OutputWriteError, got %v", err)
	}
	if writeErr.League != "nba" || writeErr.Path != DocumentPath(dir, "nba", DocGames) {
		t.Fatalf("unexpected write error %+v", writeErr)
	}
}

func TestWriteScheduleRequiresWriterAndLeague(t *testing.T) {
	var w *Writer
	if err := w.WriteSchedule(BuildMeta{}, sampleSchedule("nba")); err == nil {
		t.Fatal("expected error for nil writer")
	}
	if err := NewWriter(t.TempDir()).WriteSchedule(BuildMeta{}, domain.Schedule{}); err == nil {
		t.Fatal("expected error for missing league")
	}
}

func TestBasePathExposesRoot(t *testing.T) {
	base := t.TempDir()
	if got := NewWriter(base).BasePath(); got != base {
		t.Fatalf("expected base path %s, got %s", base, got)
	}
}
