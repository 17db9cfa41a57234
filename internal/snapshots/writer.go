package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/preston-bernstein/league-schedules/internal/domain"
)

// BuildMeta identifies one build run.
type BuildMeta struct {
	BuildDate time.Time
	RunID     string
}

// Meta is the envelope header stamped on every document.
type Meta struct {
	BuildDate time.Time `json:"buildDate"`
	RunID     string    `json:"runId"`
	League    string    `json:"league"`
}

// Envelope wraps a document payload with its build metadata.
type Envelope struct {
	Meta Meta            `json:"_meta"`
	Data json.RawMessage `json:"data"`
}

// Writer persists league schedules as JSON documents and keeps the manifest current.
type Writer struct {
	basePath string
	now      func() time.Time

	// Serializes manifest read-modify-write across concurrently written leagues.
	manifestMu sync.Mutex
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{
		basePath: basePath,
		now:      time.Now,
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSchedule writes the four documents of one league under {base}/{league}/,
// each replaced atomically, then records the league in the manifest.
func (w *Writer) WriteSchedule(meta BuildMeta, sched domain.Schedule) error {
	if w == nil {
		return errors.New("schedule writer not configured")
	}
	if sched.League == "" {
		return errors.New("league required")
	}

	header := Meta{
		BuildDate: meta.BuildDate.UTC(),
		RunID:     meta.RunID,
		League:    sched.League,
	}
	payloads := map[string]any{
		DocGames:         sched.Games,
		DocTeams:         sched.Teams,
		DocTeamSchedules: sched.TeamSchedules,
		DocGamesByDate:   sched.GamesByDate,
	}
	for _, doc := range Documents() {
		target := DocumentPath(w.basePath, sched.League, doc)
		if err := writeDocument(target, header, payloads[doc]); err != nil {
			return &OutputWriteError{League: sched.League, Path: target, Err: err}
		}
	}

	if err := w.updateManifest(header, sched); err != nil {
		return &OutputWriteError{League: sched.League, Path: ManifestPath(w.basePath), Err: err}
	}
	return nil
}

func writeDocument(target string, header Meta, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	body, err := json.MarshalIndent(Envelope{Meta: header, Data: data}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return writeAtomic(target, body)
}

func (w *Writer) updateManifest(header Meta, sched domain.Schedule) error {
	w.manifestMu.Lock()
	defer w.manifestMu.Unlock()

	m, _ := readManifest(ManifestPath(w.basePath))
	m.Leagues[sched.League] = LeagueMeta{
		Documents: Documents(),
		Games:     len(sched.Games),
		Teams:     len(sched.Teams),
		RunID:     header.RunID,
		LastBuilt: header.BuildDate,
	}
	return writeManifest(w.basePath, m, w.now().UTC())
}

// writeAtomic writes data beside target and renames it into place.
func writeAtomic(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
