package snapshots

import (
	"encoding/json"
	"os"
	"sort"
	"time"
)

const manifestVersion = 1

// Manifest tracks which leagues have output and when each was last built.
type Manifest struct {
	Version     int                   `json:"version"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Leagues     map[string]LeagueMeta `json:"leagues"`
}

// LeagueMeta describes the most recent successful build of one league.
type LeagueMeta struct {
	Documents []string  `json:"documents"`
	Games     int       `json:"games"`
	Teams     int       `json:"teams"`
	RunID     string    `json:"runId"`
	LastBuilt time.Time `json:"lastBuilt"`
}

// LeagueNames returns the manifest's leagues sorted by name.
func (m Manifest) LeagueNames() []string {
	names := make([]string, 0, len(m.Leagues))
	for name := range m.Leagues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func defaultManifest() Manifest {
	return Manifest{
		Version: manifestVersion,
		Leagues: map[string]LeagueMeta{},
	}
}

// ReadManifest loads the manifest under basePath.
func ReadManifest(basePath string) (Manifest, error) {
	return readManifest(ManifestPath(basePath))
}

// readManifest falls back to an empty manifest when the file is missing or unreadable.
func readManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	if m.Leagues == nil {
		m.Leagues = map[string]LeagueMeta{}
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.Version = manifestVersion
	m.GeneratedAt = now
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(ManifestPath(basePath), data)
}
