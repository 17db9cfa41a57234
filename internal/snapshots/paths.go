package snapshots

import "path/filepath"

// Document names written for every league.
const (
	DocGames         = "games"
	DocTeams         = "teams"
	DocTeamSchedules = "teamSchedules"
	DocGamesByDate   = "gamesByDate"
)

const manifestName = "manifest.json"

// Documents lists document names in write order.
func Documents() []string {
	return []string{DocGames, DocTeams, DocTeamSchedules, DocGamesByDate}
}

// DocumentPath builds the path of one league document.
func DocumentPath(basePath, league, doc string) string {
	return filepath.Join(basePath, league, doc+".json")
}

// ManifestPath builds the path of the build manifest.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestName)
}
