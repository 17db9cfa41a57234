package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrSource = "source"
	AttrLeague = "league"
	AttrStatus = "status"
)
