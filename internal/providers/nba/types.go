package nba

// ScheduleResponse is the full-season schedule feed, bucketed by month.
type ScheduleResponse struct {
	Months []MonthResponse `json:"lscd"`
}

type MonthResponse struct {
	Schedule MonthSchedule `json:"mscd"`
}

type MonthSchedule struct {
	Month string         `json:"mon"`
	Games []GameResponse `json:"g"`
}

// GameResponse is one game in the schedule feed. Older seasons only carry
// the Eastern wall-clock time (etm); newer ones add the UTC date/time pair
// and the broadcaster list.
type GameResponse struct {
	ID          string             `json:"gid"`
	Code        string             `json:"gcode"`
	Series      string             `json:"seri"`
	Status      string             `json:"stt"`
	Date        string             `json:"gdte"`
	EasternTime string             `json:"etm"`
	UTCDate     string             `json:"gdtutc"`
	UTCTime     string             `json:"utctm"`
	Arena       string             `json:"an"`
	City        string             `json:"ac"`
	State       string             `json:"as"`
	Home        TeamResponse       `json:"h"`
	Visitor     TeamResponse       `json:"v"`
	Broadcasts  BroadcastsResponse `json:"bd"`
}

type TeamResponse struct {
	Nickname     string `json:"tn"`
	Abbreviation string `json:"ta"`
	City         string `json:"tc"`
}

type BroadcastsResponse struct {
	Broadcasters []BroadcasterResponse `json:"b"`
}

type BroadcasterResponse struct {
	Display  string `json:"disp"`
	Scope    string `json:"scope"`
	Type     string `json:"type"`
	Language string `json:"lan"`
}

// StandingsResponse is the conference standings feed.
type StandingsResponse struct {
	League struct {
		Standard struct {
			Conference struct {
				East []StandingResponse `json:"east"`
				West []StandingResponse `json:"west"`
			} `json:"conference"`
		} `json:"standard"`
	} `json:"league"`
}

type StandingResponse struct {
	Win           string `json:"win"`
	Loss          string `json:"loss"`
	WinPct        string `json:"winPct"`
	ConfRank      string `json:"confRank"`
	GamesBehind   string `json:"gamesBehind"`
	TeamSitesOnly struct {
		TeamTricode string `json:"teamTricode"`
	} `json:"teamSitesOnly"`
}
