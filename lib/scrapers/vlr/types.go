package vlr

// TeamRef is the minimal identity of a team as it appears on a match list
// item.
type TeamRef struct {
	Name  string `json:"name"`
	ID    string `json:"id,omitempty"`
	Score string `json:"score,omitempty"`
}

type MatchSummary struct {
	ID        string  `json:"id"`
	Team1     TeamRef `json:"team1"`
	Team2     TeamRef `json:"team2"`
	Event     string  `json:"event"`
	StartTime string  `json:"start_time"`
}

type LiveMatch struct {
	ID     string  `json:"id"`
	Team1  TeamRef `json:"team1"`
	Team2  TeamRef `json:"team2"`
	Event  string  `json:"event"`
	Status string  `json:"status"`
}

// Team is one side of a match header.
type Team struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Score string `json:"score"`
	Logo  string `json:"img"`
}

type Event struct {
	ID     string `json:"id,omitempty"`
	Series string `json:"series"`
	Stage  string `json:"stage"`
	Status string `json:"status,omitempty"`
}

type Agent struct {
	Title string `json:"title"`
	Icon  string `json:"img"`
}

// PlayerStat is one scoreboard row. Numeric fields default to zero when the
// cell fails to parse; a bad stat never drops the row.
type PlayerStat struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name"`
	Team          string  `json:"team"`
	Agents        []Agent `json:"agents,omitempty"`
	Rating        float64 `json:"rating"`
	ACS           int     `json:"acs"`
	Kills         int     `json:"kills"`
	Deaths        int     `json:"deaths"`
	Assists       int     `json:"assists"`
	KAST          int     `json:"kast"`
	ADR           int     `json:"adr"`
	Headshot      int     `json:"hs_percent"`
	FirstKills    int     `json:"first_kills"`
	FirstDeaths   int     `json:"first_deaths"`
	FirstKillDiff int     `json:"first_kill_diff"`
	Avatar        string  `json:"img,omitempty"`
}

// TeamScore keeps the score as displayed, which is not guaranteed numeric
// ("13", "W", "-").
type TeamScore struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

type MapResult struct {
	Name    string       `json:"map"`
	Teams   []TeamScore  `json:"teams"`
	Players []PlayerStat `json:"players"`
}

type MatchDetail struct {
	Teams      []Team      `json:"teams"`
	Event      Event       `json:"event"`
	Maps       []MapResult `json:"maps"`
	MapCount   int         `json:"map_count"`
	IsUpcoming bool        `json:"is_upcoming"`
}

type RosterPlayer struct {
	ID       string `json:"id,omitempty"`
	Alias    string `json:"alias"`
	RealName string `json:"real_name,omitempty"`
	Role     string `json:"role,omitempty"`
	Avatar   string `json:"img,omitempty"`
}

type RecentMatch struct {
	Opponent string `json:"opponent"`
	Score    string `json:"score"`
	Result   string `json:"result"`
}

type TeamProfile struct {
	ID     string         `json:"id,omitempty"`
	Name   string         `json:"name"`
	Logo   string         `json:"img"`
	Region string         `json:"region,omitempty"`
	Roster []RosterPlayer `json:"roster"`
	Recent []RecentMatch  `json:"recent_matches,omitempty"`
}

type PlayerProfile struct {
	ID          string            `json:"id,omitempty"`
	Alias       string            `json:"alias"`
	RealName    string            `json:"real_name,omitempty"`
	Team        string            `json:"team,omitempty"`
	Avatar      string            `json:"img,omitempty"`
	CareerStats map[string]string `json:"career_stats,omitempty"`
	Recent      []RecentMatch     `json:"recent_matches,omitempty"`
}
