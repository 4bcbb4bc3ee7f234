package statsbomb

// Subset of the StatsBomb open-data schema the service consumes.

type Competition struct {
	CompetitionID   int    `json:"competition_id"`
	SeasonID        int    `json:"season_id"`
	CompetitionName string `json:"competition_name"`
	CountryName     string `json:"country_name"`
	SeasonName      string `json:"season_name"`
}

type Match struct {
	MatchID     int       `json:"match_id"`
	MatchDate   string    `json:"match_date"`
	HomeScore   int       `json:"home_score"`
	AwayScore   int       `json:"away_score"`
	HomeTeam    MatchTeam `json:"home_team"`
	AwayTeam    MatchTeam `json:"away_team"`
	Competition struct {
		CompetitionID   int    `json:"competition_id"`
		CompetitionName string `json:"competition_name"`
		CountryName     string `json:"country_name"`
	} `json:"competition"`
	Season struct {
		SeasonID   int    `json:"season_id"`
		SeasonName string `json:"season_name"`
	} `json:"season"`
}

type MatchTeam struct {
	ID   int    `json:"home_team_id,omitempty"`
	Name string `json:"home_team_name,omitempty"`
	// Away variants share the struct, only one pair is populated per side
	AwayID   int    `json:"away_team_id,omitempty"`
	AwayName string `json:"away_team_name,omitempty"`
}

func (t MatchTeam) TeamName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.AwayName
}

type TeamLineup struct {
	TeamID   int            `json:"team_id"`
	TeamName string         `json:"team_name"`
	Lineup   []LineupPlayer `json:"lineup"`
}

type LineupPlayer struct {
	PlayerID       int    `json:"player_id"`
	PlayerName     string `json:"player_name"`
	PlayerNickname string `json:"player_nickname"`
	JerseyNumber   int    `json:"jersey_number"`
	Country        struct {
		Name string `json:"name"`
	} `json:"country"`
}

type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Event struct {
	ID        string    `json:"id"`
	Index     int       `json:"index"`
	Period    int       `json:"period"`
	Timestamp string    `json:"timestamp"`
	Minute    int       `json:"minute"`
	Second    int       `json:"second"`
	Duration  float64   `json:"duration"`
	Type      Ref       `json:"type"`
	Team      Ref       `json:"team"`
	Player    Ref       `json:"player"`
	Position  Ref       `json:"position"`
	Location  []float64 `json:"location"`

	Pass         *PassDetail         `json:"pass,omitempty"`
	Shot         *ShotDetail         `json:"shot,omitempty"`
	Carry        *CarryDetail        `json:"carry,omitempty"`
	Dribble      *DribbleDetail      `json:"dribble,omitempty"`
	Substitution *SubstitutionDetail `json:"substitution,omitempty"`
	Tactics      *TacticsDetail      `json:"tactics,omitempty"`
}

type PassDetail struct {
	Recipient *Ref    `json:"recipient,omitempty"`
	Length    float64 `json:"length"`
	BodyPart  *Ref    `json:"body_part,omitempty"`
	Outcome   *Ref    `json:"outcome,omitempty"`
}

type ShotDetail struct {
	Outcome     *Ref    `json:"outcome,omitempty"`
	StatsbombXG float64 `json:"statsbomb_xg"`
}

type CarryDetail struct {
	EndLocation []float64 `json:"end_location"`
}

type DribbleDetail struct {
	Outcome *Ref `json:"outcome,omitempty"`
}

type SubstitutionDetail struct {
	Replacement Ref `json:"replacement"`
}

type TacticsDetail struct {
	Formation int `json:"formation"`
}
