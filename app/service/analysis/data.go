package analysis

// MatchStats is the per-match view of a single player's event stream.
type MatchStats struct {
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	MatchID    int    `json:"match_id"`
	Position   string `json:"position,omitempty"`

	TotalPasses       int     `json:"total_passes"`
	SuccessfulPasses  int     `json:"successful_passes"`
	InterceptedPasses int     `json:"intercepted_passes"`
	PassAccuracy      float64 `json:"pass_accuracy"`
	AvgPassLength     float64 `json:"avg_pass_length,omitempty"`
	FavoriteRecipient string  `json:"favorite_pass_recipient,omitempty"`
	PassesToFavorite  int     `json:"passes_to_favorite_recipient,omitempty"`

	TotalShots   int     `json:"total_shots"`
	Goals        int     `json:"goals"`
	ShotAccuracy float64 `json:"shot_accuracy"`
	TotalXG      float64 `json:"total_xg"`

	TotalDribbles      int     `json:"total_dribbles"`
	SuccessfulDribbles int     `json:"successful_dribbles"`
	DribbleSuccessRate float64 `json:"dribble_success_rate"`

	TotalCarries       int     `json:"total_carries"`
	TotalCarryDistance float64 `json:"total_carry_distance"`
	AvgCarryDistance   float64 `json:"avg_carry_distance"`
	TotalCarryTime     float64 `json:"total_carry_time_seconds"`

	FavoriteBodyPart  string         `json:"favorite_body_part_for_pass,omitempty"`
	BodyPartBreakdown map[string]int `json:"body_part_breakdown,omitempty"`

	AvgPositionX   float64 `json:"avg_position_x"`
	AvgPositionY   float64 `json:"avg_position_y"`
	PositionRangeX float64 `json:"position_range_x"`
	PositionRangeY float64 `json:"position_range_y"`

	TotalPressures int `json:"total_pressures"`
	Interceptions  int `json:"interceptions"`

	WasSubstituted bool   `json:"was_substituted"`
	ReplacedBy     string `json:"replaced_by,omitempty"`
	Formation      int    `json:"formation,omitempty"`

	PlayingTimeSeconds float64 `json:"total_playing_time_seconds"`
	ActionsPerMinute   float64 `json:"actions_per_minute"`
	TotalActions       int     `json:"total_actions"`

	Periods map[int]*PeriodStats `json:"periods,omitempty"`
}

// PeriodStats splits the headline counters per match period. Each period's
// timestamps restart from zero.
type PeriodStats struct {
	Actions     int     `json:"actions"`
	Passes      int     `json:"passes"`
	Shots       int     `json:"shots"`
	Goals       int     `json:"goals"`
	Carries     int     `json:"carries"`
	Dribbles    int     `json:"dribbles"`
	PlayingTime float64 `json:"playing_time_seconds"`
}

// CareerStats aggregates match stats across every indexed appearance.
type CareerStats struct {
	PlayerName string `json:"player_name"`
	MatchCount int    `json:"match_count"`

	TotalPasses     int     `json:"total_passes"`
	CompletedPasses int     `json:"completed_passes"`
	PassAccuracy    float64 `json:"pass_accuracy"`

	TotalShots   int     `json:"total_shots"`
	Goals        int     `json:"goals"`
	ShotAccuracy float64 `json:"shot_accuracy"`

	TotalDribbles      int     `json:"total_dribbles"`
	SuccessfulDribbles int     `json:"successful_dribbles"`
	DribbleSuccessRate float64 `json:"dribble_success_rate"`

	DefensiveActions int `json:"defensive_actions"`
	TotalActions     int `json:"total_actions"`

	ByCompetition map[string]*CompetitionStats `json:"by_competition,omitempty"`

	Matches []*MatchStats `json:"matches,omitempty"`
}

type CompetitionStats struct {
	MatchCount      int     `json:"match_count"`
	TotalPasses     int     `json:"total_passes"`
	CompletedPasses int     `json:"completed_passes"`
	PassAccuracy    float64 `json:"pass_accuracy"`
	TotalShots      int     `json:"total_shots"`
	Goals           int     `json:"goals"`
}
