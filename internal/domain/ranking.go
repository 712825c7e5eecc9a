package domain

type Ranking struct {
	PlayerID  uint       `json:"player_id"`
	Player    *PlayerRef `json:"player"`
	EventID   uint       `json:"event_id"`
	Event     *EventRef  `json:"event"`
	Placement *int       `json:"placement"`
	Points    int        `json:"points"`
	Wins      int        `json:"wins"`
	Losses    int        `json:"losses"`
	Ties      int        `json:"ties"`
}

type RankingFilter struct {
	PlayerID *uint
	EventID  *uint
}
