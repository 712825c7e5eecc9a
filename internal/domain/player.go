package domain

type Player struct {
	ID   uint   `json:"player_id"`
	Name string `json:"player_name"`
}

type PlayerChanges struct {
	Name *string
}

type PlayerRef struct {
	Name string `json:"player_name"`
}
