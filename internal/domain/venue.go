package domain

type Venue struct {
	ID      uint    `json:"venue_id"`
	Name    string  `json:"venue_name"`
	Address *string `json:"venue_address"`
	Number  *string `json:"venue_number"`
}

type VenueChanges struct {
	Name    *string
	Address *string
	Number  *string
}

type VenueRef struct {
	Name string `json:"venue_name"`
}
