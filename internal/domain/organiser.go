package domain

type Organiser struct {
	ID     uint    `json:"organiser_id"`
	Name   string  `json:"organiser_name"`
	Email  *string `json:"organiser_email"`
	Number *string `json:"organiser_number"`
}

type OrganiserChanges struct {
	Name   *string
	Email  *string
	Number *string
}

type OrganiserRef struct {
	Name string `json:"organiser_name"`
}
