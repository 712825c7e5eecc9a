package request

import (
	"errors"
	"math"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	var errs validation.Errors
	require.True(t, errors.As(err, &errs), "expected validation.Errors, got %v", err)

	out := make(map[string]string, len(errs))
	for field, e := range errs {
		out[field] = e.Error()
	}

	return out
}

func TestCreateCardRequest_Validate(t *testing.T) {
	valid := CreateCardRequest{Number: "BT1-010", Name: "Agumon", Type: domain.CardTypeDigimon, Rarity: domain.CardRarityCommon}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(r *CreateCardRequest)
		want   map[string]string
	}{
		{
			name:   "blank number",
			modify: func(r *CreateCardRequest) { r.Number = "" },
			want:   map[string]string{"card_number": msgCardNumberBlank},
		},
		{
			name:   "number starts with a blank",
			modify: func(r *CreateCardRequest) { r.Number = " BT1-010" },
			want:   map[string]string{"card_number": msgCardNumberBlankStart},
		},
		{
			name:   "name starts with a tab",
			modify: func(r *CreateCardRequest) { r.Name = "\tAgumon" },
			want:   map[string]string{"card_name": msgCardNameBlankStart},
		},
		{
			name:   "unknown type",
			modify: func(r *CreateCardRequest) { r.Type = "Digitama" },
			want:   map[string]string{"card_type": msgCardType},
		},
		{
			name:   "missing rarity",
			modify: func(r *CreateCardRequest) { r.Rarity = "" },
			want:   map[string]string{"card_rarity": msgCardRarity},
		},
		{
			name: "every field wrong",
			modify: func(r *CreateCardRequest) {
				*r = CreateCardRequest{Name: " x", Type: "x", Rarity: "x"}
			},
			want: map[string]string{
				"card_number": msgCardNumberBlank,
				"card_name":   msgCardNameBlankStart,
				"card_type":   msgCardType,
				"card_rarity": msgCardRarity,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.modify(&req)

			assert.Equal(t, tt.want, fieldErrors(t, req.Validate()))
		})
	}
}

func TestUpdateCardRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateCardRequest{}).Validate())
	assert.NoError(t, (&UpdateCardRequest{Rarity: ptr(domain.CardRaritySecretRare)}).Validate())

	err := (&UpdateCardRequest{Name: ptr(""), Type: ptr(domain.CardType("Egg"))}).Validate()
	assert.Equal(t, map[string]string{
		"card_name": msgCardNameBlank,
		"card_type": msgCardType,
	}, fieldErrors(t, err))
}

func TestUpdateCardRequest_ToDomain(t *testing.T) {
	changes := (&UpdateCardRequest{Name: ptr("Gabumon")}).ToDomain()

	assert.Equal(t, "Gabumon", *changes.Name)
	assert.Nil(t, changes.Number)
	assert.Nil(t, changes.Type)
	assert.Nil(t, changes.Rarity)
}

func TestNameRequests_Validate(t *testing.T) {
	tests := []struct {
		name  string
		req   interface{ Validate() error }
		field string
		want  string
	}{
		{"deck blank", &CreateDeckRequest{}, "deck_name", msgDeckNameBlank},
		{"deck blank start", &CreateDeckRequest{Name: " Red"}, "deck_name", msgDeckNameBlankStart},
		{"deck update blank", &UpdateDeckRequest{Name: ptr("")}, "deck_name", msgDeckNameBlank},
		{"player blank", &CreatePlayerRequest{}, "player_name", msgPlayerNameBlank},
		{"player blank start", &UpdatePlayerRequest{Name: ptr(" Tai")}, "player_name", msgPlayerNameBlankStart},
		{"organiser blank", &CreateOrganiserRequest{}, "organiser_name", msgOrganiserNameBlank},
		{"organiser blank start", &UpdateOrganiserRequest{Name: ptr("  Bandai")}, "organiser_name", msgOrganiserNameBlankStart},
		{"venue blank", &CreateVenueRequest{}, "venue_name", msgVenueNameBlank},
		{"venue blank start", &UpdateVenueRequest{Name: ptr("\nGG")}, "venue_name", msgVenueNameBlankStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, map[string]string{tt.field: tt.want}, fieldErrors(t, tt.req.Validate()))
		})
	}
}

func TestCreateOrganiserRequest_Email(t *testing.T) {
	assert.NoError(t, (&CreateOrganiserRequest{Name: "Bandai"}).Validate())
	assert.NoError(t, (&CreateOrganiserRequest{Name: "Bandai", Email: ptr("events@bandai.example")}).Validate())

	errs := fieldErrors(t, (&CreateOrganiserRequest{Name: "Bandai", Email: ptr("not-an-email")}).Validate())
	assert.Contains(t, errs, "organiser_email")
}

func TestCreateDecklistRequest_Quantity(t *testing.T) {
	assert.NoError(t, (&CreateDecklistRequest{DeckID: 1, CardID: 1}).Validate())
	assert.NoError(t, (&CreateDecklistRequest{DeckID: 1, CardID: 1, Quantity: ptr(1)}).Validate())

	for _, q := range []int{0, -3} {
		errs := fieldErrors(t, (&CreateDecklistRequest{DeckID: 1, CardID: 1, Quantity: ptr(q)}).Validate())
		assert.Equal(t, map[string]string{"card_quantity": msgCardQuantity}, errs, "quantity %d", q)
	}

	errs := fieldErrors(t, (&CreateDecklistRequest{Quantity: ptr(math.MaxInt32 + 1)}).Validate())
	assert.Contains(t, errs, "card_quantity")
}

func TestCreateDecklistRequest_ToDomain(t *testing.T) {
	assert.Equal(t, 0, (&CreateDecklistRequest{DeckID: 1, CardID: 2}).ToDomain().Quantity)
	assert.Equal(t, 3, (&CreateDecklistRequest{DeckID: 1, CardID: 2, Quantity: ptr(3)}).ToDomain().Quantity)
}

func TestCreateEventRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateEventRequest{Name: "Store Championship"}).Validate())
	assert.NoError(t, (&CreateEventRequest{Status: domain.EventStatusOnhold, PlayerCap: ptr(16)}).Validate())

	errs := fieldErrors(t, (&CreateEventRequest{Status: "Postponed"}).Validate())
	assert.Equal(t, map[string]string{"event_status": msgEventStatus}, errs)
}

func TestCreateEventRequest_Name(t *testing.T) {
	assert.NoError(t, (&CreateEventRequest{}).Validate(), "an absent name is left to the not-null constraint")

	for _, name := range []string{" Store Champs", "   ", "\tRegionals"} {
		errs := fieldErrors(t, (&CreateEventRequest{Name: name}).Validate())
		assert.Equal(t, map[string]string{"event_name": msgEventNameBlankStart}, errs, "name %q", name)
	}
}

func TestDates(t *testing.T) {
	assert.NoError(t, (&CreateEventRequest{Date: ptr("2024-06-01")}).Validate())
	assert.NoError(t, (&CreateRegistrationRequest{Date: ptr("")}).Validate())
	assert.NoError(t, (&CreateRegistrationRequest{}).Validate())

	for _, date := range []string{"2024-02-30", "01/06/2024", "tomorrow"} {
		errs := fieldErrors(t, (&CreateEventRequest{Date: ptr(date)}).Validate())
		assert.Equal(t, map[string]string{"event_date": msgDate}, errs, date)

		errs = fieldErrors(t, (&CreateRegistrationRequest{Date: ptr(date)}).Validate())
		assert.Equal(t, map[string]string{"registration_date": msgDate}, errs, date)
	}
}

func TestCreateRegistrationRequest_ToDomain(t *testing.T) {
	reg := (&CreateRegistrationRequest{EventID: 1, PlayerID: 2, Date: ptr("2024-05-20")}).ToDomain()
	assert.Equal(t, "2024-05-20", reg.Date.String())

	reg = (&CreateRegistrationRequest{EventID: 1, PlayerID: 2}).ToDomain()
	assert.True(t, reg.Date.IsZero())
}

func TestCreateRankingRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateRankingRequest{PlayerID: 1, EventID: 1, Wins: 3, Losses: -1}).Validate())

	errs := fieldErrors(t, (&CreateRankingRequest{Points: math.MinInt32 - 1}).Validate())
	assert.Contains(t, errs, "points")
}
