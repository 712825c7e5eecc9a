package dao

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseModel(t *testing.T, model interface{}) *schema.Schema {
	t.Helper()

	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	return s
}

func TestForeignKeyDeleteRules(t *testing.T) {
	tests := []struct {
		model    interface{}
		relation string
		onDelete string
	}{
		{&Decklist{}, "Card", "CASCADE"},
		{&Decklist{}, "Deck", "CASCADE"},
		{&Collection{}, "Deck", "CASCADE"},
		{&Collection{}, "Player", "CASCADE"},
		{&Registration{}, "Player", "CASCADE"},
		{&Registration{}, "Event", "CASCADE"},
		{&Registration{}, "Collection", "SET NULL"},
		{&Ranking{}, "Player", "CASCADE"},
		{&Ranking{}, "Event", "CASCADE"},
		{&Event{}, "Organiser", "SET NULL"},
		{&Event{}, "Venue", "SET NULL"},
	}

	for _, tt := range tests {
		s := parseModel(t, tt.model)
		t.Run(s.Table+"."+tt.relation, func(t *testing.T) {
			rel, ok := s.Relationships.Relations[tt.relation]
			require.True(t, ok)

			constraint := rel.ParseConstraint()
			require.NotNil(t, constraint)
			assert.Equal(t, tt.onDelete, constraint.OnDelete)
		})
	}
}

func TestCheckConstraints(t *testing.T) {
	checks := parseModel(t, &Decklist{}).ParseCheckConstraints()
	require.Contains(t, checks, "chk_decklists_card_quantity")
	assert.Equal(t, "card_quantity > 0", checks["chk_decklists_card_quantity"].Constraint)

	checks = parseModel(t, &Card{}).ParseCheckConstraints()
	assert.Contains(t, checks, "chk_cards_card_type")
	assert.Contains(t, checks, "chk_cards_card_rarity")

	checks = parseModel(t, &Event{}).ParseCheckConstraints()
	assert.Contains(t, checks, "chk_events_event_status")
}

func TestUniqueColumns(t *testing.T) {
	number := parseModel(t, &Card{}).LookUpField("card_number")
	require.NotNil(t, number)
	assert.True(t, number.Unique)

	collection := parseModel(t, &Collection{})
	for _, column := range []string{"player_id", "deck_id"} {
		f := collection.LookUpField(column)
		require.NotNil(t, f, column)
		assert.Equal(t, "unique_decks_in_player_collection", f.TagSettings["UNIQUEINDEX"], column)
		assert.True(t, f.NotNull, column)
	}
}

func TestDefaults(t *testing.T) {
	quantity := parseModel(t, &Decklist{}).LookUpField("card_quantity")
	require.NotNil(t, quantity)
	assert.Equal(t, "1", quantity.DefaultValue)

	ranking := parseModel(t, &Ranking{})
	for _, column := range []string{"points", "wins", "losses", "ties"} {
		f := ranking.LookUpField(column)
		require.NotNil(t, f, column)
		assert.Equal(t, "0", f.DefaultValue, column)
	}

	assert.Equal(t, "CURRENT_DATE", parseModel(t, &Event{}).LookUpField("event_date").DefaultValue)
	assert.Equal(t, "CURRENT_DATE", parseModel(t, &Registration{}).LookUpField("registration_date").DefaultValue)
}
