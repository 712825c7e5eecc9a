package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardType_IsValid(t *testing.T) {
	for _, v := range CardTypes() {
		assert.True(t, v.(CardType).IsValid(), v)
	}
	assert.False(t, CardType("Digitama").IsValid())
	assert.False(t, CardType("digimon").IsValid())
	assert.False(t, CardType("").IsValid())
}

func TestCardRarity_IsValid(t *testing.T) {
	for _, v := range CardRarities() {
		assert.True(t, v.(CardRarity).IsValid(), v)
	}
	assert.False(t, CardRarity("Super Rare").IsValid())
	assert.False(t, CardRarity("Promo").IsValid())
}

func TestEventStatus_IsValid(t *testing.T) {
	assert.Len(t, EventStatuses(), 5)
	for _, v := range EventStatuses() {
		assert.True(t, v.(EventStatus).IsValid(), v)
	}
	assert.False(t, EventStatus("Postponed").IsValid())
}

func TestEnums_MarshalRejectsUnknownValues(t *testing.T) {
	_, err := json.Marshal(Card{Type: "Digitama", Rarity: CardRarityRare})
	assert.Error(t, err)

	out, err := json.Marshal(Event{Status: EventStatusRunning})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"event_status":"Running"`)
}

func TestCard_JSONFieldOrder(t *testing.T) {
	out, err := json.Marshal(Card{ID: 1, Number: "BT1-010", Name: "Agumon", Type: CardTypeDigimon, Rarity: CardRarityCommon})
	require.NoError(t, err)
	assert.Equal(t, `{"card_id":1,"card_number":"BT1-010","card_name":"Agumon","card_type":"Digimon","card_rarity":"Common"}`, string(out))
}
