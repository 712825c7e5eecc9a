package request

import (
	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

// CreateCollectionRequest has no field rules. Missing or unknown ids are
// reported by the database constraints.
type CreateCollectionRequest struct {
	PlayerID uint `json:"player_id" example:"1"`
	DeckID   uint `json:"deck_id" example:"1"`
}

func (req *CreateCollectionRequest) ToDomain() domain.Collection {
	return domain.Collection{
		PlayerID: req.PlayerID,
		DeckID:   req.DeckID,
	}
}

type CollectionFilter struct {
	CollectionID *uint `form:"collection_id"`
	PlayerID     *uint `form:"player_id"`
	DeckID       *uint `form:"deck_id"`
}

func (f CollectionFilter) ToDomain() domain.CollectionFilter {
	return domain.CollectionFilter{
		CollectionID: f.CollectionID,
		PlayerID:     f.PlayerID,
		DeckID:       f.DeckID,
	}
}
