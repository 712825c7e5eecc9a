package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type CreateRankingRequest struct {
	PlayerID  uint `json:"player_id" example:"1"`
	EventID   uint `json:"event_id" example:"1"`
	Placement *int `json:"placement" example:"1"`
	Points    int  `json:"points" example:"12"`
	Wins      int  `json:"wins" example:"4"`
	Losses    int  `json:"losses" example:"0"`
	Ties      int  `json:"ties" example:"0"`
}

func (req *CreateRankingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Placement, columnInt()),
		validation.Field(&req.Points, columnInt()),
		validation.Field(&req.Wins, columnInt()),
		validation.Field(&req.Losses, columnInt()),
		validation.Field(&req.Ties, columnInt()),
	)
}

func (req *CreateRankingRequest) ToDomain() domain.Ranking {
	return domain.Ranking{
		PlayerID:  req.PlayerID,
		EventID:   req.EventID,
		Placement: req.Placement,
		Points:    req.Points,
		Wins:      req.Wins,
		Losses:    req.Losses,
		Ties:      req.Ties,
	}
}

type RankingFilter struct {
	PlayerID *uint `form:"player_id"`
	EventID  *uint `form:"event_id"`
}

func (f RankingFilter) ToDomain() domain.RankingFilter {
	return domain.RankingFilter{
		PlayerID: f.PlayerID,
		EventID:  f.EventID,
	}
}
