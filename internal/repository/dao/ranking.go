package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Ranking struct {
	PlayerID  *uint   `gorm:"column:player_id;primaryKey;autoIncrement:false"`
	EventID   *uint   `gorm:"column:event_id;primaryKey;autoIncrement:false"`
	Placement *int    `gorm:"column:placement;type:integer"`
	Points    int     `gorm:"column:points;type:integer;not null;default:0"`
	Wins      int     `gorm:"column:wins;type:integer;not null;default:0"`
	Losses    int     `gorm:"column:losses;type:integer;not null;default:0"`
	Ties      int     `gorm:"column:ties;type:integer;not null;default:0"`
	Player    *Player `gorm:"foreignKey:PlayerID;references:ID;constraint:OnDelete:CASCADE"`
	Event     *Event  `gorm:"foreignKey:EventID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Ranking) TableName() string {
	return "rankings"
}

type RankingDAO struct {
	db *gorm.DB
}

func NewRankingDAO(db *gorm.DB) *RankingDAO {
	return &RankingDAO{
		db: db,
	}
}

func (d *RankingDAO) Insert(ctx context.Context, ranking Ranking) (Ranking, error) {
	db := d.db.WithContext(ctx)

	result := db.Omit(clause.Associations).Create(&ranking)
	if result.Error != nil {
		return Ranking{}, result.Error
	}

	return d.find(db, *ranking.PlayerID, *ranking.EventID)
}

func (d *RankingDAO) FindAll(ctx context.Context, conditions map[string]interface{}) ([]Ranking, error) {
	var rankings []Ranking

	query := d.db.WithContext(ctx).Preload("Player").Preload("Event")
	if len(conditions) > 0 {
		query = query.Where(conditions)
	}

	result := query.Order("event_id").Order("placement").Order("player_id").Find(&rankings)
	if result.Error != nil {
		return nil, result.Error
	}

	return rankings, nil
}

func (d *RankingDAO) Delete(ctx context.Context, playerID, eventID uint) error {
	result := d.db.WithContext(ctx).Where("player_id = ? AND event_id = ?", playerID, eventID).Delete(&Ranking{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (d *RankingDAO) find(db *gorm.DB, playerID, eventID uint) (Ranking, error) {
	var ranking Ranking

	result := db.Preload("Player").Preload("Event").First(&ranking, "player_id = ? AND event_id = ?", playerID, eventID)
	if result.Error != nil {
		return Ranking{}, notFound(result.Error)
	}

	return ranking, nil
}
