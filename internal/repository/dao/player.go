package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Player struct {
	ID   uint   `gorm:"column:player_id;primaryKey"`
	Name string `gorm:"column:player_name;not null"`
}

func (Player) TableName() string {
	return "players"
}

type PlayerDAO struct {
	db *gorm.DB
}

func NewPlayerDAO(db *gorm.DB) *PlayerDAO {
	return &PlayerDAO{
		db: db,
	}
}

func (d *PlayerDAO) Insert(ctx context.Context, player Player) (Player, error) {
	result := d.db.WithContext(ctx).Create(&player)
	if result.Error != nil {
		return Player{}, result.Error
	}

	return player, nil
}

func (d *PlayerDAO) FindAll(ctx context.Context) ([]Player, error) {
	var players []Player

	result := d.db.WithContext(ctx).Order("player_id").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (d *PlayerDAO) FindByID(ctx context.Context, id uint) (Player, error) {
	var player Player

	result := d.db.WithContext(ctx).First(&player, "player_id = ?", id)
	if result.Error != nil {
		return Player{}, notFound(result.Error)
	}

	return player, nil
}

func (d *PlayerDAO) Update(ctx context.Context, id uint, columns map[string]interface{}) (Player, error) {
	var player Player

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&player, "player_id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if len(columns) == 0 {
			return nil
		}
		if err := tx.Model(&Player{}).Where("player_id = ?", id).Updates(columns).Error; err != nil {
			return err
		}

		return tx.First(&player, "player_id = ?", id).Error
	})
	if err != nil {
		return Player{}, err
	}

	return player, nil
}

// Delete removes the player. Collections, registrations and rankings of the
// player go with it.
func (d *PlayerDAO) Delete(ctx context.Context, id uint) (Player, error) {
	var player Player

	result := d.db.WithContext(ctx).Clauses(clause.Returning{}).Where("player_id = ?", id).Delete(&player)
	if result.Error != nil {
		return Player{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Player{}, ErrRecordNotFound
	}

	return player, nil
}
