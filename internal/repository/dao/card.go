package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Card struct {
	ID     uint   `gorm:"column:card_id;primaryKey"`
	Number string `gorm:"column:card_number;not null;unique"`
	Name   string `gorm:"column:card_name;not null"`
	Type   string `gorm:"column:card_type;not null;check:chk_cards_card_type,card_type IN ('Digiegg','Digimon','Option','Tamer')"`
	Rarity string `gorm:"column:card_rarity;not null;check:chk_cards_card_rarity,card_rarity IN ('Common','Uncommon','Rare','SuperRare','SecretRare')"`
}

func (Card) TableName() string {
	return "cards"
}

type CardDAO struct {
	db *gorm.DB
}

func NewCardDAO(db *gorm.DB) *CardDAO {
	return &CardDAO{
		db: db,
	}
}

func (d *CardDAO) Insert(ctx context.Context, card Card) (Card, error) {
	result := d.db.WithContext(ctx).Create(&card)
	if result.Error != nil {
		return Card{}, result.Error
	}

	return card, nil
}

func (d *CardDAO) FindAll(ctx context.Context) ([]Card, error) {
	var cards []Card

	result := d.db.WithContext(ctx).Order("card_id").Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}

	return cards, nil
}

func (d *CardDAO) FindByID(ctx context.Context, id uint) (Card, error) {
	var card Card

	result := d.db.WithContext(ctx).First(&card, "card_id = ?", id)
	if result.Error != nil {
		return Card{}, notFound(result.Error)
	}

	return card, nil
}

// Update writes only the given columns and returns the row as stored afterwards.
func (d *CardDAO) Update(ctx context.Context, id uint, columns map[string]interface{}) (Card, error) {
	var card Card

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&card, "card_id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if len(columns) == 0 {
			return nil
		}
		if err := tx.Model(&Card{}).Where("card_id = ?", id).Updates(columns).Error; err != nil {
			return err
		}

		return tx.First(&card, "card_id = ?", id).Error
	})
	if err != nil {
		return Card{}, err
	}

	return card, nil
}

// Delete removes the card and, through ON DELETE CASCADE, its decklist entries.
func (d *CardDAO) Delete(ctx context.Context, id uint) (Card, error) {
	var card Card

	result := d.db.WithContext(ctx).Clauses(clause.Returning{}).Where("card_id = ?", id).Delete(&card)
	if result.Error != nil {
		return Card{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Card{}, ErrRecordNotFound
	}

	return card, nil
}
