package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Deck struct {
	ID   uint   `gorm:"column:deck_id;primaryKey"`
	Name string `gorm:"column:deck_name;not null"`
}

func (Deck) TableName() string {
	return "decks"
}

type DeckDAO struct {
	db *gorm.DB
}

func NewDeckDAO(db *gorm.DB) *DeckDAO {
	return &DeckDAO{
		db: db,
	}
}

func (d *DeckDAO) Insert(ctx context.Context, deck Deck) (Deck, error) {
	result := d.db.WithContext(ctx).Create(&deck)
	if result.Error != nil {
		return Deck{}, result.Error
	}

	return deck, nil
}

func (d *DeckDAO) FindAll(ctx context.Context) ([]Deck, error) {
	var decks []Deck

	result := d.db.WithContext(ctx).Order("deck_id").Find(&decks)
	if result.Error != nil {
		return nil, result.Error
	}

	return decks, nil
}

func (d *DeckDAO) FindByID(ctx context.Context, id uint) (Deck, error) {
	var deck Deck

	result := d.db.WithContext(ctx).First(&deck, "deck_id = ?", id)
	if result.Error != nil {
		return Deck{}, notFound(result.Error)
	}

	return deck, nil
}

func (d *DeckDAO) Update(ctx context.Context, id uint, columns map[string]interface{}) (Deck, error) {
	var deck Deck

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deck, "deck_id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if len(columns) == 0 {
			return nil
		}
		if err := tx.Model(&Deck{}).Where("deck_id = ?", id).Updates(columns).Error; err != nil {
			return err
		}

		return tx.First(&deck, "deck_id = ?", id).Error
	})
	if err != nil {
		return Deck{}, err
	}

	return deck, nil
}

// Delete removes the deck together with its decklist and collection rows.
func (d *DeckDAO) Delete(ctx context.Context, id uint) (Deck, error) {
	var deck Deck

	result := d.db.WithContext(ctx).Clauses(clause.Returning{}).Where("deck_id = ?", id).Delete(&deck)
	if result.Error != nil {
		return Deck{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Deck{}, ErrRecordNotFound
	}

	return deck, nil
}
