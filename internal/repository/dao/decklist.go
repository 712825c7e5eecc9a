package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Decklist struct {
	DeckID   *uint `gorm:"column:deck_id;primaryKey;autoIncrement:false"`
	CardID   *uint `gorm:"column:card_id;primaryKey;autoIncrement:false"`
	Quantity int   `gorm:"column:card_quantity;not null;default:1;check:chk_decklists_card_quantity,card_quantity > 0"`
	Deck     *Deck `gorm:"foreignKey:DeckID;references:ID;constraint:OnDelete:CASCADE"`
	Card     *Card `gorm:"foreignKey:CardID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Decklist) TableName() string {
	return "decklists"
}

type DecklistDAO struct {
	db *gorm.DB
}

func NewDecklistDAO(db *gorm.DB) *DecklistDAO {
	return &DecklistDAO{
		db: db,
	}
}

func (d *DecklistDAO) Insert(ctx context.Context, decklist Decklist) (Decklist, error) {
	db := d.db.WithContext(ctx)

	result := db.Omit(clause.Associations).Create(&decklist)
	if result.Error != nil {
		return Decklist{}, result.Error
	}

	return d.find(db, *decklist.DeckID, *decklist.CardID)
}

// FindAll returns the decklist rows matching every column = value pair in conditions.
func (d *DecklistDAO) FindAll(ctx context.Context, conditions map[string]interface{}) ([]Decklist, error) {
	var decklists []Decklist

	query := d.db.WithContext(ctx).Preload("Deck").Preload("Card")
	if len(conditions) > 0 {
		query = query.Where(conditions)
	}

	result := query.Order("deck_id").Order("card_id").Find(&decklists)
	if result.Error != nil {
		return nil, result.Error
	}

	return decklists, nil
}

func (d *DecklistDAO) Delete(ctx context.Context, deckID, cardID uint) error {
	result := d.db.WithContext(ctx).Where("deck_id = ? AND card_id = ?", deckID, cardID).Delete(&Decklist{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (d *DecklistDAO) find(db *gorm.DB, deckID, cardID uint) (Decklist, error) {
	var decklist Decklist

	result := db.Preload("Deck").Preload("Card").First(&decklist, "deck_id = ? AND card_id = ?", deckID, cardID)
	if result.Error != nil {
		return Decklist{}, notFound(result.Error)
	}

	return decklist, nil
}
