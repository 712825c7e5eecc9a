package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Collection struct {
	ID       uint    `gorm:"column:collection_id;primaryKey"`
	PlayerID *uint   `gorm:"column:player_id;not null;uniqueIndex:unique_decks_in_player_collection"`
	DeckID   *uint   `gorm:"column:deck_id;not null;uniqueIndex:unique_decks_in_player_collection"`
	Player   *Player `gorm:"foreignKey:PlayerID;references:ID;constraint:OnDelete:CASCADE"`
	Deck     *Deck   `gorm:"foreignKey:DeckID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Collection) TableName() string {
	return "collections"
}

type CollectionDAO struct {
	db *gorm.DB
}

func NewCollectionDAO(db *gorm.DB) *CollectionDAO {
	return &CollectionDAO{
		db: db,
	}
}

func (d *CollectionDAO) Insert(ctx context.Context, collection Collection) (Collection, error) {
	db := d.db.WithContext(ctx)

	result := db.Omit(clause.Associations).Create(&collection)
	if result.Error != nil {
		return Collection{}, result.Error
	}

	return d.find(db, collection.ID)
}

func (d *CollectionDAO) FindAll(ctx context.Context, conditions map[string]interface{}) ([]Collection, error) {
	var collections []Collection

	query := d.db.WithContext(ctx).Preload("Player").Preload("Deck")
	if len(conditions) > 0 {
		query = query.Where(conditions)
	}

	result := query.Order("collection_id").Find(&collections)
	if result.Error != nil {
		return nil, result.Error
	}

	return collections, nil
}

// Delete removes the collection entry and returns it. Registrations that
// named it as their deck keep existing with registered_deck set to NULL.
func (d *CollectionDAO) Delete(ctx context.Context, id uint) (Collection, error) {
	var collection Collection

	result := d.db.WithContext(ctx).Clauses(clause.Returning{}).Where("collection_id = ?", id).Delete(&collection)
	if result.Error != nil {
		return Collection{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Collection{}, ErrRecordNotFound
	}

	return collection, nil
}

func (d *CollectionDAO) find(db *gorm.DB, id uint) (Collection, error) {
	var collection Collection

	result := db.Preload("Player").Preload("Deck").First(&collection, "collection_id = ?", id)
	if result.Error != nil {
		return Collection{}, notFound(result.Error)
	}

	return collection, nil
}
