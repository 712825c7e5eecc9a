package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Venue struct {
	ID      uint    `gorm:"column:venue_id;primaryKey"`
	Name    string  `gorm:"column:venue_name;not null"`
	Address *string `gorm:"column:venue_address"`
	Number  *string `gorm:"column:venue_number"`
}

func (Venue) TableName() string {
	return "venues"
}

type VenueDAO struct {
	db *gorm.DB
}

func NewVenueDAO(db *gorm.DB) *VenueDAO {
	return &VenueDAO{
		db: db,
	}
}

func (d *VenueDAO) Insert(ctx context.Context, venue Venue) (Venue, error) {
	result := d.db.WithContext(ctx).Create(&venue)
	if result.Error != nil {
		return Venue{}, result.Error
	}

	return venue, nil
}

func (d *VenueDAO) FindAll(ctx context.Context) ([]Venue, error) {
	var venues []Venue

	result := d.db.WithContext(ctx).Order("venue_id").Find(&venues)
	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (d *VenueDAO) FindByID(ctx context.Context, id uint) (Venue, error) {
	var venue Venue

	result := d.db.WithContext(ctx).First(&venue, "venue_id = ?", id)
	if result.Error != nil {
		return Venue{}, notFound(result.Error)
	}

	return venue, nil
}

func (d *VenueDAO) Update(ctx context.Context, id uint, columns map[string]interface{}) (Venue, error) {
	var venue Venue

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, "venue_id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if len(columns) == 0 {
			return nil
		}
		if err := tx.Model(&Venue{}).Where("venue_id = ?", id).Updates(columns).Error; err != nil {
			return err
		}

		return tx.First(&venue, "venue_id = ?", id).Error
	})
	if err != nil {
		return Venue{}, err
	}

	return venue, nil
}

// Delete removes the venue. Events held there are kept for the record with
// venue_id set to NULL.
func (d *VenueDAO) Delete(ctx context.Context, id uint) (Venue, error) {
	var venue Venue

	result := d.db.WithContext(ctx).Clauses(clause.Returning{}).Where("venue_id = ?", id).Delete(&venue)
	if result.Error != nil {
		return Venue{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Venue{}, ErrRecordNotFound
	}

	return venue, nil
}
