package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Organiser struct {
	ID     uint    `gorm:"column:organiser_id;primaryKey"`
	Name   string  `gorm:"column:organiser_name;not null"`
	Email  *string `gorm:"column:organiser_email"`
	Number *string `gorm:"column:organiser_number"`
}

func (Organiser) TableName() string {
	return "organisers"
}

type OrganiserDAO struct {
	db *gorm.DB
}

func NewOrganiserDAO(db *gorm.DB) *OrganiserDAO {
	return &OrganiserDAO{
		db: db,
	}
}

func (d *OrganiserDAO) Insert(ctx context.Context, organiser Organiser) (Organiser, error) {
	result := d.db.WithContext(ctx).Create(&organiser)
	if result.Error != nil {
		return Organiser{}, result.Error
	}

	return organiser, nil
}

func (d *OrganiserDAO) FindAll(ctx context.Context) ([]Organiser, error) {
	var organisers []Organiser

	result := d.db.WithContext(ctx).Order("organiser_id").Find(&organisers)
	if result.Error != nil {
		return nil, result.Error
	}

	return organisers, nil
}

func (d *OrganiserDAO) FindByID(ctx context.Context, id uint) (Organiser, error) {
	var organiser Organiser

	result := d.db.WithContext(ctx).First(&organiser, "organiser_id = ?", id)
	if result.Error != nil {
		return Organiser{}, notFound(result.Error)
	}

	return organiser, nil
}

func (d *OrganiserDAO) Update(ctx context.Context, id uint, columns map[string]interface{}) (Organiser, error) {
	var organiser Organiser

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&organiser, "organiser_id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if len(columns) == 0 {
			return nil
		}
		if err := tx.Model(&Organiser{}).Where("organiser_id = ?", id).Updates(columns).Error; err != nil {
			return err
		}

		return tx.First(&organiser, "organiser_id = ?", id).Error
	})
	if err != nil {
		return Organiser{}, err
	}

	return organiser, nil
}

// Delete removes the organiser. Their events stay, with organiser_id set to NULL.
func (d *OrganiserDAO) Delete(ctx context.Context, id uint) (Organiser, error) {
	var organiser Organiser

	result := d.db.WithContext(ctx).Clauses(clause.Returning{}).Where("organiser_id = ?", id).Delete(&organiser)
	if result.Error != nil {
		return Organiser{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Organiser{}, ErrRecordNotFound
	}

	return organiser, nil
}
