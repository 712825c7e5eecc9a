package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Registration struct {
	EventID        *uint       `gorm:"column:event_id;primaryKey;autoIncrement:false"`
	PlayerID       *uint       `gorm:"column:player_id;primaryKey;autoIncrement:false"`
	RegisteredDeck *uint       `gorm:"column:registered_deck;index"`
	Date           time.Time   `gorm:"column:registration_date;type:date;not null;default:CURRENT_DATE"`
	Event          *Event      `gorm:"foreignKey:EventID;references:ID;constraint:OnDelete:CASCADE"`
	Player         *Player     `gorm:"foreignKey:PlayerID;references:ID;constraint:OnDelete:CASCADE"`
	Collection     *Collection `gorm:"foreignKey:RegisteredDeck;references:ID;constraint:OnDelete:SET NULL"`
}

func (Registration) TableName() string {
	return "registrations"
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

func (d *RegistrationDAO) Insert(ctx context.Context, registration Registration) (Registration, error) {
	db := d.db.WithContext(ctx)

	result := db.Omit(clause.Associations).Create(&registration)
	if result.Error != nil {
		return Registration{}, result.Error
	}

	return d.find(db, *registration.EventID, *registration.PlayerID)
}

func (d *RegistrationDAO) FindAll(ctx context.Context, conditions map[string]interface{}) ([]Registration, error) {
	var registrations []Registration

	query := d.preload(d.db.WithContext(ctx))
	if len(conditions) > 0 {
		query = query.Where(conditions)
	}

	result := query.Order("event_id").Order("player_id").Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}

func (d *RegistrationDAO) Delete(ctx context.Context, eventID, playerID uint) error {
	result := d.db.WithContext(ctx).Where("event_id = ? AND player_id = ?", eventID, playerID).Delete(&Registration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (d *RegistrationDAO) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Event").Preload("Player").Preload("Collection.Deck")
}

func (d *RegistrationDAO) find(db *gorm.DB, eventID, playerID uint) (Registration, error) {
	var registration Registration

	result := d.preload(db).First(&registration, "event_id = ? AND player_id = ?", eventID, playerID)
	if result.Error != nil {
		return Registration{}, notFound(result.Error)
	}

	return registration, nil
}
