package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Event struct {
	ID          uint       `gorm:"column:event_id;primaryKey"`
	OrganiserID *uint      `gorm:"column:organiser_id;index"`
	VenueID     *uint      `gorm:"column:venue_id;index"`
	Name        *string    `gorm:"column:event_name;not null"`
	PlayerCap   *int       `gorm:"column:player_cap;type:integer"`
	Date        time.Time  `gorm:"column:event_date;type:date;not null;default:CURRENT_DATE"`
	Details     *string    `gorm:"column:event_details"`
	Status      string     `gorm:"column:event_status;not null;check:chk_events_event_status,event_status IN ('Cancelled','Completed','Onhold','Planned','Running')"`
	Organiser   *Organiser `gorm:"foreignKey:OrganiserID;references:ID;constraint:OnDelete:SET NULL"`
	Venue       *Venue     `gorm:"foreignKey:VenueID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Event) TableName() string {
	return "events"
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	db := d.db.WithContext(ctx)

	result := db.Omit(clause.Associations).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return d.find(db, event.ID)
}

func (d *EventDAO) FindAll(ctx context.Context, conditions map[string]interface{}) ([]Event, error) {
	var events []Event

	query := d.db.WithContext(ctx).Preload("Organiser").Preload("Venue")
	if len(conditions) > 0 {
		query = query.Where(conditions)
	}

	result := query.Order("event_id").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// Delete removes the event with its registrations and rankings.
func (d *EventDAO) Delete(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).Clauses(clause.Returning{}).Where("event_id = ?", id).Delete(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrRecordNotFound
	}

	return event, nil
}

func (d *EventDAO) find(db *gorm.DB, id uint) (Event, error) {
	var event Event

	result := db.Preload("Organiser").Preload("Venue").First(&event, "event_id = ?", id)
	if result.Error != nil {
		return Event{}, notFound(result.Error)
	}

	return event, nil
}
