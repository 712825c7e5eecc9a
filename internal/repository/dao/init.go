package dao

import (
	"fmt"

	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Card{},
		&Deck{},
		&Player{},
		&Organiser{},
		&Venue{},
		&Decklist{},
		&Collection{},
		&Event{},
		&Registration{},
		&Ranking{},
	)
}

// ResetTables drops every table of the schema and creates it again.
func ResetTables(db *gorm.DB) error {
	// Children first so no foreign key is left dangling.
	tables := []interface{}{
		&Ranking{},
		&Registration{},
		&Event{},
		&Collection{},
		&Decklist{},
		&Venue{},
		&Organiser{},
		&Player{},
		&Deck{},
		&Card{},
	}
	if err := db.Migrator().DropTable(tables...); err != nil {
		return fmt.Errorf("db.Migrator().DropTable -> %w", err)
	}

	return InitTables(db)
}
