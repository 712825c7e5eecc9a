package repository

import (
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

var ErrNotFound = dao.ErrRecordNotFound

// nullableID maps the zero id to NULL so a missing reference reaches the
// database as a not-null violation instead of a foreign key lookup of id 0.
func nullableID(id uint) *uint {
	if id == 0 {
		return nil
	}

	return &id
}

func derefID(id *uint) uint {
	if id == nil {
		return 0
	}

	return *id
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// filterConditions keeps only the filters that were set, keyed by column.
func filterConditions(filters map[string]*uint) map[string]interface{} {
	conditions := make(map[string]interface{}, len(filters))
	for column, value := range filters {
		if value != nil {
			conditions[column] = *value
		}
	}

	return conditions
}
