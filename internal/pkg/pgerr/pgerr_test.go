package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         *pgconn.PgError
		wantKind    Kind
		wantMessage string
	}{
		{
			name:        "not null",
			err:         &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "deck_id"},
			wantKind:    KindNotNull,
			wantMessage: "Required field: deck_id cannot be null.",
		},
		{
			name:        "unique",
			err:         &pgconn.PgError{Code: pgerrcode.UniqueViolation, Detail: "Key (card_number)=(BT1-001) already exists."},
			wantKind:    KindUnique,
			wantMessage: "Key (card_number)=(BT1-001) already exists.",
		},
		{
			name:        "foreign key",
			err:         &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, Detail: `Key (deck_id)=(9) is not present in table "decks".`},
			wantKind:    KindForeignKey,
			wantMessage: `Key (deck_id)=(9) is not present in table "decks".`,
		},
		{
			name:        "check",
			err:         &pgconn.PgError{Code: pgerrcode.CheckViolation, Detail: "Failing row contains (1, 0, 1)."},
			wantKind:    KindCheck,
			wantMessage: "[23514] Check Violation: A value that doesn't satisfy a column's constraints has been entered; Failing row contains (1, 0, 1).",
		},
		{
			name:        "other integrity",
			err:         &pgconn.PgError{Code: pgerrcode.ExclusionViolation},
			wantKind:    KindIntegrity,
			wantMessage: "Unknown integrity error occured.",
		},
		{
			name:        "data exception",
			err:         &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange, Message: "integer out of range"},
			wantKind:    KindData,
			wantMessage: "integer out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("r.dao.Insert -> %w", tt.err)

			v, ok := Classify(wrapped)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, v.Kind)
			assert.Equal(t, tt.err.Code, v.Code)
			assert.Equal(t, tt.wantMessage, v.UserMessage())
		})
	}
}

func TestClassify_NotAConstraintError(t *testing.T) {
	_, ok := Classify(errors.New("connection refused"))
	assert.False(t, ok)

	_, ok = Classify(&pgconn.PgError{Code: pgerrcode.UndefinedTable})
	assert.False(t, ok)

	_, ok = Classify(nil)
	assert.False(t, ok)
}
