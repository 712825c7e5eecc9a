// Package pgerr classifies postgres errors raised by constraint checks and
// malformed column values into the kinds the API reports to its clients.
package pgerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	KindNotNull Kind = iota + 1
	KindUnique
	KindForeignKey
	KindCheck
	// KindIntegrity is any other class 23 error.
	KindIntegrity
	// KindData is a class 22 error, e.g. a value out of range for its column type.
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindNotNull:
		return "not_null_violation"
	case KindUnique:
		return "unique_violation"
	case KindForeignKey:
		return "foreign_key_violation"
	case KindCheck:
		return "check_violation"
	case KindIntegrity:
		return "integrity_constraint_violation"
	case KindData:
		return "data_exception"
	}

	return "unknown"
}

type Violation struct {
	Kind       Kind
	Code       string
	Column     string
	Constraint string
	Detail     string
	Message    string
}

// Classify reports whether err wraps a postgres integrity or data error.
// Any other error, including connection failures, yields false.
func Classify(err error) (Violation, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Violation{}, false
	}

	v := Violation{
		Code:       pgErr.Code,
		Column:     pgErr.ColumnName,
		Constraint: pgErr.ConstraintName,
		Detail:     pgErr.Detail,
		Message:    pgErr.Message,
	}

	switch {
	case pgErr.Code == pgerrcode.NotNullViolation:
		v.Kind = KindNotNull
	case pgErr.Code == pgerrcode.UniqueViolation:
		v.Kind = KindUnique
	case pgErr.Code == pgerrcode.ForeignKeyViolation:
		v.Kind = KindForeignKey
	case pgErr.Code == pgerrcode.CheckViolation:
		v.Kind = KindCheck
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		v.Kind = KindIntegrity
	case pgerrcode.IsDataException(pgErr.Code):
		v.Kind = KindData
	default:
		return Violation{}, false
	}

	return v, true
}

// UserMessage is the text returned to API clients for the violation.
func (v Violation) UserMessage() string {
	switch v.Kind {
	case KindNotNull:
		return fmt.Sprintf("Required field: %s cannot be null.", v.Column)
	case KindUnique, KindForeignKey:
		return v.Detail
	case KindCheck:
		return fmt.Sprintf("[%s] Check Violation: A value that doesn't satisfy a column's constraints has been entered; %s", v.Code, v.Detail)
	case KindData:
		return v.Message
	}

	return "Unknown integrity error occured."
}
