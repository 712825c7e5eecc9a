package request

import (
	"errors"
	"fmt"
	"math"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

const msgDate = "Not a valid date."

var blankStartExp = regexp2.MustCompile(`^(?!\s)`, regexp2.None)

// notBlankStart rejects strings whose first character is whitespace.
// Empty values are left to Required.
func notBlankStart(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		value, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}

		matched, err := blankStartExp.MatchString(s)
		if err != nil {
			return err
		}
		if !matched {
			return errors.New(message)
		}

		return nil
	})
}

// atLeast rejects ints below min. Unlike validation.Min it also checks a zero value.
func atLeast(min int, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		value, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		n, ok := value.(int)
		if !ok {
			return nil
		}
		if n < min {
			return errors.New(message)
		}

		return nil
	})
}

// columnInt keeps ints inside the range of a postgres integer column.
func columnInt() validation.Rule {
	return validation.By(func(value interface{}) error {
		value, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		n, ok := value.(int)
		if !ok {
			return nil
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return fmt.Errorf("must be between %d and %d", math.MinInt32, math.MaxInt32)
		}

		return nil
	})
}

func calendarDate() validation.Rule {
	return validation.Date(domain.DateLayout).Error(msgDate)
}

// toDate converts a value already checked by calendarDate. Absent or empty
// values give the zero Date, which the database replaces with the current day.
func toDate(s *string) domain.Date {
	if s == nil || *s == "" {
		return domain.Date{}
	}

	d, err := domain.ParseDate(*s)
	if err != nil {
		return domain.Date{}
	}

	return d
}
