package validation

import (
	"errors"
	"time"

	"github.com/replyguy/replyguy/internal/model"
)

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// ValidateLogDate checks a calendar date string; empty is allowed and means
// "use the server's date".
func ValidateLogDate(date string) error {
	if date == "" {
		return nil
	}
	_, err := time.Parse(model.LogDateLayout, date)
	if err != nil {
		return ErrInvalidDate
	}
	return nil
}
