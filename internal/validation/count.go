package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// MaxCount keeps values inside a 32-bit INTEGER column on every driver.
const MaxCount = math.MaxInt32

var (
	ErrMissingValue = errors.New("value is required")
	ErrNotANumber   = errors.New("value must be a whole number")
	ErrNegative     = errors.New("value must be 0 or more")
	ErrOutOfRange   = errors.New("value is too large")
	ErrInvalidGoal  = errors.New("daily goal must be at least 1")
)

// ParseCount accepts a JSON number or a numeric JSON string and returns it as
// a non-negative whole number.
func ParseCount(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, ErrMissingValue
	}

	text := string(raw)
	if raw[0] == '"' {
		err := json.Unmarshal(raw, &text)
		if err != nil {
			return 0, ErrNotANumber
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, ErrMissingValue
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotANumber
	}
	if f != math.Trunc(f) {
		return 0, ErrNotANumber
	}
	if f < 0 {
		return 0, ErrNegative
	}
	if f > MaxCount {
		return 0, ErrOutOfRange
	}

	return int(f), nil
}

// ParseDailyGoal is ParseCount with the extra rule that a goal is at least 1.
func ParseDailyGoal(raw json.RawMessage) (int, error) {
	goal, err := ParseCount(raw)
	if err != nil {
		return 0, err
	}
	return goal, ValidateDailyGoal(goal)
}

func ValidateDailyGoal(goal int) error {
	if goal < 1 {
		return ErrInvalidGoal
	}
	if goal > MaxCount {
		return ErrOutOfRange
	}
	return nil
}

func ValidateCount(value int) error {
	if value < 0 {
		return ErrNegative
	}
	if value > MaxCount {
		return ErrOutOfRange
	}
	return nil
}
