package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		err  error
	}{
		{raw: `12`, want: 12},
		{raw: `0`, want: 0},
		{raw: `"42"`, want: 42},
		{raw: ` 7 `, want: 7},
		{raw: `3.0`, want: 3},
		{raw: ``, err: ErrMissingValue},
		{raw: `null`, err: ErrMissingValue},
		{raw: `""`, err: ErrMissingValue},
		{raw: `-1`, err: ErrNegative},
		{raw: `"-5"`, err: ErrNegative},
		{raw: `2.5`, err: ErrNotANumber},
		{raw: `"abc"`, err: ErrNotANumber},
		{raw: `true`, err: ErrNotANumber},
		{raw: `"NaN"`, err: ErrNotANumber},
		{raw: `99999999999`, err: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCount(json.RawMessage(tt.raw))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseDailyGoal(t *testing.T) {
	goal, err := ParseDailyGoal(json.RawMessage(`30`))
	require.NoError(t, err)
	require.Equal(t, 30, goal)

	_, err = ParseDailyGoal(json.RawMessage(`0`))
	require.ErrorIs(t, err, ErrInvalidGoal)

	_, err = ParseDailyGoal(json.RawMessage(`"ten"`))
	require.ErrorIs(t, err, ErrNotANumber)
}

func TestValidateLogDate(t *testing.T) {
	require.NoError(t, ValidateLogDate(""))
	require.NoError(t, ValidateLogDate("2024-02-29"))
	require.ErrorIs(t, ValidateLogDate("2023-02-29"), ErrInvalidDate)
	require.ErrorIs(t, ValidateLogDate("05/01/2024"), ErrInvalidDate)
}

func TestStruct(t *testing.T) {
	type req struct {
		Type string `validate:"required,oneof=replies followers"`
	}

	require.NoError(t, Struct(req{Type: "replies"}))
	require.Error(t, Struct(req{Type: "likes"}))
	require.Error(t, Struct(req{}))
}
