package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIdentityJSONOmitsZeroTimes(t *testing.T) {
	data, err := json.Marshal(Identity{ID: "u1", Email: "a@example.com"})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"u1","email":"a@example.com"}`, string(data))

	created := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	data, err = json.Marshal(Identity{ID: "u1", CreatedAt: created})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"u1","email":"","created_at":"2024-05-20T12:00:00Z"}`, string(data))
}
