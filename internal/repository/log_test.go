package repository

import (
	"context"
	"testing"

	"github.com/replyguy/replyguy/internal/model"
	"github.com/replyguy/replyguy/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestLogCreateIfAbsentIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepository(testutil.GetEmptyTestDB(t))

	created, err := repo.CreateIfAbsent(ctx, &model.Log{UserID: "u1", LogDate: "2024-05-01", DailyGoal: 50})
	require.NoError(t, err)
	require.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, &model.Log{UserID: "u1", LogDate: "2024-05-01", RepliesMade: 7, DailyGoal: 50})
	require.NoError(t, err)
	require.False(t, created)

	logs, err := repo.Since(ctx, "u1", "2024-01-01")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, 0, logs[0].RepliesMade)
}

func TestLogCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepository(testutil.GetEmptyTestDB(t))

	require.NoError(t, repo.Create(ctx, &model.Log{UserID: "u1", LogDate: "2024-05-01"}))

	err := repo.Create(ctx, &model.Log{UserID: "u1", LogDate: "2024-05-01"})
	require.ErrorIs(t, err, ErrDuplicateLog)

	// Same date, different user is fine.
	require.NoError(t, repo.Create(ctx, &model.Log{UserID: "u2", LogDate: "2024-05-01"}))
}

func TestLogUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepository(testutil.GetEmptyTestDB(t))

	err := repo.UpdateReplies(ctx, "u1", "2024-05-01", 3, false)
	require.ErrorIs(t, err, ErrLogNotFound)

	_, err = repo.CreateIfAbsent(ctx, &model.Log{UserID: "u1", LogDate: "2024-05-01", FollowerCount: 10, DailyGoal: 5})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateReplies(ctx, "u1", "2024-05-01", 6, true))
	require.NoError(t, repo.UpdateFollowers(ctx, "u1", "2024-05-01", 12))

	log, err := repo.ByDate(ctx, "u1", "2024-05-01")
	require.NoError(t, err)
	require.Equal(t, 6, log.RepliesMade)
	require.True(t, log.GoalMet)
	require.Equal(t, 12, log.FollowerCount)
	require.Equal(t, 5, log.DailyGoal)

	_, err = repo.ByDate(ctx, "u1", "2024-05-02")
	require.ErrorIs(t, err, ErrLogNotFound)
}

func TestLogSinceOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepository(testutil.GetEmptyTestDB(t))

	for _, date := range []string{"2024-05-03", "2024-04-20", "2024-05-01", "2024-03-01"} {
		require.NoError(t, repo.Create(ctx, &model.Log{UserID: "u1", LogDate: date}))
	}
	require.NoError(t, repo.Create(ctx, &model.Log{UserID: "other", LogDate: "2024-05-02"}))

	logs, err := repo.Since(ctx, "u1", "2024-04-20")
	require.NoError(t, err)
	require.Len(t, logs, 3)
	require.Equal(t, "2024-04-20", logs[0].LogDate)
	require.Equal(t, "2024-05-01", logs[1].LogDate)
	require.Equal(t, "2024-05-03", logs[2].LogDate)

	empty, err := repo.Since(ctx, "nobody", "2024-01-01")
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	latest, err := repo.Latest(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	require.Equal(t, "2024-05-03", latest[0].LogDate)
}
