package activity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/paperbase/paperbase/internal/domain/activity"
	"github.com/paperbase/paperbase/internal/repository/mocks"
)

func TestLogValidation(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityLog{}, nil)
	ctx := context.Background()

	err := svc.Log(ctx, nil)
	require.ErrorIs(t, err, activity.ErrInvalidInput)

	err = svc.Log(ctx, &activity.Entry{Action: activity.ActionPaperUploaded})
	require.ErrorIs(t, err, activity.ErrInvalidInput)
}

func TestLogStampsTimestamp(t *testing.T) {
	repo := &mocks.ActivityLog{}
	svc := activity.NewService(repo, nil)

	repo.On("Log", mock.Anything, mock.AnythingOfType("*activity.Entry")).Return(nil)

	entry := &activity.Entry{
		Entity:  "pdf",
		Action:  activity.ActionPaperUploaded,
		Summary: "uploaded paper",
	}
	require.NoError(t, svc.Log(context.Background(), entry))
	require.NotEmpty(t, entry.CreatedAt, "missing timestamps are stamped on write")
	repo.AssertExpectations(t)
}

func TestLogKeepsProvidedTimestamp(t *testing.T) {
	repo := &mocks.ActivityLog{}
	svc := activity.NewService(repo, nil)

	repo.On("Log", mock.Anything, mock.AnythingOfType("*activity.Entry")).Return(nil)

	entry := &activity.Entry{
		Entity:    "pdf",
		Action:    activity.ActionPaperUploaded,
		Summary:   "uploaded paper",
		CreatedAt: "2026-01-01 00:00:00",
	}
	require.NoError(t, svc.Log(context.Background(), entry))
	require.Equal(t, "2026-01-01 00:00:00", entry.CreatedAt)
}

func TestRecent(t *testing.T) {
	repo := &mocks.ActivityLog{}
	svc := activity.NewService(repo, nil)

	opts := activity.ListOptions{Entity: "pdf", Limit: 10}
	repo.On("List", mock.Anything, opts).Return([]activity.Entry{{ID: 2}, {ID: 1}}, nil)

	entries, err := svc.Recent(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	repo.AssertExpectations(t)
}
