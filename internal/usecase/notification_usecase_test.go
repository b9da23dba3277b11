package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/notification"
	"jobboard/internal/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNotify_PersistsUnreadAndPushesToLiveConnection(t *testing.T) {
	repo := &fakeNotificationRepo{}
	recipient := uuid.New()
	conn := &fakeConn{}
	uc := NewNotificationUsecase(repo, fakePresence{recipient: conn}, nil, nil)

	err := uc.Notify(context.Background(), NotifyInput{
		RecipientID: recipient,
		Message:     "  New candidacy received for Go Developer ",
		Link:        "/jobs/1/candidacies",
		Type:        notification.TypeCandidacyReceived,
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	require.False(t, stored.Read)
	require.Equal(t, recipient, stored.RecipientID)
	require.Equal(t, "New candidacy received for Go Developer", stored.Message)

	require.Len(t, conn.events, 1)
	require.Equal(t, stored.Message, conn.events[0].Message)
	require.Equal(t, stored.Link, conn.events[0].Link)
	require.Equal(t, stored.Type, conn.events[0].Type)
	require.Equal(t, stored.CreatedAt, conn.events[0].Date)
}

func TestNotify_OfflineRecipientOnlyPersists(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := NewNotificationUsecase(repo, fakePresence{}, nil, metrics.New())

	err := uc.Notify(context.Background(), NotifyInput{
		RecipientID: uuid.New(),
		Message:     "hello",
		Type:        notification.TypeQuizSubmitted,
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
}

func TestNotify_PushFailureIsSwallowed(t *testing.T) {
	repo := &fakeNotificationRepo{}
	recipient := uuid.New()
	conn := &fakeConn{err: errors.New("connection stale")}
	uc := NewNotificationUsecase(repo, fakePresence{recipient: conn}, nil, nil)

	err := uc.Notify(context.Background(), NotifyInput{
		RecipientID: recipient,
		Message:     "status changed",
		Type:        notification.TypeCandidacyStatusChanged,
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
}

func TestNotify_PersistFailureSkipsPush(t *testing.T) {
	repo := &fakeNotificationRepo{createErr: errStoreDown}
	recipient := uuid.New()
	conn := &fakeConn{}
	uc := NewNotificationUsecase(repo, fakePresence{recipient: conn}, nil, nil)

	err := uc.Notify(context.Background(), NotifyInput{
		RecipientID: recipient,
		Message:     "hello",
		Type:        notification.TypeCandidacyReceived,
	})
	require.ErrorIs(t, err, ErrNotificationNotPersisted)
	require.Empty(t, conn.events)
}

func TestNotify_RejectsIncompleteInput(t *testing.T) {
	uc := NewNotificationUsecase(&fakeNotificationRepo{}, nil, nil, nil)

	cases := []NotifyInput{
		{Message: "x", Type: notification.TypeQuizSubmitted},
		{RecipientID: uuid.New(), Message: "   ", Type: notification.TypeQuizSubmitted},
		{RecipientID: uuid.New(), Message: "x"},
	}
	for _, in := range cases {
		require.ErrorIs(t, uc.Notify(context.Background(), in), ErrInvalidInput)
	}
}

func TestNotifications_ReadFlow(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := NewNotificationUsecase(repo, nil, nil, nil)
	ctx := context.Background()
	me := uuid.New()

	for i := 0; i < 2; i++ {
		require.NoError(t, uc.Notify(ctx, NotifyInput{RecipientID: me, Message: "m", Type: notification.TypeQuizSubmitted}))
	}
	require.NoError(t, uc.Notify(ctx, NotifyInput{RecipientID: uuid.New(), Message: "other", Type: notification.TypeQuizSubmitted}))

	list, err := uc.ListMine(ctx, me, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	require.Equal(t, 2, list.Unread)

	require.NoError(t, uc.MarkRead(ctx, me, list.Items[0].ID.String()))
	require.ErrorIs(t, uc.MarkRead(ctx, uuid.New(), list.Items[1].ID.String()), ErrNotificationNotFound)
	require.ErrorIs(t, uc.MarkRead(ctx, me, "not-a-uuid"), ErrInvalidID)

	n, err := uc.MarkAllRead(ctx, me)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	require.NoError(t, uc.Delete(ctx, me, list.Items[0].ID.String()))
	require.ErrorIs(t, uc.Delete(ctx, me, list.Items[0].ID.String()), ErrNotificationNotFound)
}
