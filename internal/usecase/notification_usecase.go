package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/domain/notification"
	"jobboard/internal/metrics"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotifyInput struct {
	RecipientID uuid.UUID
	Message     string
	Link        string
	Type        notification.Type
}

// Notifier is the narrow dependency other workflows take on the dispatcher.
type Notifier interface {
	Notify(ctx context.Context, in NotifyInput) error
}

type NotificationUsecase interface {
	Notifier
	ListMine(ctx context.Context, userID uuid.UUID, limit, offset int) (NotificationList, error)
	MarkRead(ctx context.Context, userID uuid.UUID, id string) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
}

type NotificationList struct {
	Items  []notification.Notification
	Unread int
}

type Notifications struct {
	repo     repository.NotificationRepository
	presence notification.Presence
	logger   *zap.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewNotificationUsecase(repo repository.NotificationRepository, presence notification.Presence, logger *zap.Logger, m *metrics.Metrics) *Notifications {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifications{repo: repo, presence: presence, logger: logger, metrics: m, now: time.Now}
}

// Notify persists the notification and then pushes it to the recipient's live
// connection if there is one. Only a persistence failure is reported; push
// failures are dropped since the stored record is what clients reload.
func (u *Notifications) Notify(ctx context.Context, in NotifyInput) error {
	msg := strings.TrimSpace(in.Message)
	if in.RecipientID == uuid.Nil || msg == "" || in.Type == "" {
		return ErrInvalidInput
	}

	n := notification.Notification{
		ID:          uuid.New(),
		RecipientID: in.RecipientID,
		Message:     msg,
		Link:        strings.TrimSpace(in.Link),
		Type:        in.Type,
		Read:        false,
		CreatedAt:   u.now().UTC(),
	}

	if err := u.repo.Create(ctx, n); err != nil {
		u.metrics.NotificationPersistFailed()
		u.logger.Error("notification persist failed",
			zap.String("recipient_id", n.RecipientID.String()),
			zap.String("type", string(n.Type)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrNotificationNotPersisted, err)
	}
	u.metrics.NotificationCreated()

	if u.presence == nil {
		u.metrics.NotificationPush(metrics.PushOffline)
		return nil
	}
	conn, ok := u.presence.Lookup(n.RecipientID)
	if !ok || conn == nil {
		u.metrics.NotificationPush(metrics.PushOffline)
		return nil
	}

	evt := notification.Event{Message: n.Message, Link: n.Link, Type: n.Type, Date: n.CreatedAt}
	if err := conn.Push(evt); err != nil {
		u.metrics.NotificationPush(metrics.PushFailed)
		u.logger.Debug("notification push dropped",
			zap.String("recipient_id", n.RecipientID.String()),
			zap.Error(err),
		)
		return nil
	}
	u.metrics.NotificationPush(metrics.PushDelivered)
	return nil
}

func (u *Notifications) ListMine(ctx context.Context, userID uuid.UUID, limit, offset int) (NotificationList, error) {
	if userID == uuid.Nil {
		return NotificationList{}, ErrUnauthorized
	}
	items, err := u.repo.ListByRecipient(ctx, userID, limit, offset)
	if err != nil {
		return NotificationList{}, ErrInternal
	}
	unread, err := u.repo.CountUnread(ctx, userID)
	if err != nil {
		return NotificationList{}, ErrInternal
	}
	return NotificationList{Items: items, Unread: unread}, nil
}

func (u *Notifications) MarkRead(ctx context.Context, userID uuid.UUID, id string) error {
	nid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := u.repo.MarkRead(ctx, userID, nid); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Notifications) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, ErrUnauthorized
	}
	n, err := u.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}

func (u *Notifications) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	nid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, userID, nid); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}
