package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosa-java-team2/Hanger/internal/adapter/memory"
	"github.com/kosa-java-team2/Hanger/internal/domain/entity"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/repository"
)

func seedNotification(store *memory.Store, recipient string) *entity.Notification {
	id := store.NextNotificationID()
	n := entity.NewNotification(id, recipient, entity.NotificationTradeStatus, "msg", time.Now().UTC())
	store.Notifications()[id] = n
	return n
}

func TestNotificationsFor(t *testing.T) {
	store := memory.New()
	svc := NewNotificationService(store, logger.NewNop())

	first := seedNotification(store, "alice")
	seedNotification(store, "bob")
	second := seedNotification(store, "alice")

	ns := svc.NotificationsFor("alice")
	require.Len(t, ns, 2)
	assert.Equal(t, first.ID, ns[0].ID)
	assert.Equal(t, second.ID, ns[1].ID)

	assert.Equal(t, 2, svc.UnreadCount("alice"))
	assert.Empty(t, svc.NotificationsFor("nobody"))
}

func TestMarkRead(t *testing.T) {
	store := memory.New()
	svc := NewNotificationService(store, logger.NewNop())
	n := seedNotification(store, "alice")

	err := svc.MarkRead(n.ID, "bob")
	assert.ErrorIs(t, err, repository.ErrUnauthorized)
	assert.False(t, n.Read)

	require.NoError(t, svc.MarkRead(n.ID, "alice"))
	assert.True(t, n.Read)
	assert.Equal(t, 0, svc.UnreadCount("alice"))

	err = svc.MarkRead(9999, "alice")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteNotification(t *testing.T) {
	store := memory.New()
	svc := NewNotificationService(store, logger.NewNop())
	n := seedNotification(store, "alice")

	err := svc.Delete(n.ID, "bob")
	assert.ErrorIs(t, err, repository.ErrUnauthorized)

	require.NoError(t, svc.Delete(n.ID, "alice"))
	assert.Empty(t, store.Notifications())

	err = svc.Delete(n.ID, "alice")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
