package service

import (
	"fmt"
	"sort"

	"github.com/kosa-java-team2/Hanger/internal/domain/entity"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/repository"
)

// NotificationService reads and maintains a recipient's outbox. Appending is
// done by the trade service; only the recipient may read or delete.
type NotificationService interface {
	NotificationsFor(handle string) []*entity.Notification
	UnreadCount(handle string) int
	MarkRead(id int64, actorHandle string) error
	Delete(id int64, actorHandle string) error
}

type notificationService struct {
	store repository.Store
	log   logger.Logger
}

func NewNotificationService(store repository.Store, log logger.Logger) NotificationService {
	return &notificationService{store: store, log: log}
}

func (s *notificationService) NotificationsFor(handle string) []*entity.Notification {
	var out []*entity.Notification
	for _, n := range s.store.Notifications() {
		if n.Recipient == handle {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *notificationService) UnreadCount(handle string) int {
	count := 0
	for _, n := range s.store.Notifications() {
		if n.Recipient == handle && !n.Read {
			count++
		}
	}
	return count
}

func (s *notificationService) MarkRead(id int64, actorHandle string) error {
	n, ok := s.store.Notifications()[id]
	if !ok {
		return fmt.Errorf("notification %d: %w", id, repository.ErrNotFound)
	}
	if n.Recipient != actorHandle {
		return fmt.Errorf("%s on notification %d: %w", actorHandle, id, repository.ErrUnauthorized)
	}

	n.MarkRead()
	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting read flag of notification %d: %v", id, err)
		return err
	}
	return nil
}

func (s *notificationService) Delete(id int64, actorHandle string) error {
	n, ok := s.store.Notifications()[id]
	if !ok {
		return fmt.Errorf("notification %d: %w", id, repository.ErrNotFound)
	}
	if n.Recipient != actorHandle {
		return fmt.Errorf("%s on notification %d: %w", actorHandle, id, repository.ErrUnauthorized)
	}

	delete(s.store.Notifications(), id)
	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting deletion of notification %d: %v", id, err)
		return err
	}
	return nil
}
