package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/kosa-java-team2/Hanger/internal/domain/entity"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/repository"
)

// AdminService bundles the operations reserved for administrator accounts.
// Every mutating call re-checks the actor's role; the shell performs no
// business-rule checking of its own.
type AdminService interface {
	ListAccounts(actorHandle string) ([]*entity.Account, error)
	RemoveAccount(actorHandle, targetHandle string) error
	RemoveListing(actorHandle string, listingID int64) error
	ListReports(actorHandle string) ([]*entity.Report, error)
}

type adminService struct {
	store repository.Store
	log   logger.Logger
}

func NewAdminService(store repository.Store, log logger.Logger) AdminService {
	return &adminService{store: store, log: log}
}

func (s *adminService) requireAdmin(handle string) error {
	actor, ok := s.store.Accounts()[handle]
	if !ok {
		return fmt.Errorf("account %s: %w", handle, repository.ErrNotFound)
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%s: %w", handle, repository.ErrUnauthorized)
	}
	return nil
}

func (s *adminService) ListAccounts(actorHandle string) ([]*entity.Account, error) {
	if err := s.requireAdmin(actorHandle); err != nil {
		return nil, err
	}
	var out []*entity.Account
	for _, a := range s.store.Accounts() {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out, nil
}

// RemoveAccount deletes a member account, soft-deletes all of its listings
// and frees its verification identifier for future registrations. Admin
// accounts cannot be removed.
func (s *adminService) RemoveAccount(actorHandle, targetHandle string) error {
	if err := s.requireAdmin(actorHandle); err != nil {
		return err
	}
	target, ok := s.store.Accounts()[targetHandle]
	if !ok {
		return fmt.Errorf("account %s: %w", targetHandle, repository.ErrNotFound)
	}
	if target.IsAdmin() {
		return fmt.Errorf("admin account %s cannot be removed: %w", targetHandle, repository.ErrUnauthorized)
	}

	now := time.Now().UTC()
	for _, l := range s.store.Listings() {
		if !l.Deleted && l.OwnerHandle == targetHandle {
			l.MarkDeleted(now)
		}
	}

	delete(s.store.Accounts(), targetHandle)
	delete(s.store.VerificationIDs(), target.VerificationID)

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting removal of account %s: %v", targetHandle, err)
		return err
	}
	s.log.Infof("account %s removed by %s", targetHandle, actorHandle)
	return nil
}

func (s *adminService) RemoveListing(actorHandle string, listingID int64) error {
	if err := s.requireAdmin(actorHandle); err != nil {
		return err
	}
	listing, ok := s.store.Listings()[listingID]
	if !ok || listing.Deleted {
		return fmt.Errorf("listing %d: %w", listingID, repository.ErrNotFound)
	}

	listing.MarkDeleted(time.Now().UTC())

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting removal of listing %d: %v", listingID, err)
		return err
	}
	s.log.Infof("listing %d removed by %s", listingID, actorHandle)
	return nil
}

func (s *adminService) ListReports(actorHandle string) ([]*entity.Report, error) {
	if err := s.requireAdmin(actorHandle); err != nil {
		return nil, err
	}
	var out []*entity.Report
	for _, r := range s.store.Reports() {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
