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

func newAdminFixture(t *testing.T) (AdminService, *memory.Store) {
	t.Helper()
	store := memory.New()
	seedAccount(t, store, AdminHandle, entity.RoleAdmin)
	seedAccount(t, store, "alice", entity.RoleMember)
	seedAccount(t, store, "bob", entity.RoleMember)
	return NewAdminService(store, logger.NewNop()), store
}

func TestRequireAdmin(t *testing.T) {
	svc, _ := newAdminFixture(t)

	_, err := svc.ListAccounts("alice")
	assert.ErrorIs(t, err, repository.ErrUnauthorized)

	_, err = svc.ListAccounts("nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	accounts, err := svc.ListAccounts(AdminHandle)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, AdminHandle, accounts[0].Handle) // handle order
}

func TestRemoveAccount(t *testing.T) {
	svc, store := newAdminFixture(t)

	alice := store.Accounts()["alice"]
	store.VerificationIDs()[alice.VerificationID] = struct{}{}
	listing := seedListing(t, store, "alice")

	require.NoError(t, svc.RemoveAccount(AdminHandle, "alice"))

	assert.NotContains(t, store.Accounts(), "alice")
	assert.NotContains(t, store.VerificationIDs(), alice.VerificationID)
	assert.True(t, listing.Deleted, "the removed account's listings are soft-deleted")

	err := svc.RemoveAccount(AdminHandle, AdminHandle)
	assert.ErrorIs(t, err, repository.ErrUnauthorized, "admin accounts cannot be removed")

	err = svc.RemoveAccount(AdminHandle, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.RemoveAccount("bob", "alice")
	assert.ErrorIs(t, err, repository.ErrUnauthorized)
}

func TestRemoveListing(t *testing.T) {
	svc, store := newAdminFixture(t)
	listing := seedListing(t, store, "alice")

	require.NoError(t, svc.RemoveListing(AdminHandle, listing.ID))
	assert.True(t, listing.Deleted)

	// already deleted listings read as gone
	err := svc.RemoveListing(AdminHandle, listing.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListReports(t *testing.T) {
	svc, store := newAdminFixture(t)

	now := time.Now().UTC()
	first := store.NextReportID()
	store.Reports()[first] = entity.NewReport(first, "bob", "alice", "late", now)
	second := store.NextReportID()
	store.Reports()[second] = entity.NewReport(second, "alice", "bob", "rude", now)

	reports, err := svc.ListReports(AdminHandle)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, first, reports[0].ID)
	assert.Equal(t, second, reports[1].ID)

	_, err = svc.ListReports("alice")
	assert.ErrorIs(t, err, repository.ErrUnauthorized)
}
