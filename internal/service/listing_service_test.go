package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosa-java-team2/Hanger/internal/adapter/memory"
	"github.com/kosa-java-team2/Hanger/internal/domain/entity"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/platform/profanity"
	"github.com/kosa-java-team2/Hanger/internal/repository"
)

func newListingFixture(t *testing.T) (ListingService, *memory.Store) {
	t.Helper()
	store := memory.New()
	seedAccount(t, store, "alice", entity.RoleMember)
	seedAccount(t, store, "bob", entity.RoleMember)
	return NewListingService(store, logger.NewNop(), profanity.NewFilter()), store
}

func coatSpec() entity.ListingSpec {
	return entity.ListingSpec{
		Title:       "wool coat",
		Category:    "outerwear",
		Price:       45000,
		Location:    "downtown",
		Condition:   entity.ConditionMedium,
		Description: "warm, barely worn",
	}
}

func TestCreateListing(t *testing.T) {
	svc, _ := newListingFixture(t)

	l, err := svc.Create("alice", coatSpec())
	require.NoError(t, err)
	assert.Equal(t, int64(1001), l.ID)
	assert.Equal(t, entity.ListingOnSale, l.Status)

	_, err = svc.Create("nobody", coatSpec())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	bad := coatSpec()
	bad.Title = "total scam coat"
	_, err = svc.Create("alice", bad)
	assert.ErrorIs(t, err, entity.ErrInvalidEntityData)

	bad = coatSpec()
	bad.Price = -1
	_, err = svc.Create("alice", bad)
	assert.Error(t, err)
}

func TestUpdateListing(t *testing.T) {
	svc, _ := newListingFixture(t)
	l, err := svc.Create("alice", coatSpec())
	require.NoError(t, err)

	price := int64(40000)
	got, err := svc.Update(l.ID, "alice", entity.ListingUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(40000), got.Price)

	_, err = svc.Update(l.ID, "bob", entity.ListingUpdate{Price: &price})
	assert.ErrorIs(t, err, repository.ErrUnauthorized)

	banned := "stolen goods"
	_, err = svc.Update(l.ID, "alice", entity.ListingUpdate{Title: &banned})
	assert.ErrorIs(t, err, entity.ErrInvalidEntityData)

	l.SetStatus(entity.ListingCompleted, time.Now().UTC())
	_, err = svc.Update(l.ID, "alice", entity.ListingUpdate{Price: &price})
	assert.ErrorIs(t, err, entity.ErrListingUnavailable)
}

func TestDeleteListing(t *testing.T) {
	svc, _ := newListingFixture(t)
	l, err := svc.Create("alice", coatSpec())
	require.NoError(t, err)

	err = svc.Delete(l.ID, "bob")
	assert.ErrorIs(t, err, repository.ErrUnauthorized)

	require.NoError(t, svc.Delete(l.ID, "alice"))
	assert.True(t, l.Deleted)

	_, err = svc.Get(l.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteCompletedListingRejected(t *testing.T) {
	svc, _ := newListingFixture(t)
	l, err := svc.Create("alice", coatSpec())
	require.NoError(t, err)
	l.SetStatus(entity.ListingCompleted, time.Now().UTC())

	err = svc.Delete(l.ID, "alice")
	assert.ErrorIs(t, err, entity.ErrListingUnavailable)
}

func TestSearch(t *testing.T) {
	svc, _ := newListingFixture(t)

	cheap := coatSpec()
	cheap.Title = "rain jacket"
	cheap.Price = 10000
	jacket, err := svc.Create("alice", cheap)
	require.NoError(t, err)

	coat, err := svc.Create("alice", coatSpec())
	require.NoError(t, err)

	mine := coatSpec()
	mine.Title = "bob's own coat"
	own, err := svc.Create("bob", mine)
	require.NoError(t, err)

	gone := coatSpec()
	gone.Title = "deleted coat"
	deleted, err := svc.Create("alice", gone)
	require.NoError(t, err)
	deleted.MarkDeleted(time.Now().UTC())

	done := coatSpec()
	done.Title = "sold coat"
	sold, err := svc.Create("alice", done)
	require.NoError(t, err)
	sold.SetStatus(entity.ListingCompleted, time.Now().UTC())

	results := svc.Search("bob", "", SortPriceAsc)
	require.Len(t, results, 2, "own, deleted and completed listings are excluded")
	assert.Equal(t, jacket.ID, results[0].ID)
	assert.Equal(t, coat.ID, results[1].ID)

	results = svc.Search("bob", "", SortPriceDesc)
	assert.Equal(t, coat.ID, results[0].ID)

	results = svc.Search("bob", "JACKET", SortNewest)
	require.Len(t, results, 1)
	assert.Equal(t, jacket.ID, results[0].ID)

	// keyword also matches descriptions
	results = svc.Search("bob", "barely worn", SortPriceAsc)
	assert.Len(t, results, 2)

	// an anonymous viewer sees bob's listing too
	results = svc.Search("", "", SortPriceAsc)
	assert.Len(t, results, 3)
	_ = own
}

func TestListingsOf(t *testing.T) {
	svc, _ := newListingFixture(t)

	first, err := svc.Create("alice", coatSpec())
	require.NoError(t, err)
	second, err := svc.Create("alice", coatSpec())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(second.ID, "alice"))

	mine := svc.ListingsOf("alice")
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
}
