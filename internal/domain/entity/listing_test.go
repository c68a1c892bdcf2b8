package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListing(t *testing.T) *Listing {
	t.Helper()
	l, err := NewListing(1001, "alice", ListingSpec{
		Title:     "wool coat",
		Category:  "outerwear",
		Price:     45000,
		Location:  "downtown",
		Condition: ConditionMedium,
	}, time.Now().UTC())
	require.NoError(t, err)
	return l
}

func TestNewListingValidation(t *testing.T) {
	now := time.Now().UTC()

	_, err := NewListing(0, "alice", ListingSpec{Condition: ConditionHigh}, now)
	assert.Error(t, err)

	_, err = NewListing(1001, "", ListingSpec{Condition: ConditionHigh}, now)
	assert.Error(t, err)

	_, err = NewListing(1001, "alice", ListingSpec{Price: -1, Condition: ConditionHigh}, now)
	assert.Error(t, err)

	_, err = NewListing(1001, "alice", ListingSpec{Condition: "mint"}, now)
	assert.Error(t, err)
}

func TestListingStartsOnSale(t *testing.T) {
	l := newTestListing(t)
	assert.Equal(t, ListingOnSale, l.Status)
	assert.True(t, l.Available())
	assert.True(t, l.Editable())
}

func TestApply(t *testing.T) {
	l := newTestListing(t)
	later := l.UpdatedAt.Add(time.Minute)

	title := "wool winter coat"
	price := int64(40000)
	require.NoError(t, l.Apply(ListingUpdate{Title: &title, Price: &price}, later))

	assert.Equal(t, "wool winter coat", l.Title)
	assert.Equal(t, int64(40000), l.Price)
	assert.Equal(t, "outerwear", l.Category, "untouched fields keep their values")
	assert.Equal(t, later, l.UpdatedAt)

	bad := int64(-5)
	assert.Error(t, l.Apply(ListingUpdate{Price: &bad}, later))
}

func TestCompletedListingIsFinal(t *testing.T) {
	l := newTestListing(t)
	now := time.Now().UTC()

	l.SetStatus(ListingCompleted, now)
	assert.Equal(t, ListingCompleted, l.Status)
	assert.False(t, l.Available())
	assert.False(t, l.Editable())

	// a later cancel on an unrelated trade must not reopen the listing
	l.SetStatus(ListingOnSale, now)
	assert.Equal(t, ListingCompleted, l.Status)
}

func TestMarkDeleted(t *testing.T) {
	l := newTestListing(t)
	l.MarkDeleted(time.Now().UTC())

	assert.True(t, l.Deleted)
	assert.False(t, l.Available())
	assert.False(t, l.Editable())
}
