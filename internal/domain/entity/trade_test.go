package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrade(t *testing.T, status TradeStatus) *Trade {
	t.Helper()
	tr, err := NewTrade(2001, 1001, "bob", "alice", time.Now().UTC())
	require.NoError(t, err)
	tr.Status = status
	return tr
}

func TestNewTradeRejectsSelfTrade(t *testing.T) {
	_, err := NewTrade(2001, 1001, "alice", "alice", time.Now().UTC())
	assert.ErrorIs(t, err, ErrSelfTrade)
}

func TestUpdateStatusTable(t *testing.T) {
	all := []TradeStatus{TradeRequested, TradeAccepted, TradeInProgress, TradeCompleted, TradeCancelled}
	legal := map[TradeStatus]map[TradeStatus]bool{
		TradeRequested:  {TradeAccepted: true, TradeCancelled: true},
		TradeAccepted:   {TradeInProgress: true, TradeCancelled: true},
		TradeInProgress: {TradeCompleted: true, TradeCancelled: true},
		TradeCompleted:  {},
		TradeCancelled:  {},
	}

	for _, from := range all {
		for _, to := range all {
			tr := newTestTrade(t, from)
			err := tr.UpdateStatus(to, time.Now().UTC())
			if legal[from][to] {
				assert.NoError(t, err, "%s -> %s should be legal", from, to)
				assert.Equal(t, to, tr.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s should be rejected", from, to)
				assert.Equal(t, from, tr.Status, "status must not move on a rejected transition")
			}
		}
	}
}

func TestUpdateStatusRefreshesUpdatedAt(t *testing.T) {
	tr := newTestTrade(t, TradeRequested)
	later := tr.UpdatedAt.Add(time.Minute)
	require.NoError(t, tr.UpdateStatus(TradeAccepted, later))
	assert.Equal(t, later, tr.UpdatedAt)
}

func TestListingStatusAfter(t *testing.T) {
	ls, ok := ListingStatusAfter(TradeAccepted)
	assert.True(t, ok)
	assert.Equal(t, ListingInProgress, ls)

	ls, ok = ListingStatusAfter(TradeInProgress)
	assert.True(t, ok)
	assert.Equal(t, ListingInProgress, ls)

	ls, ok = ListingStatusAfter(TradeCompleted)
	assert.True(t, ok)
	assert.Equal(t, ListingCompleted, ls)

	ls, ok = ListingStatusAfter(TradeCancelled)
	assert.True(t, ok)
	assert.Equal(t, ListingOnSale, ls)

	_, ok = ListingStatusAfter(TradeRequested)
	assert.False(t, ok, "a fresh request leaves the listing alone")
}

func TestCounterparty(t *testing.T) {
	tr := newTestTrade(t, TradeRequested)
	assert.Equal(t, "alice", tr.Counterparty("bob"))
	assert.Equal(t, "bob", tr.Counterparty("alice"))
	assert.True(t, tr.IsParty("bob"))
	assert.True(t, tr.IsParty("alice"))
	assert.False(t, tr.IsParty("mallory"))
}

func TestRate(t *testing.T) {
	now := time.Now().UTC()

	tr := newTestTrade(t, TradeInProgress)
	assert.ErrorIs(t, tr.Rate("bob", true, now), ErrTradeNotCompleted)

	tr.Status = TradeCompleted
	require.NoError(t, tr.Rate("bob", true, now))
	require.NotNil(t, tr.BuyerRated)
	assert.True(t, *tr.BuyerRated)
	assert.Nil(t, tr.SellerRated)

	// second attempt from the same side
	assert.ErrorIs(t, tr.Rate("bob", false, now), ErrDuplicateEvaluation)

	// the other side may still evaluate independently
	require.NoError(t, tr.Rate("alice", false, now))
	require.NotNil(t, tr.SellerRated)
	assert.False(t, *tr.SellerRated)
}
