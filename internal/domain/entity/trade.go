package entity

import (
	"errors"
	"time"
)

type TradeStatus string

const (
	TradeRequested  TradeStatus = "requested"
	TradeAccepted   TradeStatus = "accepted"
	TradeInProgress TradeStatus = "in_progress"
	TradeCompleted  TradeStatus = "completed"
	TradeCancelled  TradeStatus = "cancelled"
)

// validTransitions is the single source of truth for the trade state machine.
// completed and cancelled are terminal.
var validTransitions = map[TradeStatus][]TradeStatus{
	TradeRequested:  {TradeAccepted, TradeCancelled},
	TradeAccepted:   {TradeInProgress, TradeCancelled},
	TradeInProgress: {TradeCompleted, TradeCancelled},
	TradeCompleted:  {},
	TradeCancelled:  {},
}

// listingStatusFor maps a trade status to the listing status it drives.
// The zero value means "leave the listing alone".
var listingStatusFor = map[TradeStatus]ListingStatus{
	TradeAccepted:   ListingInProgress,
	TradeInProgress: ListingInProgress,
	TradeCompleted:  ListingCompleted,
	TradeCancelled:  ListingOnSale,
}

// Trade is one negotiation between a buyer and the listing's owner. The
// listing/buyer/seller references are immutable after creation. The two
// evaluation pointers are nil until that side has evaluated.
type Trade struct {
	ID           int64       `json:"id"`
	ListingID    int64       `json:"listing_id"`
	BuyerHandle  string      `json:"buyer_handle"`
	SellerHandle string      `json:"seller_handle"`
	Status       TradeStatus `json:"status"`
	BuyerRated   *bool       `json:"buyer_rated,omitempty"`
	SellerRated  *bool       `json:"seller_rated,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func NewTrade(id, listingID int64, buyerHandle, sellerHandle string, now time.Time) (*Trade, error) {
	if id <= 0 || listingID <= 0 {
		return nil, errors.New("trade and listing IDs must be positive")
	}
	if buyerHandle == "" || sellerHandle == "" {
		return nil, errors.New("buyer and seller handles cannot be empty")
	}
	if buyerHandle == sellerHandle {
		return nil, ErrSelfTrade
	}
	return &Trade{
		ID:           id,
		ListingID:    listingID,
		BuyerHandle:  buyerHandle,
		SellerHandle: sellerHandle,
		Status:       TradeRequested,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsParty reports whether handle is the buyer or the seller.
func (t *Trade) IsParty(handle string) bool {
	return handle == t.BuyerHandle || handle == t.SellerHandle
}

// Counterparty returns the other side's handle. The caller has already
// established that handle is a party.
func (t *Trade) Counterparty(handle string) string {
	if handle == t.BuyerHandle {
		return t.SellerHandle
	}
	return t.BuyerHandle
}

// CanTransitionTo checks the transition table without mutating.
func (t *Trade) CanTransitionTo(target TradeStatus) bool {
	for _, s := range validTransitions[t.Status] {
		if s == target {
			return true
		}
	}
	return false
}

// UpdateStatus moves the trade along the state machine or fails with
// ErrInvalidTransition.
func (t *Trade) UpdateStatus(target TradeStatus, now time.Time) error {
	if !t.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	t.Status = target
	t.UpdatedAt = now
	return nil
}

// ListingStatusAfter returns the listing status this trade status drives and
// whether the listing should change at all.
func ListingStatusAfter(status TradeStatus) (ListingStatus, bool) {
	ls, ok := listingStatusFor[status]
	return ls, ok
}

// RatedBy returns the evaluation flag for handle's side.
func (t *Trade) RatedBy(handle string) *bool {
	if handle == t.BuyerHandle {
		return t.BuyerRated
	}
	return t.SellerRated
}

// Rate records handle's one-time evaluation. It fails unless the trade is
// completed, and fails on a second attempt from the same side.
func (t *Trade) Rate(handle string, favorable bool, now time.Time) error {
	if t.Status != TradeCompleted {
		return ErrTradeNotCompleted
	}
	if t.RatedBy(handle) != nil {
		return ErrDuplicateEvaluation
	}
	v := favorable
	if handle == t.BuyerHandle {
		t.BuyerRated = &v
	} else {
		t.SellerRated = &v
	}
	t.UpdatedAt = now
	return nil
}
