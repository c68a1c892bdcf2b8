// Package repository defines the persistent entity store consumed by the
// services. Implementations live under internal/adapter.
package repository

import "github.com/kosa-java-team2/Hanger/internal/domain/entity"

// Store owns the five keyed collections, the duplicate-registration index and
// the four monotonic ID sequences, and persists them as one snapshot.
//
// Accessors return the live maps; callers mutate them directly and call Save
// once a change should become durable. The sequence methods are safe for
// concurrent callers; nothing else is, since one interactive session drives
// the core. Wrapping whole logical operations in a lock is the extension
// point for anything more concurrent.
type Store interface {
	Accounts() map[string]*entity.Account
	Listings() map[int64]*entity.Listing
	Trades() map[int64]*entity.Trade
	Notifications() map[int64]*entity.Notification
	Reports() map[int64]*entity.Report

	// VerificationIDs is the O(1) duplicate-registration index.
	VerificationIDs() map[string]struct{}

	// Each NextX returns a value strictly greater than every value it
	// returned before, including across a Save/Load cycle.
	NextListingID() int64
	NextTradeID() int64
	NextNotificationID() int64
	NextReportID() int64

	// Load restores the last snapshot. A missing snapshot is not an error;
	// a corrupt one is reported and the store falls back to defaults.
	Load() error

	// Save writes one atomic snapshot, never truncating the previous one
	// before the replacement is complete.
	Save() error
}
