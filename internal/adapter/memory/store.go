// Package memory implements an ephemeral Store. It backs tests and any run
// that does not want a snapshot file; Load and Save are successful no-ops.
package memory

import (
	"sync"

	"github.com/kosa-java-team2/Hanger/internal/domain/entity"
	"github.com/kosa-java-team2/Hanger/internal/repository"
)

const (
	defaultListingSeq      = 1000
	defaultTradeSeq        = 2000
	defaultNotificationSeq = 3000
	defaultReportSeq       = 4000
)

var _ repository.Store = (*Store)(nil)

type Store struct {
	seqMu           sync.Mutex
	listingSeq      int64
	tradeSeq        int64
	notificationSeq int64
	reportSeq       int64

	accounts        map[string]*entity.Account
	listings        map[int64]*entity.Listing
	trades          map[int64]*entity.Trade
	notifications   map[int64]*entity.Notification
	reports         map[int64]*entity.Report
	verificationIDs map[string]struct{}
}

func New() *Store {
	return &Store{
		listingSeq:      defaultListingSeq,
		tradeSeq:        defaultTradeSeq,
		notificationSeq: defaultNotificationSeq,
		reportSeq:       defaultReportSeq,
		accounts:        make(map[string]*entity.Account),
		listings:        make(map[int64]*entity.Listing),
		trades:          make(map[int64]*entity.Trade),
		notifications:   make(map[int64]*entity.Notification),
		reports:         make(map[int64]*entity.Report),
		verificationIDs: make(map[string]struct{}),
	}
}

func (s *Store) Accounts() map[string]*entity.Account          { return s.accounts }
func (s *Store) Listings() map[int64]*entity.Listing           { return s.listings }
func (s *Store) Trades() map[int64]*entity.Trade               { return s.trades }
func (s *Store) Notifications() map[int64]*entity.Notification { return s.notifications }
func (s *Store) Reports() map[int64]*entity.Report             { return s.reports }
func (s *Store) VerificationIDs() map[string]struct{}          { return s.verificationIDs }

func (s *Store) NextListingID() int64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	s.listingSeq++
	return s.listingSeq
}

func (s *Store) NextTradeID() int64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	s.tradeSeq++
	return s.tradeSeq
}

func (s *Store) NextNotificationID() int64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	s.notificationSeq++
	return s.notificationSeq
}

func (s *Store) NextReportID() int64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	s.reportSeq++
	return s.reportSeq
}

func (s *Store) Load() error { return nil }
func (s *Store) Save() error { return nil }
