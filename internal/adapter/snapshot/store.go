// Package snapshot implements the file-backed Store: all collections and
// sequence counters serialized as one JSON artifact, replaced atomically on
// every save.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/kosa-java-team2/Hanger/internal/domain/entity"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/platform/metrics"
	"github.com/kosa-java-team2/Hanger/internal/repository"
)

// Default sequence starting points per entity kind. NextX pre-increments, so
// the first issued listing ID is 1001, the first trade ID 2001, and so on.
const (
	defaultListingSeq      = 1000
	defaultTradeSeq        = 2000
	defaultNotificationSeq = 3000
	defaultReportSeq       = 4000
)

const snapshotVersion = 1

var _ repository.Store = (*Store)(nil)

type Store struct {
	path string
	log  logger.Logger
	m    *metrics.Manager

	// seqMu guards the four sequence counters; the collections themselves
	// have a single caller, see repository.Store.
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

// snapshotFile is the on-disk shape. Fields absent from an older artifact
// decode to their zero values and are replaced by defaults on load.
type snapshotFile struct {
	Version         int                            `json:"version"`
	Accounts        map[string]*entity.Account     `json:"accounts"`
	Listings        map[int64]*entity.Listing      `json:"listings"`
	Trades          map[int64]*entity.Trade        `json:"trades"`
	Notifications   map[int64]*entity.Notification `json:"notifications"`
	Reports         map[int64]*entity.Report       `json:"reports"`
	VerificationIDs []string                       `json:"verification_ids"`
	ListingSeq      int64                          `json:"listing_seq"`
	TradeSeq        int64                          `json:"trade_seq"`
	NotificationSeq int64                          `json:"notification_seq"`
	ReportSeq       int64                          `json:"report_seq"`
}

func New(path string, log logger.Logger, m *metrics.Manager) *Store {
	s := &Store{path: path, log: log, m: m}
	s.resetToDefaults()
	return s
}

func (s *Store) resetToDefaults() {
	s.accounts = make(map[string]*entity.Account)
	s.listings = make(map[int64]*entity.Listing)
	s.trades = make(map[int64]*entity.Trade)
	s.notifications = make(map[int64]*entity.Notification)
	s.reports = make(map[int64]*entity.Report)
	s.verificationIDs = make(map[string]struct{})

	s.listingSeq = defaultListingSeq
	s.tradeSeq = defaultTradeSeq
	s.notificationSeq = defaultNotificationSeq
	s.reportSeq = defaultReportSeq
}

// Load reads the snapshot file if present. A missing file leaves the store in
// its default state and is not an error. A corrupt file is reported to the
// caller, and the store still ends up in a usable default state.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Infof("no snapshot at %s, starting empty", s.path)
			return nil
		}
		s.resetToDefaults()
		return fmt.Errorf("%w: reading %s: %v", repository.ErrSnapshotRead, s.path, err)
	}

	var f snapshotFile
	if err := json.Unmarshal(data, &f); err != nil {
		s.resetToDefaults()
		return fmt.Errorf("%w: decoding %s: %v", repository.ErrSnapshotRead, s.path, err)
	}

	s.apply(&f)
	s.log.Infof("snapshot loaded (accounts=%d, listings=%d, trades=%d)",
		len(s.accounts), len(s.listings), len(s.trades))
	return nil
}

func (s *Store) apply(f *snapshotFile) {
	s.accounts = nvlMap(f.Accounts)
	s.listings = nvlMap(f.Listings)
	s.trades = nvlMap(f.Trades)
	s.notifications = nvlMap(f.Notifications)
	s.reports = nvlMap(f.Reports)

	s.verificationIDs = make(map[string]struct{}, len(f.VerificationIDs))
	for _, id := range f.VerificationIDs {
		s.verificationIDs[id] = struct{}{}
	}

	// A counter must never fall below an ID already present in its
	// collection; older snapshots may predate a counter field entirely.
	s.listingSeq = nzOrDefault(f.ListingSeq, defaultListingSeq)
	s.tradeSeq = nzOrDefault(f.TradeSeq, defaultTradeSeq)
	s.notificationSeq = nzOrDefault(f.NotificationSeq, defaultNotificationSeq)
	s.reportSeq = nzOrDefault(f.ReportSeq, defaultReportSeq)

	s.listingSeq = max64(s.listingSeq, maxKey(s.listings))
	s.tradeSeq = max64(s.tradeSeq, maxKey(s.trades))
	s.notificationSeq = max64(s.notificationSeq, maxKey(s.notifications))
	s.reportSeq = max64(s.reportSeq, maxKey(s.reports))
}

// Save serializes the collections and counters into one artifact. The bytes
// go to a temp file in the destination directory first and are renamed into
// place, so a failed write never damages the previous snapshot.
func (s *Store) Save() error {
	f := snapshotFile{
		Version:       snapshotVersion,
		Accounts:      s.accounts,
		Listings:      s.listings,
		Trades:        s.trades,
		Notifications: s.notifications,
		Reports:       s.reports,
	}
	for id := range s.verificationIDs {
		f.VerificationIDs = append(f.VerificationIDs, id)
	}
	s.seqMu.Lock()
	f.ListingSeq = s.listingSeq
	f.TradeSeq = s.tradeSeq
	f.NotificationSeq = s.notificationSeq
	f.ReportSeq = s.reportSeq
	s.seqMu.Unlock()

	data, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		s.m.SnapshotSaveFailures.Inc()
		return fmt.Errorf("%w: encoding: %v", repository.ErrSnapshotWrite, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		s.m.SnapshotSaveFailures.Inc()
		return fmt.Errorf("%w: creating temp file in %s: %v", repository.ErrSnapshotWrite, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		s.m.SnapshotSaveFailures.Inc()
		return fmt.Errorf("%w: writing %s: %v", repository.ErrSnapshotWrite, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		s.m.SnapshotSaveFailures.Inc()
		return fmt.Errorf("%w: closing %s: %v", repository.ErrSnapshotWrite, tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		s.m.SnapshotSaveFailures.Inc()
		return fmt.Errorf("%w: replacing %s: %v", repository.ErrSnapshotWrite, s.path, err)
	}

	s.m.SnapshotSaves.Inc()
	return nil
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

func nvlMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return make(map[K]V)
	}
	return m
}

func nzOrDefault(v, def int64) int64 {
	if v == 0 {
		return def
	}
	return v
}

func maxKey[V any](m map[int64]V) int64 {
	var mx int64
	for k := range m {
		if k > mx {
			mx = k
		}
	}
	return mx
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
