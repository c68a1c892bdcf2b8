package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/kosa-java-team2/Hanger/internal/domain/entity"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/platform/metrics"
	"github.com/kosa-java-team2/Hanger/internal/repository"
)

// AdminHandle receives report notifications.
const AdminHandle = "admin"

// TradeService drives a trade from request to completion or cancellation,
// keeps the listing's visibility in step, notifies the counterparty on every
// transition, and guards the one-evaluation-per-side rule.
type TradeService interface {
	RequestTrade(buyerHandle string, listingID int64) (*entity.Trade, error)
	ChangeStatus(tradeID int64, actorHandle string, target entity.TradeStatus) (*entity.Trade, error)
	Evaluate(tradeID int64, actorHandle string, favorable bool) error
	FileReport(reporterHandle, reportedHandle, reason string) (*entity.Report, error)
	TradesFor(handle string) []*entity.Trade
}

type tradeService struct {
	store repository.Store
	log   logger.Logger
	m     *metrics.Manager
}

func NewTradeService(store repository.Store, log logger.Logger, m *metrics.Manager) TradeService {
	return &tradeService{store: store, log: log, m: m}
}

func (s *tradeService) RequestTrade(buyerHandle string, listingID int64) (*entity.Trade, error) {
	buyer, ok := s.store.Accounts()[buyerHandle]
	if !ok {
		return nil, fmt.Errorf("buyer %s: %w", buyerHandle, repository.ErrNotFound)
	}
	listing, ok := s.store.Listings()[listingID]
	if !ok {
		return nil, fmt.Errorf("listing %d: %w", listingID, repository.ErrNotFound)
	}
	// Self-trade is rejected here, at request time, before any ID is issued.
	if buyer.Handle == listing.OwnerHandle {
		return nil, entity.ErrSelfTrade
	}
	if !listing.Available() {
		return nil, fmt.Errorf("listing %d: %w", listingID, entity.ErrListingUnavailable)
	}

	now := time.Now().UTC()
	tradeID := s.store.NextTradeID()
	trade, err := entity.NewTrade(tradeID, listingID, buyer.Handle, listing.OwnerHandle, now)
	if err != nil {
		return nil, fmt.Errorf("creating trade: %w", err)
	}
	s.store.Trades()[tradeID] = trade

	s.notify(listing.OwnerHandle, entity.NotificationTradeRequest,
		fmt.Sprintf("%s requested a trade for [%d] %s", buyer.DisplayName, listing.ID, listing.Title), now)

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting trade request %d: %v", tradeID, err)
		return nil, err
	}

	s.m.TradesRequested.Inc()
	s.log.Infof("trade %d requested by %s on listing %d", tradeID, buyerHandle, listingID)
	return trade, nil
}

func (s *tradeService) ChangeStatus(tradeID int64, actorHandle string, target entity.TradeStatus) (*entity.Trade, error) {
	trade, ok := s.store.Trades()[tradeID]
	if !ok {
		return nil, fmt.Errorf("trade %d: %w", tradeID, repository.ErrNotFound)
	}
	if !trade.IsParty(actorHandle) {
		return nil, fmt.Errorf("%s on trade %d: %w", actorHandle, tradeID, repository.ErrUnauthorized)
	}

	now := time.Now().UTC()
	if err := trade.UpdateStatus(target, now); err != nil {
		return nil, fmt.Errorf("trade %d %s -> %s: %w", tradeID, trade.Status, target, err)
	}

	// Both in-memory mutations happen before the persist so a crash window
	// cannot split the trade from its listing.
	if listingStatus, changes := entity.ListingStatusAfter(target); changes {
		if listing, ok := s.store.Listings()[trade.ListingID]; ok {
			listing.SetStatus(listingStatus, now)
		}
	}

	typ := entity.NotificationTradeStatus
	if target == entity.TradeCompleted {
		typ = entity.NotificationTradeCompleted
	}
	s.notify(trade.Counterparty(actorHandle), typ,
		fmt.Sprintf("trade [%d] status changed to %s", trade.ID, target), now)

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting status change of trade %d: %v", tradeID, err)
		return nil, err
	}

	switch target {
	case entity.TradeCompleted:
		s.m.TradesCompleted.Inc()
	case entity.TradeCancelled:
		s.m.TradesCancelled.Inc()
	}
	s.log.Infof("trade %d moved to %s by %s", tradeID, target, actorHandle)
	return trade, nil
}

func (s *tradeService) Evaluate(tradeID int64, actorHandle string, favorable bool) error {
	trade, ok := s.store.Trades()[tradeID]
	if !ok {
		return fmt.Errorf("trade %d: %w", tradeID, repository.ErrNotFound)
	}
	if !trade.IsParty(actorHandle) {
		return fmt.Errorf("%s on trade %d: %w", actorHandle, tradeID, repository.ErrUnauthorized)
	}
	counterparty, ok := s.store.Accounts()[trade.Counterparty(actorHandle)]
	if !ok {
		return fmt.Errorf("counterparty of trade %d: %w", tradeID, repository.ErrNotFound)
	}

	now := time.Now().UTC()
	if err := trade.Rate(actorHandle, favorable, now); err != nil {
		return fmt.Errorf("evaluating trade %d: %w", tradeID, err)
	}

	// The evaluation lands on the other party's counters.
	if favorable {
		counterparty.AddFavorable(now)
	} else {
		counterparty.AddUnfavorable(now)
	}

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting evaluation of trade %d: %v", tradeID, err)
		return err
	}

	s.m.EvaluationsRecorded.Inc()
	s.log.Infof("trade %d evaluated by %s (favorable=%t)", tradeID, actorHandle, favorable)
	return nil
}

func (s *tradeService) FileReport(reporterHandle, reportedHandle, reason string) (*entity.Report, error) {
	if _, ok := s.store.Accounts()[reporterHandle]; !ok {
		return nil, fmt.Errorf("reporter %s: %w", reporterHandle, repository.ErrNotFound)
	}
	if _, ok := s.store.Accounts()[reportedHandle]; !ok {
		return nil, fmt.Errorf("reported account %s: %w", reportedHandle, repository.ErrNotFound)
	}

	now := time.Now().UTC()
	reportID := s.store.NextReportID()
	report := entity.NewReport(reportID, reporterHandle, reportedHandle, reason, now)
	s.store.Reports()[reportID] = report

	s.notify(AdminHandle, entity.NotificationReportReceived,
		fmt.Sprintf("report filed: %s -> %s (%s)", reporterHandle, reportedHandle, reason), now)

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting report %d: %v", reportID, err)
		return nil, err
	}

	s.m.ReportsFiled.Inc()
	s.log.Infof("report %d filed by %s against %s", reportID, reporterHandle, reportedHandle)
	return report, nil
}

func (s *tradeService) TradesFor(handle string) []*entity.Trade {
	var out []*entity.Trade
	for _, t := range s.store.Trades() {
		if t.IsParty(handle) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *tradeService) notify(recipient string, typ entity.NotificationType, message string, now time.Time) {
	id := s.store.NextNotificationID()
	s.store.Notifications()[id] = entity.NewNotification(id, recipient, typ, message, now)
}
