package cli

import "github.com/kosa-java-team2/Hanger/internal/domain/entity"

// Presentation text lives here, in the rendering layer; the entities carry
// bare enumeration values only.

var listingStatusLabels = map[entity.ListingStatus]string{
	entity.ListingOnSale:     "on sale",
	entity.ListingInProgress: "trade in progress",
	entity.ListingCompleted:  "sold",
}

var tradeStatusLabels = map[entity.TradeStatus]string{
	entity.TradeRequested:  "requested",
	entity.TradeAccepted:   "accepted",
	entity.TradeInProgress: "in progress",
	entity.TradeCompleted:  "completed",
	entity.TradeCancelled:  "cancelled",
}

var conditionLabels = map[entity.ConditionLevel]string{
	entity.ConditionHigh:   "like new",
	entity.ConditionMedium: "used",
	entity.ConditionLow:    "worn",
}

var notificationTypeLabels = map[entity.NotificationType]string{
	entity.NotificationTradeRequest:   "trade request",
	entity.NotificationTradeStatus:    "trade update",
	entity.NotificationTradeCompleted: "trade completed",
	entity.NotificationReportReceived: "report received",
}

func listingStatusLabel(s entity.ListingStatus) string {
	if l, ok := listingStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func tradeStatusLabel(s entity.TradeStatus) string {
	if l, ok := tradeStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func conditionLabel(c entity.ConditionLevel) string {
	if l, ok := conditionLabels[c]; ok {
		return l
	}
	return string(c)
}

func notificationTypeLabel(t entity.NotificationType) string {
	if l, ok := notificationTypeLabels[t]; ok {
		return l
	}
	return string(t)
}
