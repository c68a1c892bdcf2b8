package entity

import (
	"errors"
	"time"
)

type ListingStatus string

const (
	ListingOnSale     ListingStatus = "on_sale"
	ListingInProgress ListingStatus = "in_progress"
	ListingCompleted  ListingStatus = "completed"
)

type ConditionLevel string

const (
	ConditionHigh   ConditionLevel = "high"
	ConditionMedium ConditionLevel = "medium"
	ConditionLow    ConditionLevel = "low"
)

// Listing is a sellable item posting. Once completed or soft-deleted it no
// longer accepts edits or new trade requests.
type Listing struct {
	ID          int64          `json:"id"`
	OwnerHandle string         `json:"owner_handle"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Price       int64          `json:"price"`
	Location    string         `json:"location"`
	Condition   ConditionLevel `json:"condition"`
	Description string         `json:"description"`
	Status      ListingStatus  `json:"status"`
	Deleted     bool           `json:"deleted"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ListingSpec carries the validated values a listing is created from.
type ListingSpec struct {
	Title       string
	Category    string
	Price       int64
	Location    string
	Condition   ConditionLevel
	Description string
}

func NewListing(id int64, ownerHandle string, spec ListingSpec, now time.Time) (*Listing, error) {
	if id <= 0 {
		return nil, errors.New("listing ID must be positive")
	}
	if ownerHandle == "" {
		return nil, errors.New("owner handle cannot be empty")
	}
	if spec.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	switch spec.Condition {
	case ConditionHigh, ConditionMedium, ConditionLow:
	default:
		return nil, errors.New("condition must be high, medium or low")
	}
	return &Listing{
		ID:          id,
		OwnerHandle: ownerHandle,
		Title:       spec.Title,
		Category:    spec.Category,
		Price:       spec.Price,
		Location:    spec.Location,
		Condition:   spec.Condition,
		Description: spec.Description,
		Status:      ListingOnSale,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Available reports whether the listing may accept a new trade request.
func (l *Listing) Available() bool {
	return !l.Deleted && l.Status != ListingCompleted
}

// Editable reports whether ordinary field edits are still allowed.
func (l *Listing) Editable() bool {
	return !l.Deleted && l.Status != ListingCompleted
}

// ListingUpdate holds optional replacement values; nil fields are left alone.
type ListingUpdate struct {
	Title       *string
	Category    *string
	Price       *int64
	Location    *string
	Condition   *ConditionLevel
	Description *string
}

// Apply writes the non-nil fields and refreshes UpdatedAt. The caller has
// already established that the listing is editable.
func (l *Listing) Apply(u ListingUpdate, now time.Time) error {
	if u.Price != nil && *u.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if u.Condition != nil {
		switch *u.Condition {
		case ConditionHigh, ConditionMedium, ConditionLow:
		default:
			return errors.New("condition must be high, medium or low")
		}
	}
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.Category != nil {
		l.Category = *u.Category
	}
	if u.Price != nil {
		l.Price = *u.Price
	}
	if u.Location != nil {
		l.Location = *u.Location
	}
	if u.Condition != nil {
		l.Condition = *u.Condition
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	l.UpdatedAt = now
	return nil
}

// SetStatus moves the listing's visibility state. A completed listing is
// final: it is never reopened, not even by a later cancel on another trade.
func (l *Listing) SetStatus(status ListingStatus, now time.Time) {
	if l.Status == ListingCompleted {
		return
	}
	l.Status = status
	l.UpdatedAt = now
}

// MarkDeleted soft-deletes the listing; the record itself is kept.
func (l *Listing) MarkDeleted(now time.Time) {
	l.Deleted = true
	l.UpdatedAt = now
}
