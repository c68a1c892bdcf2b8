package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kosa-java-team2/Hanger/internal/domain/entity"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/platform/profanity"
	"github.com/kosa-java-team2/Hanger/internal/repository"
)

// SortMode orders search results.
type SortMode int

const (
	SortPriceAsc SortMode = iota + 1
	SortPriceDesc
	SortNewest
	SortCategory
)

// comparators replaces the usual if/else ladder: one ordering function per
// sort mode, ties broken by ID for stable output.
var comparators = map[SortMode]func(a, b *entity.Listing) bool{
	SortPriceAsc:  func(a, b *entity.Listing) bool { return a.Price < b.Price },
	SortPriceDesc: func(a, b *entity.Listing) bool { return a.Price > b.Price },
	SortNewest:    func(a, b *entity.Listing) bool { return a.CreatedAt.After(b.CreatedAt) },
	SortCategory:  func(a, b *entity.Listing) bool { return a.Category < b.Category },
}

type ListingService interface {
	Create(sellerHandle string, spec entity.ListingSpec) (*entity.Listing, error)
	Update(listingID int64, actorHandle string, update entity.ListingUpdate) (*entity.Listing, error)
	Delete(listingID int64, actorHandle string) error
	Get(listingID int64) (*entity.Listing, error)
	Search(viewerHandle, keyword string, mode SortMode) []*entity.Listing
	ListingsOf(sellerHandle string) []*entity.Listing
}

type listingService struct {
	store  repository.Store
	log    logger.Logger
	filter *profanity.Filter
}

func NewListingService(store repository.Store, log logger.Logger, filter *profanity.Filter) ListingService {
	return &listingService{store: store, log: log, filter: filter}
}

func (s *listingService) Create(sellerHandle string, spec entity.ListingSpec) (*entity.Listing, error) {
	if _, ok := s.store.Accounts()[sellerHandle]; !ok {
		return nil, fmt.Errorf("seller %s: %w", sellerHandle, repository.ErrNotFound)
	}
	if s.filter.ContainsBannedWord(spec.Title) || s.filter.ContainsBannedWord(spec.Description) {
		return nil, fmt.Errorf("%w: banned word in title or description", entity.ErrInvalidEntityData)
	}

	now := time.Now().UTC()
	id := s.store.NextListingID()
	listing, err := entity.NewListing(id, sellerHandle, spec, now)
	if err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}
	s.store.Listings()[id] = listing

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting listing %d: %v", id, err)
		return nil, err
	}

	s.log.Infof("listing %d created by %s", id, sellerHandle)
	return listing, nil
}

func (s *listingService) Update(listingID int64, actorHandle string, update entity.ListingUpdate) (*entity.Listing, error) {
	listing, ok := s.store.Listings()[listingID]
	if !ok {
		return nil, fmt.Errorf("listing %d: %w", listingID, repository.ErrNotFound)
	}
	if listing.OwnerHandle != actorHandle {
		return nil, fmt.Errorf("%s on listing %d: %w", actorHandle, listingID, repository.ErrUnauthorized)
	}
	if !listing.Editable() {
		return nil, fmt.Errorf("listing %d: %w", listingID, entity.ErrListingUnavailable)
	}
	if update.Title != nil && s.filter.ContainsBannedWord(*update.Title) {
		return nil, fmt.Errorf("%w: banned word in title", entity.ErrInvalidEntityData)
	}
	if update.Description != nil && s.filter.ContainsBannedWord(*update.Description) {
		return nil, fmt.Errorf("%w: banned word in description", entity.ErrInvalidEntityData)
	}

	if err := listing.Apply(update, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("updating listing %d: %w", listingID, err)
	}

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting listing %d: %v", listingID, err)
		return nil, err
	}
	return listing, nil
}

func (s *listingService) Delete(listingID int64, actorHandle string) error {
	listing, ok := s.store.Listings()[listingID]
	if !ok {
		return fmt.Errorf("listing %d: %w", listingID, repository.ErrNotFound)
	}
	if listing.OwnerHandle != actorHandle {
		return fmt.Errorf("%s on listing %d: %w", actorHandle, listingID, repository.ErrUnauthorized)
	}
	if listing.Status == entity.ListingCompleted {
		return fmt.Errorf("listing %d already completed: %w", listingID, entity.ErrListingUnavailable)
	}

	listing.MarkDeleted(time.Now().UTC())

	if err := s.store.Save(); err != nil {
		s.log.Errorf("persisting deletion of listing %d: %v", listingID, err)
		return err
	}
	s.log.Infof("listing %d soft-deleted by %s", listingID, actorHandle)
	return nil
}

func (s *listingService) Get(listingID int64) (*entity.Listing, error) {
	listing, ok := s.store.Listings()[listingID]
	if !ok || listing.Deleted {
		return nil, fmt.Errorf("listing %d: %w", listingID, repository.ErrNotFound)
	}
	return listing, nil
}

// Search returns non-deleted, non-completed listings not owned by the viewer,
// keyword-matched against title and description.
func (s *listingService) Search(viewerHandle, keyword string, mode SortMode) []*entity.Listing {
	kw := strings.ToLower(strings.TrimSpace(keyword))

	var out []*entity.Listing
	for _, l := range s.store.Listings() {
		if l.Deleted || l.Status == entity.ListingCompleted {
			continue
		}
		if viewerHandle != "" && l.OwnerHandle == viewerHandle {
			continue
		}
		if kw != "" &&
			!strings.Contains(strings.ToLower(l.Title), kw) &&
			!strings.Contains(strings.ToLower(l.Description), kw) {
			continue
		}
		out = append(out, l)
	}

	less, ok := comparators[mode]
	if !ok {
		less = func(a, b *entity.Listing) bool { return a.ID < b.ID }
	}
	sort.Slice(out, func(i, j int) bool {
		if less(out[i], out[j]) {
			return true
		}
		if less(out[j], out[i]) {
			return false
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *listingService) ListingsOf(sellerHandle string) []*entity.Listing {
	var out []*entity.Listing
	for _, l := range s.store.Listings() {
		if !l.Deleted && l.OwnerHandle == sellerHandle {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
