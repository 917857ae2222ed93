package auction

import (
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// AuctionService defines the business logic for the auction engine: listing
// lifecycle, the bid ledger, and the anti-sniping extension. Status is always
// derived from the clock at read time; nothing here persists a status field.
type AuctionService struct {
	repo      repository.AuctionDB
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB) *AuctionService {
	return &AuctionService{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Intended for tests.
func (s *AuctionService) WithClock(clock func() time.Time) *AuctionService {
	s.now = clock
	return s
}

// CreateAuctionParams is the input for a new listing.
type CreateAuctionParams struct {
	Title                   string
	Description             string
	ImageURL                string
	Location                string
	StartingPrice           float64
	StartTime               time.Time
	EndTime                 time.Time
	SnipingWindowMinutes    int
	SnipingExtensionMinutes int
	GalleryURLs             []string
	CategorySlugs           []string
}

// UpdateAuctionParams carries a partial update; nil fields are untouched.
type UpdateAuctionParams struct {
	Title                   *string
	Description             *string
	ImageURL                *string
	Location                *string
	StartTime               *time.Time
	EndTime                 *time.Time
	SnipingWindowMinutes    *int
	SnipingExtensionMinutes *int
	GalleryURLs             *[]string
	CategorySlugs           *[]string
}

// ListAuctions returns all auctions soonest-ending first, together with the
// single clock reading callers must use to derive every status in the batch.
func (s *AuctionService) ListAuctions() ([]model.Auction, time.Time, error) {
	now := s.now()
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, now, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, now, nil
}

// GetAuction returns one auction and the clock reading for its view.
func (s *AuctionService) GetAuction(auctionID string) (model.Auction, time.Time, error) {
	now := s.now()
	if auctionID == "" {
		return model.Auction{}, now, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, now, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, now, nil
}

// CreateAuction validates and stores a new listing. Administrator only.
// The current price starts at the starting price.
func (s *AuctionService) CreateAuction(params CreateAuctionParams, ownerID string, isAdmin bool) (model.Auction, time.Time, error) {
	now := s.now()
	if !isAdmin {
		return model.Auction{}, now, fmt.Errorf("service: create auction: %w", auctionerrors.ErrPermissionDenied)
	}
	if err := validateCreateParams(&params); err != nil {
		return model.Auction{}, now, err
	}

	categories, err := s.resolveCategories(params.CategorySlugs)
	if err != nil {
		return model.Auction{}, now, err
	}

	auction := model.Auction{
		ID:                      utils.GenerateID(),
		Title:                   params.Title,
		Description:             s.sanitizer.Sanitize(params.Description),
		ImageURL:                params.ImageURL,
		Location:                params.Location,
		StartingPrice:           params.StartingPrice,
		CurrentPrice:            params.StartingPrice,
		StartTime:               params.StartTime,
		EndTime:                 params.EndTime,
		SnipingWindowMinutes:    params.SnipingWindowMinutes,
		SnipingExtensionMinutes: params.SnipingExtensionMinutes,
		OwnerID:                 ownerID,
	}
	for position, url := range params.GalleryURLs {
		auction.Images = append(auction.Images, model.AuctionImage{
			ID:       utils.GenerateID(),
			URL:      url,
			Position: position,
		})
	}
	if auction.ImageURL == "" && len(params.GalleryURLs) > 0 {
		auction.ImageURL = params.GalleryURLs[0]
	}

	created, err := s.repo.CreateAuction(auction, categories)
	if err != nil {
		return model.Auction{}, now, fmt.Errorf("service: failed to create auction: %w", err)
	}
	return created, now, nil
}

// UpdateAuction applies a partial update. Administrator only. Fields absent
// from the params are left untouched; gallery and category lists replace the
// stored sets only when present.
func (s *AuctionService) UpdateAuction(auctionID string, params UpdateAuctionParams, isAdmin bool) (model.Auction, time.Time, error) {
	now := s.now()
	if !isAdmin {
		return model.Auction{}, now, fmt.Errorf("service: update auction: %w", auctionerrors.ErrPermissionDenied)
	}
	if auctionID == "" {
		return model.Auction{}, now, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, now, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	if params.Title != nil {
		auction.Title = *params.Title
	}
	if params.Description != nil {
		auction.Description = s.sanitizer.Sanitize(*params.Description)
	}
	if params.ImageURL != nil {
		auction.ImageURL = *params.ImageURL
	}
	if params.Location != nil {
		auction.Location = *params.Location
	}
	if params.StartTime != nil {
		auction.StartTime = *params.StartTime
	}
	if params.EndTime != nil {
		auction.EndTime = *params.EndTime
	}
	if params.SnipingWindowMinutes != nil {
		if err := validateSnipingMinutes(*params.SnipingWindowMinutes); err != nil {
			return model.Auction{}, now, err
		}
		auction.SnipingWindowMinutes = *params.SnipingWindowMinutes
	}
	if params.SnipingExtensionMinutes != nil {
		if err := validateSnipingMinutes(*params.SnipingExtensionMinutes); err != nil {
			return model.Auction{}, now, err
		}
		auction.SnipingExtensionMinutes = *params.SnipingExtensionMinutes
	}
	if !auction.EndTime.After(auction.StartTime) {
		return model.Auction{}, now, fmt.Errorf("service: %w - end time must be after start time", auctionerrors.ErrInvalidInput)
	}

	var gallery *[]model.AuctionImage
	if params.GalleryURLs != nil {
		images := make([]model.AuctionImage, 0, len(*params.GalleryURLs))
		for position, url := range *params.GalleryURLs {
			images = append(images, model.AuctionImage{
				ID:        utils.GenerateID(),
				AuctionID: auction.ID,
				URL:       url,
				Position:  position,
			})
		}
		gallery = &images
		if auction.ImageURL == "" && len(images) > 0 {
			auction.ImageURL = images[0].URL
		}
	}

	var categories *[]model.Category
	if params.CategorySlugs != nil {
		resolved, err := s.resolveCategories(*params.CategorySlugs)
		if err != nil {
			return model.Auction{}, now, err
		}
		categories = &resolved
	}

	updated, err := s.repo.UpdateAuction(auction, gallery, categories)
	if err != nil {
		return model.Auction{}, now, fmt.Errorf("service: failed to update auction %s: %w", auctionID, err)
	}
	return updated, now, nil
}

// DeleteAuction removes a listing and its bids. Administrator only.
func (s *AuctionService) DeleteAuction(auctionID string, isAdmin bool) error {
	if !isAdmin {
		return fmt.Errorf("service: delete auction: %w", auctionerrors.ErrPermissionDenied)
	}
	if auctionID == "" {
		return fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.DeleteAuction(auctionID); err != nil {
		return fmt.Errorf("service: failed to delete auction %s: %w", auctionID, err)
	}
	return nil
}

// PlaceBid validates input, reads the clock once, and hands the bid to the
// ledger. The same instant is used for the window checks, the bid timestamp,
// and the anti-sniping evaluation.
func (s *AuctionService) PlaceBid(auctionID, bidderID string, amount float64) (model.Auction, time.Time, error) {
	now := s.now()
	if auctionID == "" || bidderID == "" {
		return model.Auction{}, now, fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return model.Auction{}, now, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	auction, err := s.repo.PlaceBid(auctionID, bidderID, amount, now)
	if err != nil {
		return model.Auction{}, now, fmt.Errorf("service: failed to place bid on auction %s: %w", auctionID, err)
	}
	return auction, now, nil
}

// resolveCategories maps slugs to categories, erroring on any unknown slug.
func (s *AuctionService) resolveCategories(slugs []string) ([]model.Category, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	found, err := s.repo.GetCategoriesBySlugs(slugs)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve categories: %w", err)
	}
	bySlug := make(map[string]model.Category, len(found))
	for _, category := range found {
		bySlug[category.Slug] = category
	}
	var missing []string
	ordered := make([]model.Category, 0, len(slugs))
	for _, slug := range slugs {
		category, ok := bySlug[slug]
		if !ok {
			missing = append(missing, slug)
			continue
		}
		ordered = append(ordered, category)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("service: %w: %s", auctionerrors.ErrUnknownCategory, strings.Join(missing, ", "))
	}
	return ordered, nil
}

func validateCreateParams(params *CreateAuctionParams) error {
	if strings.TrimSpace(params.Title) == "" {
		return fmt.Errorf("service: %w - title is required", auctionerrors.ErrInvalidInput)
	}
	if params.StartingPrice <= 0 {
		return fmt.Errorf("service: %w - starting price must be positive", auctionerrors.ErrInvalidInput)
	}
	if !params.EndTime.After(params.StartTime) {
		return fmt.Errorf("service: %w - end time must be after start time", auctionerrors.ErrInvalidInput)
	}
	if params.SnipingWindowMinutes == 0 {
		params.SnipingWindowMinutes = model.SnipingMinutesDefault
	}
	if params.SnipingExtensionMinutes == 0 {
		params.SnipingExtensionMinutes = model.SnipingMinutesDefault
	}
	if err := validateSnipingMinutes(params.SnipingWindowMinutes); err != nil {
		return err
	}
	return validateSnipingMinutes(params.SnipingExtensionMinutes)
}

func validateSnipingMinutes(minutes int) error {
	if minutes < model.SnipingMinutesMin || minutes > model.SnipingMinutesMax {
		return fmt.Errorf("service: %w - sniping minutes must be between %d and %d",
			auctionerrors.ErrInvalidInput, model.SnipingMinutesMin, model.SnipingMinutesMax)
	}
	return nil
}
