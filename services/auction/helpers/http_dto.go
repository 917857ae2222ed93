package helpers

import (
	"time"

	"github.com/samber/lo"

	model "auction-marketplace/internal/models"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title                   string    `json:"title" binding:"required"`
	Description             string    `json:"description"`
	ImageURL                string    `json:"image_url"`
	Location                string    `json:"location"`
	StartingPrice           float64   `json:"starting_price" binding:"required,gt=0"`
	StartTime               time.Time `json:"start_time" binding:"required"`
	EndTime                 time.Time `json:"end_time" binding:"required"`
	SnipingWindowMinutes    int       `json:"sniping_window_minutes"`
	SnipingExtensionMinutes int       `json:"sniping_extension_minutes"`
	GalleryURLs             []string  `json:"gallery_urls"`
	CategorySlugs           []string  `json:"category_slugs"`
}

type UpdateAuctionRequest struct {
	Title                   *string    `json:"title"`
	Description             *string    `json:"description"`
	ImageURL                *string    `json:"image_url"`
	Location                *string    `json:"location"`
	StartTime               *time.Time `json:"start_time"`
	EndTime                 *time.Time `json:"end_time"`
	SnipingWindowMinutes    *int       `json:"sniping_window_minutes"`
	SnipingExtensionMinutes *int       `json:"sniping_extension_minutes"`
	GalleryURLs             *[]string  `json:"gallery_urls"`
	CategorySlugs           *[]string  `json:"category_slugs"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type UserSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type BidResponse struct {
	ID        string      `json:"id"`
	Amount    float64     `json:"amount"`
	Bidder    UserSummary `json:"bidder"`
	CreatedAt string      `json:"created_at"`
}

type CategoryResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type AuctionResponse struct {
	ID                      string             `json:"id"`
	Title                   string             `json:"title"`
	Description             string             `json:"description"`
	ImageURL                string             `json:"image_url"`
	GalleryURLs             []string           `json:"gallery_urls"`
	Location                string             `json:"location"`
	StartingPrice           float64            `json:"starting_price"`
	CurrentPrice            float64            `json:"current_price"`
	StartTime               string             `json:"start_time"`
	EndTime                 string             `json:"end_time"`
	Status                  string             `json:"status"`
	TimeRemainingSeconds    int64              `json:"time_remaining_seconds"`
	SnipingWindowMinutes    int                `json:"sniping_window_minutes"`
	SnipingExtensionMinutes int                `json:"sniping_extension_minutes"`
	Owner                   *UserSummary       `json:"owner,omitempty"`
	Bids                    []BidResponse      `json:"bids"`
	BidCount                int                `json:"bid_count"`
	Categories              []CategoryResponse `json:"categories"`
}

// ToAuctionResponse renders an auction against a single clock reading so the
// status and the remaining seconds can never disagree.
func ToAuctionResponse(auction model.Auction, now time.Time) AuctionResponse {
	status, remaining := auction.StatusAt(now)

	resp := AuctionResponse{
		ID:            auction.ID,
		Title:         auction.Title,
		Description:   auction.Description,
		ImageURL:      auction.ImageURL,
		Location:      auction.Location,
		StartingPrice: auction.StartingPrice,
		CurrentPrice:  auction.CurrentPrice,
		StartTime:     auction.StartTime.UTC().Format(time.RFC3339),
		EndTime:       auction.EndTime.UTC().Format(time.RFC3339),
		Status:        string(status),
		TimeRemainingSeconds:    remaining,
		SnipingWindowMinutes:    auction.SnipingWindowMinutes,
		SnipingExtensionMinutes: auction.SnipingExtensionMinutes,
		GalleryURLs: lo.Map(auction.Images, func(image model.AuctionImage, _ int) string {
			return image.URL
		}),
		Bids: lo.Map(auction.Bids, func(bid model.Bid, _ int) BidResponse {
			return BidResponse{
				ID:        bid.ID,
				Amount:    bid.Amount,
				Bidder:    UserSummary{ID: bid.Bidder.ID, DisplayName: bid.Bidder.DisplayName},
				CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
			}
		}),
		BidCount: len(auction.Bids),
		Categories: lo.Map(auction.Categories, func(category model.Category, _ int) CategoryResponse {
			return CategoryResponse{Slug: category.Slug, Name: category.Name}
		}),
	}
	if auction.Owner.ID != "" {
		resp.Owner = &UserSummary{ID: auction.Owner.ID, DisplayName: auction.Owner.DisplayName}
	}
	return resp
}

// ToAuctionResponses renders a batch with one shared clock reading.
func ToAuctionResponses(auctions []model.Auction, now time.Time) []AuctionResponse {
	return lo.Map(auctions, func(auction model.Auction, _ int) AuctionResponse {
		return ToAuctionResponse(auction, now)
	})
}
