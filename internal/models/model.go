package models

import "time"

// AuctionStatus is derived from the clock on every read; it is never stored.
type AuctionStatus string

const (
	StatusUpcoming  AuctionStatus = "upcoming"
	StatusActive    AuctionStatus = "active"
	StatusCompleted AuctionStatus = "completed"
)

// Sniping parameter bounds in minutes, enforced when auctions are created.
const (
	SnipingMinutesMin     = 1
	SnipingMinutesMax     = 30
	SnipingMinutesDefault = 2
)

// User represents a marketplace participant. Registration and login are
// handled by the external identity provider; rows here back the owner and
// bidder summaries shown in auction views.
type User struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName string    `gorm:"type:varchar(100);not null" json:"display_name"`
	IsAdmin     bool      `gorm:"not null;default:false" json:"is_admin"`
	Bio         string    `gorm:"type:text" json:"bio"`
	Location    string    `gorm:"type:varchar(120)" json:"location"`
	Phone       string    `gorm:"type:varchar(40)" json:"phone"`
	AvatarURL   string    `gorm:"type:text" json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Auction represents an equipment listing with its bidding window and
// anti-sniping parameters.
type Auction struct {
	ID                      string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title                   string    `gorm:"type:varchar(255);not null" json:"title"`
	Description             string    `gorm:"type:text;not null" json:"description"`
	ImageURL                string    `gorm:"type:text" json:"image_url"`
	Location                string    `gorm:"type:varchar(255)" json:"location"`
	StartingPrice           float64   `gorm:"not null" json:"starting_price"`
	CurrentPrice            float64   `gorm:"not null" json:"current_price"`
	StartTime               time.Time `gorm:"not null" json:"start_time"`
	EndTime                 time.Time `gorm:"not null" json:"end_time"`
	SnipingWindowMinutes    int       `gorm:"not null;default:2" json:"sniping_window_minutes"`
	SnipingExtensionMinutes int       `gorm:"not null;default:2" json:"sniping_extension_minutes"`
	OwnerID                 string    `gorm:"type:varchar(36);not null" json:"owner_id"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`

	Owner      User           `gorm:"foreignKey:OwnerID" json:"-"`
	Bids       []Bid          `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE" json:"-"`
	Images     []AuctionImage `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE" json:"-"`
	Categories []Category     `gorm:"many2many:auction_category_links" json:"-"`
}

// StatusAt derives the auction status and the whole seconds remaining until
// the next transition. Upcoming counts down to start_time, active counts
// down to end_time, completed is always zero.
func (a *Auction) StatusAt(now time.Time) (AuctionStatus, int64) {
	if now.Before(a.StartTime) {
		return StatusUpcoming, int64(a.StartTime.Sub(now).Seconds())
	}
	if !now.Before(a.EndTime) {
		return StatusCompleted, 0
	}
	remaining := int64(a.EndTime.Sub(now).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	return StatusActive, remaining
}

// ExtendForAntiSniping pushes end_time to now + extension when a bid at
// `now` lands inside the trailing sniping window. The new end time is
// anchored to now, not added to the old end time. Outside the window the
// end time is untouched.
func (a *Auction) ExtendForAntiSniping(now time.Time) {
	window := time.Duration(a.SnipingWindowMinutes) * time.Minute
	if a.EndTime.Sub(now) <= window {
		a.EndTime = now.Add(time.Duration(a.SnipingExtensionMinutes) * time.Minute)
	}
}

// Bid represents a single accepted bid. Rows are immutable; the composite
// unique index on (auction_id, amount) is the storage-level backstop against
// two concurrent bids of equal amount on one auction.
type Bid struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Amount    float64   `gorm:"not null;uniqueIndex:uq_bid_auction_amount" json:"amount"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	AuctionID string    `gorm:"type:varchar(36);not null;uniqueIndex:uq_bid_auction_amount" json:"auction_id"`
	BidderID  string    `gorm:"type:varchar(36);not null" json:"bidder_id"`

	Bidder User `gorm:"foreignKey:BidderID" json:"-"`
}

// AuctionImage is one gallery entry for an auction, ordered by position.
type AuctionImage struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	AuctionID string `gorm:"type:varchar(36);not null" json:"auction_id"`
	URL       string `gorm:"type:text;not null" json:"url"`
	Position  int    `gorm:"not null;default:0" json:"position"`
}

// Category is a catalog entry auctions can be linked to.
type Category struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}

// EmailSubscription holds a newsletter signup.
type EmailSubscription struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TransportQuoteRequest is an intake form for equipment transport quotes,
// optionally tied to an auction and a signed-in user.
type TransportQuoteRequest struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone         string    `gorm:"type:varchar(40)" json:"phone"`
	Origin        string    `gorm:"type:varchar(255);not null" json:"origin"`
	Destination   string    `gorm:"type:varchar(255);not null" json:"destination"`
	EquipmentType string    `gorm:"type:varchar(255)" json:"equipment_type"`
	Weight        string    `gorm:"type:varchar(255)" json:"weight"`
	Timeline      string    `gorm:"type:varchar(255)" json:"timeline"`
	Notes         string    `gorm:"type:text" json:"notes"`
	AuctionID     *string   `gorm:"type:varchar(36)" json:"auction_id"`
	UserID        *string   `gorm:"type:varchar(36)" json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// FinancingApplication is an intake form for equipment financing.
type FinancingApplication struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	BusinessName string    `gorm:"type:varchar(255);not null" json:"business_name"`
	ContactName  string    `gorm:"type:varchar(255);not null" json:"contact_name"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string    `gorm:"type:varchar(40);not null" json:"phone"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Timeline     string    `gorm:"type:varchar(255)" json:"timeline"`
	Notes        string    `gorm:"type:text" json:"notes"`
	Status       string    `gorm:"type:varchar(40);not null;default:pending" json:"status"`
	AuctionID    *string   `gorm:"type:varchar(36)" json:"auction_id"`
	UserID       *string   `gorm:"type:varchar(36)" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ContactRequest is a general contact form submission.
type ContactRequest struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(40)" json:"phone"`
	Company   string    `gorm:"type:varchar(255)" json:"company"`
	Topic     string    `gorm:"type:varchar(255)" json:"topic"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
