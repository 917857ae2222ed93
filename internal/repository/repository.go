package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

// AuctionDB defines the auction and bid storage interface for the marketplace
type AuctionDB interface {
	ListAuctions() ([]model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	CreateAuction(auction model.Auction, categories []model.Category) (model.Auction, error)
	UpdateAuction(auction model.Auction, gallery *[]model.AuctionImage, categories *[]model.Category) (model.Auction, error)
	DeleteAuction(auctionID string) error
	PlaceBid(auctionID, bidderID string, amount float64, now time.Time) (model.Auction, error)
	GetCategoriesBySlugs(slugs []string) ([]model.Category, error)
	ListCategories() ([]model.Category, error)
}

// IntakeDB defines storage for the marketplace intake forms
type IntakeDB interface {
	AuctionExists(auctionID string) (bool, error)
	CreateTransportQuote(quote model.TransportQuoteRequest) (model.TransportQuoteRequest, error)
	ListTransportQuotes() ([]model.TransportQuoteRequest, error)
	CreateFinancingApplication(application model.FinancingApplication) (model.FinancingApplication, error)
	ListFinancingApplications() ([]model.FinancingApplication, error)
	CreateContactRequest(request model.ContactRequest) (model.ContactRequest, error)
	ListContactRequests() ([]model.ContactRequest, error)
	UpsertEmailSubscription(subscription model.EmailSubscription) (model.EmailSubscription, error)
}

// GormRepo implements AuctionDB and IntakeDB on top of a relational database.
type GormRepo struct {
	db *gorm.DB
}

// Open connects with the given dialector and migrates the schema. Duplicate
// key violations are translated to gorm.ErrDuplicatedKey so the bid ledger
// can treat them as ordinary conflicts. Cascades are handled explicitly in
// DeleteAuction, so no database-level foreign keys are created.
func Open(dialector gorm.Dialector) (*GormRepo, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("repository: open database: %w", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Auction{},
		&model.Bid{},
		&model.AuctionImage{},
		&model.Category{},
		&model.EmailSubscription{},
		&model.TransportQuoteRequest{},
		&model.FinancingApplication{},
		&model.ContactRequest{},
	); err != nil {
		return nil, fmt.Errorf("repository: migrate schema: %w", err)
	}
	return &GormRepo{db: db}, nil
}

// NewGormRepo wraps an already-open gorm connection. Intended for tests.
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// DefaultCategories is the catalog seeded on first boot.
var DefaultCategories = []model.Category{
	{Name: "Excavators", Slug: "excavators", Description: "Crawler, wheeled, and mini excavators for utility and heavy civil jobs."},
	{Name: "Dozers", Slug: "dozers", Description: "Finish and heavy dozers with GPS-ready grade control packages."},
	{Name: "Wheel Loaders", Slug: "wheel-loaders", Description: "Tool carriers and high-lift loaders for aggregates and yard work."},
	{Name: "Skid Steers", Slug: "skid-steers", Description: "Vertical and radial lift skid steers plus attachments."},
	{Name: "Agriculture", Slug: "agriculture", Description: "Combines, planters, sprayers, and specialty ag equipment."},
	{Name: "Trucks & Trailers", Slug: "trucks-trailers", Description: "Lowboys, dump trucks, and vocational tractors ready to haul."},
	{Name: "Crushing & Screening", Slug: "crushing-screening", Description: "Jaw, cone, and impact crushers with matching screen plants."},
}

// SeedDefaultCategories inserts any default category not present yet.
func (r *GormRepo) SeedDefaultCategories() error {
	for _, category := range DefaultCategories {
		var existing model.Category
		err := r.db.Where("slug = ?", category.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("repository: check category %s: %w", category.Slug, err)
		}
		category.ID = utils.GenerateID()
		if err := r.db.Create(&category).Error; err != nil {
			return fmt.Errorf("repository: seed category %s: %w", category.Slug, err)
		}
	}
	return nil
}

// CreateUser inserts a user row. Account management lives with the identity
// provider; this backs seeding and tests.
func (r *GormRepo) CreateUser(user model.User) (model.User, error) {
	if user.ID == "" {
		user.ID = utils.GenerateID()
	}
	if err := r.db.Create(&user).Error; err != nil {
		return model.User{}, fmt.Errorf("repository: create user: %w", err)
	}
	return user, nil
}

// EnsureUser inserts the user unless a row with the same ID already exists.
func (r *GormRepo) EnsureUser(user model.User) error {
	var existing model.User
	err := r.db.Where("id = ?", user.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("repository: check user %s: %w", user.ID, err)
	}
	if _, err := r.CreateUser(user); err != nil {
		return err
	}
	return nil
}
