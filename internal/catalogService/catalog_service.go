package catalog

import (
	"fmt"

	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
)

// SupportProgram is a partner service offered alongside the marketplace.
type SupportProgram struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ContactPath string `json:"contact_path"`
}

// SupportPrograms is the fixed roster of partner programs.
var SupportPrograms = []SupportProgram{
	{
		Slug:        "prime-haul",
		Name:        "Prime Haul Logistics",
		Description: "Door-to-door equipment transport with bonded carriers.",
		ContactPath: "/services/transport/quotes",
	},
	{
		Slug:        "ironshield-finance",
		Name:        "IronShield Finance",
		Description: "Equipment financing with same-week approval.",
		ContactPath: "/services/financing/applications",
	},
	{
		Slug:        "precision-inspection",
		Name:        "Precision Inspection Group",
		Description: "Third-party condition reports before you bid.",
		ContactPath: "/contact",
	},
}

// CatalogService exposes the browse-side reference data.
type CatalogService struct {
	repo repository.AuctionDB
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.AuctionDB) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListCategories returns all categories ordered by name.
func (s *CatalogService) ListCategories() ([]model.Category, error) {
	categories, err := s.repo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

// ListSupportPrograms returns the partner program roster.
func (s *CatalogService) ListSupportPrograms() []SupportProgram {
	return SupportPrograms
}
