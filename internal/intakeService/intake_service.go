package intake

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// IntakeService handles the lead-capture side of the marketplace: transport
// quote requests, financing applications, contact messages, and the email
// subscription list.
type IntakeService struct {
	repo      repository.IntakeDB
	sanitizer *bluemonday.Policy
}

// NewIntakeService creates a new IntakeService instance
func NewIntakeService(repo repository.IntakeDB) *IntakeService {
	return &IntakeService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// RequestTransportQuote stores a transport quote request. An auction
// reference, when present, must point at an existing listing.
func (s *IntakeService) RequestTransportQuote(quote model.TransportQuoteRequest) (model.TransportQuoteRequest, error) {
	if err := requireFields(map[string]string{
		"name":        quote.Name,
		"email":       quote.Email,
		"origin":      quote.Origin,
		"destination": quote.Destination,
	}); err != nil {
		return model.TransportQuoteRequest{}, err
	}
	if err := s.checkAuctionRef(quote.AuctionID); err != nil {
		return model.TransportQuoteRequest{}, err
	}

	quote.ID = utils.GenerateID()
	quote.Notes = s.sanitizer.Sanitize(quote.Notes)

	created, err := s.repo.CreateTransportQuote(quote)
	if err != nil {
		return model.TransportQuoteRequest{}, fmt.Errorf("service: failed to create transport quote: %w", err)
	}
	return created, nil
}

// ListTransportQuotes returns all quote requests, newest first.
func (s *IntakeService) ListTransportQuotes() ([]model.TransportQuoteRequest, error) {
	quotes, err := s.repo.ListTransportQuotes()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list transport quotes: %w", err)
	}
	return quotes, nil
}

// SubmitFinancingApplication stores a financing application in pending state.
func (s *IntakeService) SubmitFinancingApplication(application model.FinancingApplication) (model.FinancingApplication, error) {
	if err := requireFields(map[string]string{
		"business_name": application.BusinessName,
		"contact_name":  application.ContactName,
		"email":         application.Email,
		"phone":         application.Phone,
	}); err != nil {
		return model.FinancingApplication{}, err
	}
	if application.Amount <= 0 {
		return model.FinancingApplication{}, fmt.Errorf("service: %w - amount must be positive", auctionerrors.ErrInvalidInput)
	}
	if err := s.checkAuctionRef(application.AuctionID); err != nil {
		return model.FinancingApplication{}, err
	}

	application.ID = utils.GenerateID()
	application.Status = "pending"
	application.Notes = s.sanitizer.Sanitize(application.Notes)

	created, err := s.repo.CreateFinancingApplication(application)
	if err != nil {
		return model.FinancingApplication{}, fmt.Errorf("service: failed to create financing application: %w", err)
	}
	return created, nil
}

// ListFinancingApplications returns all applications, newest first.
func (s *IntakeService) ListFinancingApplications() ([]model.FinancingApplication, error) {
	applications, err := s.repo.ListFinancingApplications()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list financing applications: %w", err)
	}
	return applications, nil
}

// SubmitContactRequest stores a contact message.
func (s *IntakeService) SubmitContactRequest(request model.ContactRequest) (model.ContactRequest, error) {
	if err := requireFields(map[string]string{
		"first_name": request.FirstName,
		"last_name":  request.LastName,
		"email":      request.Email,
		"message":    request.Message,
	}); err != nil {
		return model.ContactRequest{}, err
	}

	request.ID = utils.GenerateID()
	request.Message = s.sanitizer.Sanitize(request.Message)

	created, err := s.repo.CreateContactRequest(request)
	if err != nil {
		return model.ContactRequest{}, fmt.Errorf("service: failed to create contact request: %w", err)
	}
	return created, nil
}

// ListContactRequests returns all contact messages, newest first.
func (s *IntakeService) ListContactRequests() ([]model.ContactRequest, error) {
	requests, err := s.repo.ListContactRequests()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list contact requests: %w", err)
	}
	return requests, nil
}

// Subscribe adds an email to the subscription list. Repeat subscriptions with
// the same address return the existing record.
func (s *IntakeService) Subscribe(email string) (model.EmailSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return model.EmailSubscription{}, fmt.Errorf("service: %w - invalid email address", auctionerrors.ErrInvalidInput)
	}

	subscription, err := s.repo.UpsertEmailSubscription(model.EmailSubscription{
		ID:    utils.GenerateID(),
		Email: email,
	})
	if err != nil {
		return model.EmailSubscription{}, fmt.Errorf("service: failed to subscribe %s: %w", email, err)
	}
	return subscription, nil
}

func (s *IntakeService) checkAuctionRef(auctionID *string) error {
	if auctionID == nil || *auctionID == "" {
		return nil
	}
	exists, err := s.repo.AuctionExists(*auctionID)
	if err != nil {
		return fmt.Errorf("service: failed to check auction %s: %w", *auctionID, err)
	}
	if !exists {
		return fmt.Errorf("service: auction %s: %w", *auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("service: %w - %s is required", auctionerrors.ErrInvalidInput, name)
		}
	}
	return nil
}
