package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

// CreateTransportQuote stores a transport quote request.
func (r *GormRepo) CreateTransportQuote(quote model.TransportQuoteRequest) (model.TransportQuoteRequest, error) {
	if quote.ID == "" {
		quote.ID = utils.GenerateID()
	}
	if err := r.db.Create(&quote).Error; err != nil {
		return model.TransportQuoteRequest{}, fmt.Errorf("repository: create transport quote: %w", err)
	}
	return quote, nil
}

// ListTransportQuotes returns all quote requests, newest first.
func (r *GormRepo) ListTransportQuotes() ([]model.TransportQuoteRequest, error) {
	var quotes []model.TransportQuoteRequest
	if err := r.db.Order("created_at DESC").Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("repository: list transport quotes: %w", err)
	}
	return quotes, nil
}

// CreateFinancingApplication stores a financing application.
func (r *GormRepo) CreateFinancingApplication(application model.FinancingApplication) (model.FinancingApplication, error) {
	if application.ID == "" {
		application.ID = utils.GenerateID()
	}
	if application.Status == "" {
		application.Status = "pending"
	}
	if err := r.db.Create(&application).Error; err != nil {
		return model.FinancingApplication{}, fmt.Errorf("repository: create financing application: %w", err)
	}
	return application, nil
}

// ListFinancingApplications returns all applications, newest first.
func (r *GormRepo) ListFinancingApplications() ([]model.FinancingApplication, error) {
	var applications []model.FinancingApplication
	if err := r.db.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("repository: list financing applications: %w", err)
	}
	return applications, nil
}

// CreateContactRequest stores a contact form submission.
func (r *GormRepo) CreateContactRequest(request model.ContactRequest) (model.ContactRequest, error) {
	if request.ID == "" {
		request.ID = utils.GenerateID()
	}
	if err := r.db.Create(&request).Error; err != nil {
		return model.ContactRequest{}, fmt.Errorf("repository: create contact request: %w", err)
	}
	return request, nil
}

// ListContactRequests returns all contact submissions, newest first.
func (r *GormRepo) ListContactRequests() ([]model.ContactRequest, error) {
	var requests []model.ContactRequest
	if err := r.db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("repository: list contact requests: %w", err)
	}
	return requests, nil
}

// UpsertEmailSubscription stores a subscription, returning the existing row
// when the email is already subscribed.
func (r *GormRepo) UpsertEmailSubscription(subscription model.EmailSubscription) (model.EmailSubscription, error) {
	var existing model.EmailSubscription
	err := r.db.Where("email = ?", subscription.Email).First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.EmailSubscription{}, fmt.Errorf("repository: check subscription: %w", err)
	}
	if subscription.ID == "" {
		subscription.ID = utils.GenerateID()
	}
	if err := r.db.Create(&subscription).Error; err != nil {
		// Concurrent signup with the same address: fall back to the winner's row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := r.db.Where("email = ?", subscription.Email).First(&existing).Error; err == nil {
				return existing, nil
			}
		}
		return model.EmailSubscription{}, fmt.Errorf("repository: create subscription: %w", err)
	}
	return subscription, nil
}
