package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "auction-marketplace/internal/models"
	auctionhelpers "auction-marketplace/services/auction/helpers"
	"auction-marketplace/services/intake/helpers"
	"auction-marketplace/utils"
)

type IntakeServiceInterface interface {
	RequestTransportQuote(quote model.TransportQuoteRequest) (model.TransportQuoteRequest, error)
	ListTransportQuotes() ([]model.TransportQuoteRequest, error)
	SubmitFinancingApplication(application model.FinancingApplication) (model.FinancingApplication, error)
	ListFinancingApplications() ([]model.FinancingApplication, error)
	SubmitContactRequest(request model.ContactRequest) (model.ContactRequest, error)
	ListContactRequests() ([]model.ContactRequest, error)
	Subscribe(email string) (model.EmailSubscription, error)
}

type IntakeHandler struct {
	service IntakeServiceInterface
}

func NewIntakeHandler(service IntakeServiceInterface) *IntakeHandler {
	return &IntakeHandler{service: service}
}

// requestUserID returns the authenticated user, or nil for anonymous callers.
func requestUserID(c *gin.Context) *string {
	if userID := c.GetString("userID"); userID != "" {
		return &userID
	}
	return nil
}

// CreateTransportQuoteHandler handles POST /services/transport/quotes
func (h *IntakeHandler) CreateTransportQuoteHandler(c *gin.Context) {
	var req helpers.TransportQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		auctionhelpers.HandleBindError(c, "CreateTransportQuoteHandler", err)
		return
	}

	created, err := h.service.RequestTransportQuote(model.TransportQuoteRequest{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Origin:        req.Origin,
		Destination:   req.Destination,
		EquipmentType: req.EquipmentType,
		Weight:        req.Weight,
		Timeline:      req.Timeline,
		Notes:         req.Notes,
		AuctionID:     req.AuctionID,
		UserID:        requestUserID(c),
	})
	if err != nil {
		status, message := auctionhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateTransportQuoteHandler: failed to create quote", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "transport quote request received")
	auctionhelpers.LogSuccess("CreateTransportQuoteHandler", "transport quote request received", map[string]any{
		"quote_id": created.ID,
	})
}

// ListTransportQuotesHandler handles GET /services/transport/quotes
func (h *IntakeHandler) ListTransportQuotesHandler(c *gin.Context) {
	quotes, err := h.service.ListTransportQuotes()
	if err != nil {
		status, message := auctionhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListTransportQuotesHandler: failed to list quotes", map[string]any{"error": err.Error()})
		return
	}
	if quotes == nil {
		quotes = []model.TransportQuoteRequest{}
	}
	utils.JSONResponse(c, http.StatusOK, quotes, "transport quotes retrieved successfully")
}

// CreateFinancingApplicationHandler handles POST /services/financing/applications
func (h *IntakeHandler) CreateFinancingApplicationHandler(c *gin.Context) {
	var req helpers.FinancingApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		auctionhelpers.HandleBindError(c, "CreateFinancingApplicationHandler", err)
		return
	}

	created, err := h.service.SubmitFinancingApplication(model.FinancingApplication{
		BusinessName: req.BusinessName,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		Amount:       req.Amount,
		Timeline:     req.Timeline,
		Notes:        req.Notes,
		AuctionID:    req.AuctionID,
		UserID:       requestUserID(c),
	})
	if err != nil {
		status, message := auctionhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateFinancingApplicationHandler: failed to create application", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "financing application received")
	auctionhelpers.LogSuccess("CreateFinancingApplicationHandler", "financing application received", map[string]any{
		"application_id": created.ID,
	})
}

// ListFinancingApplicationsHandler handles GET /services/financing/applications
func (h *IntakeHandler) ListFinancingApplicationsHandler(c *gin.Context) {
	applications, err := h.service.ListFinancingApplications()
	if err != nil {
		status, message := auctionhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListFinancingApplicationsHandler: failed to list applications", map[string]any{"error": err.Error()})
		return
	}
	if applications == nil {
		applications = []model.FinancingApplication{}
	}
	utils.JSONResponse(c, http.StatusOK, applications, "financing applications retrieved successfully")
}

// CreateContactRequestHandler handles POST /contact
func (h *IntakeHandler) CreateContactRequestHandler(c *gin.Context) {
	var req helpers.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		auctionhelpers.HandleBindError(c, "CreateContactRequestHandler", err)
		return
	}

	created, err := h.service.SubmitContactRequest(model.ContactRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Topic:     req.Topic,
		Message:   req.Message,
	})
	if err != nil {
		status, message := auctionhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateContactRequestHandler: failed to create contact request", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "contact request received")
}

// ListContactRequestsHandler handles GET /contact
func (h *IntakeHandler) ListContactRequestsHandler(c *gin.Context) {
	requests, err := h.service.ListContactRequests()
	if err != nil {
		status, message := auctionhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListContactRequestsHandler: failed to list contact requests", map[string]any{"error": err.Error()})
		return
	}
	if requests == nil {
		requests = []model.ContactRequest{}
	}
	utils.JSONResponse(c, http.StatusOK, requests, "contact requests retrieved successfully")
}

// SubscribeHandler handles POST /subscriptions
func (h *IntakeHandler) SubscribeHandler(c *gin.Context) {
	var req helpers.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		auctionhelpers.HandleBindError(c, "SubscribeHandler", err)
		return
	}

	subscription, err := h.service.Subscribe(req.Email)
	if err != nil {
		status, message := auctionhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SubscribeHandler: failed to subscribe", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, subscription, "subscription recorded")
}
