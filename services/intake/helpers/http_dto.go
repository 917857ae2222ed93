package helpers

// Request DTOs for the lead-capture endpoints.
type TransportQuoteRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	Origin        string  `json:"origin" binding:"required"`
	Destination   string  `json:"destination" binding:"required"`
	EquipmentType string  `json:"equipment_type"`
	Weight        string  `json:"weight"`
	Timeline      string  `json:"timeline"`
	Notes         string  `json:"notes"`
	AuctionID     *string `json:"auction_id"`
}

type FinancingApplicationRequest struct {
	BusinessName string  `json:"business_name" binding:"required"`
	ContactName  string  `json:"contact_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Timeline     string  `json:"timeline"`
	Notes        string  `json:"notes"`
	AuctionID    *string `json:"auction_id"`
}

type ContactRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Topic     string `json:"topic"`
	Message   string `json:"message" binding:"required"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
