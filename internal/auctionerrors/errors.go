package auctionerrors

import "errors"

// Lookup errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUserNotFound    = errors.New("user not found")
)

// Bidding errors
var (
	ErrAuctionNotStarted = errors.New("auction has not started")
	ErrAuctionEnded      = errors.New("auction has ended")
	// ErrBidTooLow also covers the duplicate-amount conflict reported by the
	// storage layer, so callers retry both cases the same way.
	ErrBidTooLow = errors.New("bid must exceed current price")
)

// Request errors
var (
	ErrPermissionDenied = errors.New("administrator privileges required")
	ErrInvalidInput     = errors.New("invalid input")
)
