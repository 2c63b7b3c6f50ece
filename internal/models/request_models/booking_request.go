package request_models

import "encoding/json"

// QuoteRequest carries a service selection. Tiers maps service id to one of
// costEffective, luxury or customization; missing entries default to
// costEffective.
type QuoteRequest struct {
	ServiceIDs []string          `json:"service_ids" binding:"required,min=1,dive,required"`
	Tiers      map[string]string `json:"tiers"`
}

type CheckoutRequest struct {
	QuoteRequest
	ServiceDate string `json:"service_date" binding:"required"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
	Travellers  int    `json:"travellers" binding:"omitempty,min=1,max=50"`
	TripID      string `json:"trip_id" binding:"omitempty,uuid"`

	// PaymentMethod is one of card, upi, netbanking or wallet (default card).
	PaymentMethod string `json:"payment_method" binding:"omitempty,oneof=card upi netbanking wallet"`
}

type CreateBookingRequest struct {
	BookingType    string          `json:"booking_type" binding:"required,oneof=flight hotel activity transport package"`
	Amount         *int64          `json:"amount" binding:"required,gte=0"`
	Currency       string          `json:"currency" binding:"omitempty,len=3"`
	ServiceDate    string          `json:"service_date" binding:"required"`
	TripID         string          `json:"trip_id" binding:"omitempty,uuid"`
	BookingDetails json.RawMessage `json:"booking_details"`
}

type BookItineraryRequest struct {
	PlanID          string `json:"plan_id" binding:"required"`
	TierID          string `json:"tier_id" binding:"required"`
	Travelers       int    `json:"travelers" binding:"required,min=1,max=50"`
	StartDate       string `json:"start_date" binding:"required"`
	Currency        string `json:"currency" binding:"omitempty,len=3"`
	ContactName     string `json:"contact_name" binding:"required,max=100"`
	ContactEmail    string `json:"contact_email" binding:"required,email"`
	ContactPhone    string `json:"contact_phone" binding:"max=30"`
	SpecialRequests string `json:"special_requests" binding:"max=1000"`
	PaymentMethod   string `json:"payment_method" binding:"omitempty,oneof=card upi netbanking wallet"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ListBookingsQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Type     string `form:"type" binding:"omitempty,oneof=flight hotel activity transport package"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
