package response_models

import "globetrotter/internal/pricing"

type BookingResponse struct {
	ID                 string      `json:"id"`
	TripID             string      `json:"trip_id,omitempty"`
	BookingType        string      `json:"booking_type"`
	Status             string      `json:"status"`
	PaymentStatus      string      `json:"payment_status"`
	Amount             int64       `json:"amount"`
	Currency           string      `json:"currency"`
	ServiceDate        string      `json:"service_date"`
	ConfirmationCode   string      `json:"confirmation_code"`
	PaymentReference   string      `json:"payment_reference,omitempty"`
	Details            interface{} `json:"booking_details,omitempty"`
	CancellationReason string      `json:"cancellation_reason,omitempty"`
	CreatedAt          int64       `json:"created_at"`
}

type CheckoutResponse struct {
	PaymentReference string            `json:"payment_reference"`
	Total            pricing.Money     `json:"total"`
	Currency         string            `json:"currency"`
	Bookings         []BookingResponse `json:"bookings"`
	Skipped          []string          `json:"skipped,omitempty"`
}

type QuoteResponse struct {
	pricing.Quote
	Currency string `json:"currency"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}
