package db_models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownBookingDetails = errors.New("unknown booking details type")

// BookingDetails is the typed payload of a booking. Each booking type has
// exactly one concrete details type.
type BookingDetails interface {
	Type() BookingType
}

type FlightDetails struct {
	ServiceID  string   `json:"service_id"`
	Tier       string   `json:"tier"`
	TierLabel  string   `json:"tier_label"`
	Travellers int      `json:"travellers"`
	From       string   `json:"from,omitempty"`
	To         string   `json:"to,omitempty"`
	Features   []string `json:"features,omitempty"`
}

type HotelDetails struct {
	ServiceID string   `json:"service_id"`
	Tier      string   `json:"tier"`
	TierLabel string   `json:"tier_label"`
	Guests    int      `json:"guests"`
	CheckIn   string   `json:"check_in,omitempty"`
	CheckOut  string   `json:"check_out,omitempty"`
	Features  []string `json:"features,omitempty"`
}

// TransportDetails covers cab, train and bus services.
type TransportDetails struct {
	ServiceID  string   `json:"service_id"`
	Mode       string   `json:"mode"`
	Tier       string   `json:"tier"`
	TierLabel  string   `json:"tier_label"`
	Passengers int      `json:"passengers"`
	Features   []string `json:"features,omitempty"`
}

type ActivityDetails struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Slot         string `json:"slot,omitempty"`
	Participants int    `json:"participants"`
}

// PackageDetails records a whole composed itinerary booked as one unit.
type PackageDetails struct {
	PlanID          string `json:"plan_id"`
	TierID          string `json:"tier_id"`
	TierTitle       string `json:"tier_title"`
	Destination     string `json:"destination"`
	Days            int    `json:"days"`
	Travelers       int    `json:"travelers"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	PerPersonCost   int64  `json:"per_person_cost"`
	ContactName     string `json:"contact_name"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

func (FlightDetails) Type() BookingType    { return BookingFlight }
func (HotelDetails) Type() BookingType     { return BookingHotel }
func (TransportDetails) Type() BookingType { return BookingTransport }
func (ActivityDetails) Type() BookingType  { return BookingActivity }
func (PackageDetails) Type() BookingType   { return BookingPackage }

type detailsEnvelope struct {
	Type BookingType     `json:"type"`
	Data json.RawMessage `json:"data"`
}

// EncodeDetails wraps details as {"type": ..., "data": {...}}.
func EncodeDetails(d BookingDetails) ([]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil", ErrUnknownBookingDetails)
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s details: %w", d.Type(), err)
	}
	return json.Marshal(detailsEnvelope{Type: d.Type(), Data: data})
}

// DecodeDetails reads an envelope produced by EncodeDetails.
func DecodeDetails(raw []byte) (BookingDetails, error) {
	var env detailsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode booking details: %w", err)
	}
	return DecodeDetailsFor(env.Type, env.Data)
}

// DecodeDetailsFor decodes a bare details object for a known booking type.
// An empty payload yields the zero value of that type's details.
func DecodeDetailsFor(t BookingType, data []byte) (BookingDetails, error) {
	var d BookingDetails
	switch t {
	case BookingFlight:
		d = &FlightDetails{}
	case BookingHotel:
		d = &HotelDetails{}
	case BookingTransport:
		d = &TransportDetails{}
	case BookingActivity:
		d = &ActivityDetails{}
	case BookingPackage:
		d = &PackageDetails{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBookingDetails, t)
	}

	if len(data) > 0 && string(data) != "null" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(d); err != nil {
			return nil, fmt.Errorf("invalid %s details: %w", t, err)
		}
	}
	return deref(d), nil
}

// deref returns the details by value so callers can type-switch on the
// plain struct types.
func deref(d BookingDetails) BookingDetails {
	switch v := d.(type) {
	case *FlightDetails:
		return *v
	case *HotelDetails:
		return *v
	case *TransportDetails:
		return *v
	case *ActivityDetails:
		return *v
	case *PackageDetails:
		return *v
	}
	return d
}
