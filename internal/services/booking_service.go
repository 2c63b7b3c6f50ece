package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/pricing"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type BookingServiceInterface interface {
	Services() pricing.Catalog
	Quote(ctx context.Context, req request_models.QuoteRequest) (*response_models.QuoteResponse, error)
	CreateBooking(ctx context.Context, userID uuid.UUID, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	Checkout(ctx context.Context, userID uuid.UUID, req request_models.CheckoutRequest) (*response_models.CheckoutResponse, error)
	BookItinerary(ctx context.Context, userID uuid.UUID, req request_models.BookItineraryRequest) (*response_models.BookingResponse, error)
	ListBookings(ctx context.Context, userID uuid.UUID, query request_models.ListBookingsQuery) (*response_models.BookingListResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID, req request_models.CancelBookingRequest) (*response_models.BookingResponse, error)
}

type BookingService struct {
	store       repositories.BookingStore
	catalog     pricing.Catalog
	payments    PaymentService
	itineraries ItineraryServiceInterface
	mailer      MailServiceInterface
	logger      *zap.Logger
}

func NewBookingService(
	store repositories.BookingStore,
	catalog pricing.Catalog,
	payments PaymentService,
	itineraries ItineraryServiceInterface,
	mailer MailServiceInterface,
	logger *zap.Logger,
) BookingServiceInterface {
	return &BookingService{
		store:       store,
		catalog:     catalog,
		payments:    payments,
		itineraries: itineraries,
		mailer:      mailer,
		logger:      logger,
	}
}

func (s *BookingService) Services() pricing.Catalog {
	return s.catalog
}

func (s *BookingService) Quote(_ context.Context, req request_models.QuoteRequest) (*response_models.QuoteResponse, error) {
	sel, err := newSelection(req)
	if err != nil {
		return nil, err
	}
	if sel.Len() == 0 {
		return nil, utils.ErrEmptySelection
	}
	quote := pricing.NewQuote(sel, s.catalog)
	if err := quote.Err(); err != nil {
		s.logger.Warn("quote skipped unknown services", zap.Strings("unknown", quote.Unknown))
	}
	return &response_models.QuoteResponse{Quote: quote, Currency: DefaultCurrency}, nil
}

func (s *BookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	bookingType := db_models.BookingType(req.BookingType)
	if !bookingType.Valid() {
		return nil, fmt.Errorf("%w: booking type %q", utils.ErrInvalidInput, req.BookingType)
	}
	if req.Amount == nil || *req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", utils.ErrInvalidInput)
	}
	currency, err := normalizeCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	serviceDate, err := utils.ParseDate(req.ServiceDate)
	if err != nil {
		return nil, err
	}
	tripID, err := parseOptionalUUID(req.TripID)
	if err != nil {
		return nil, err
	}

	details, err := db_models.DecodeDetailsFor(bookingType, req.BookingDetails)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrInvalidInput, err)
	}

	booking, err := s.newBooking(userID, details, *req.Amount, currency)
	if err != nil {
		return nil, err
	}
	booking.TripID = tripID
	booking.ServiceDate = serviceDate

	if err := s.store.Append(ctx, booking); err != nil {
		s.logger.Error("failed to store booking", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toBookingResponse(booking), nil
}

// Checkout charges the quoted total once and records one confirmed booking
// per known service. Unknown ids are reported back in Skipped.
func (s *BookingService) Checkout(ctx context.Context, userID uuid.UUID, req request_models.CheckoutRequest) (*response_models.CheckoutResponse, error) {
	sel, err := newSelection(req.QuoteRequest)
	if err != nil {
		return nil, err
	}
	if sel.Len() == 0 {
		return nil, utils.ErrEmptySelection
	}
	currency, err := normalizeCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	serviceDate, err := utils.ParseDate(req.ServiceDate)
	if err != nil {
		return nil, err
	}
	tripID, err := parseOptionalUUID(req.TripID)
	if err != nil {
		return nil, err
	}
	travellers := req.Travellers
	if travellers == 0 {
		travellers = 1
	}

	quote := pricing.NewQuote(sel, s.catalog)
	if err := quote.Err(); err != nil {
		s.logger.Warn("checkout skipped unknown services",
			zap.String("user_id", userID.String()),
			zap.Strings("unknown", quote.Unknown),
		)
	}
	if len(quote.Lines) == 0 {
		return nil, fmt.Errorf("%w: %w", utils.ErrInvalidInput, quote.Err())
	}

	bookings := make([]*db_models.Booking, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		b, err := s.newBooking(userID, lineDetails(line, travellers, req.ServiceDate), int64(line.Amount), currency)
		if err != nil {
			return nil, err
		}
		b.TripID = tripID
		b.ServiceDate = serviceDate
		bookings = append(bookings, b)
	}

	payment, err := s.payments.Charge(ctx, PaymentRequest{
		Amount:      int64(quote.Total),
		Currency:    currency,
		Method:      paymentMethod(req.PaymentMethod),
		Description: fmt.Sprintf("%d travel services", len(bookings)),
	})
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		confirm(b, payment)
	}

	if err := s.store.AppendAll(ctx, bookings); err != nil {
		s.logger.Error("failed to store checkout bookings",
			zap.String("payment_reference", payment.Reference),
			zap.Error(err),
		)
		return nil, paymentNotRecorded(payment)
	}

	resp := &response_models.CheckoutResponse{
		PaymentReference: payment.Reference,
		Total:            quote.Total,
		Currency:         currency,
		Bookings:         make([]response_models.BookingResponse, 0, len(bookings)),
		Skipped:          quote.Unknown,
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *toBookingResponse(b))
	}
	return resp, nil
}

// BookItinerary books a composed option as a package. The amount is the
// option's total multiplied by the number of travelers.
func (s *BookingService) BookItinerary(ctx context.Context, userID uuid.UUID, req request_models.BookItineraryRequest) (*response_models.BookingResponse, error) {
	if req.Travelers < 1 {
		return nil, fmt.Errorf("%w: travelers must be at least 1", utils.ErrInvalidInput)
	}
	currency, err := normalizeCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	plan, option, err := s.itineraries.GetOption(ctx, req.PlanID, req.TierID)
	if err != nil {
		return nil, err
	}

	days := len(option.Days)
	details := db_models.PackageDetails{
		PlanID:          plan.PlanID,
		TierID:          string(option.TierID),
		TierTitle:       option.Title,
		Destination:     plan.Request.Destination,
		Days:            days,
		Travelers:       req.Travelers,
		StartDate:       utils.FormatDate(start),
		EndDate:         utils.FormatDate(start.AddDate(0, 0, days)),
		PerPersonCost:   option.TotalCost,
		ContactName:     strings.TrimSpace(req.ContactName),
		ContactEmail:    normalizeEmail(req.ContactEmail),
		ContactPhone:    strings.TrimSpace(req.ContactPhone),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	}
	amount := option.TotalCost * int64(req.Travelers)

	booking, err := s.newBooking(userID, details, amount, currency)
	if err != nil {
		return nil, err
	}
	booking.ServiceDate = start

	payment, err := s.payments.Charge(ctx, PaymentRequest{
		Amount:      amount,
		Currency:    currency,
		Method:      paymentMethod(req.PaymentMethod),
		Description: fmt.Sprintf("%s in %s", option.Title, plan.Request.Destination),
	})
	if err != nil {
		return nil, err
	}
	confirm(booking, payment)

	if err := s.store.Append(ctx, booking); err != nil {
		s.logger.Error("failed to store itinerary booking",
			zap.String("plan_id", plan.PlanID),
			zap.String("payment_reference", payment.Reference),
			zap.Error(err),
		)
		return nil, paymentNotRecorded(payment)
	}

	// The booking is already paid and stored; a mail failure must not undo it.
	if err := s.mailer.SendBookingConfirmation(ctx, BookingConfirmation{
		To:          details.ContactEmail,
		Name:        details.ContactName,
		Code:        booking.ConfirmationCode,
		Title:       details.TierTitle,
		Destination: details.Destination,
		StartDate:   details.StartDate,
		EndDate:     details.EndDate,
		Travelers:   details.Travelers,
		Amount:      booking.Amount,
		Currency:    booking.Currency,
		Reference:   booking.PaymentReference,
	}); err != nil {
		s.logger.Warn("failed to send booking confirmation",
			zap.String("code", booking.ConfirmationCode),
			zap.Error(err),
		)
	}
	return toBookingResponse(booking), nil
}

// paymentNotRecorded keeps the reference of a captured charge in the error so
// it can be refunded or reconciled by hand.
func paymentNotRecorded(payment *PaymentResult) error {
	return fmt.Errorf("%w: %w, payment reference %s", utils.ErrDatabaseError, utils.ErrPaymentNotRecorded, payment.Reference)
}

func (s *BookingService) ListBookings(ctx context.Context, userID uuid.UUID, query request_models.ListBookingsQuery) (*response_models.BookingListResponse, error) {
	page, pageSize, err := normalizePage(query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	filter := repositories.BookingFilter{
		Status:   db_models.BookingStatus(query.Status),
		Type:     db_models.BookingType(query.Type),
		Page:     page,
		PageSize: pageSize,
	}

	bookings, total, err := s.store.List(ctx, userID, filter)
	if err != nil {
		s.logger.Error("failed to list bookings", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.BookingListResponse{
		Bookings: make([]response_models.BookingResponse, 0, len(bookings)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range bookings {
		resp.Bookings = append(resp.Bookings, *toBookingResponse(&bookings[i]))
	}
	return resp, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID, req request_models.CancelBookingRequest) (*response_models.BookingResponse, error) {
	booking, err := s.store.Get(ctx, bookingID)
	if err != nil {
		s.logger.Error("failed to load booking", zap.String("booking_id", bookingID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, utils.ErrForbidden
	}
	if !booking.Status.Cancellable() {
		return nil, fmt.Errorf("%w: status is %s", utils.ErrBookingNotActive, booking.Status)
	}

	reason := strings.TrimSpace(req.Reason)
	if err := s.store.UpdateStatus(ctx, bookingID, db_models.BookingCancelled, reason); err != nil {
		if errors.Is(err, utils.ErrBookingNotFound) {
			return nil, err
		}
		s.logger.Error("failed to cancel booking", zap.String("booking_id", bookingID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	cancelledAt := utils.NowUnixSeconds()
	booking.Status = db_models.BookingCancelled
	booking.CancellationReason = reason
	booking.CancelledAt = &cancelledAt

	s.logger.Info("booking cancelled", zap.String("booking_id", bookingID.String()))
	return toBookingResponse(booking), nil
}

func (s *BookingService) newBooking(userID uuid.UUID, details db_models.BookingDetails, amount int64, currency string) (*db_models.Booking, error) {
	raw, err := db_models.EncodeDetails(details)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrInvalidInput, err)
	}
	code, err := utils.GenerateConfirmationCode(utils.ConfirmationCodeLength)
	if err != nil {
		return nil, fmt.Errorf("generate confirmation code: %w", err)
	}
	return &db_models.Booking{
		BaseModel:        db_models.BaseModel{ID: uuid.New()},
		UserID:           userID,
		BookingType:      details.Type(),
		Status:           db_models.BookingPending,
		PaymentStatus:    db_models.PaymentPending,
		Amount:           amount,
		Currency:         currency,
		ConfirmationCode: code,
		Details:          raw,
	}, nil
}

func confirm(b *db_models.Booking, payment *PaymentResult) {
	b.Status = db_models.BookingConfirmed
	b.PaymentStatus = db_models.PaymentPaid
	b.PaymentProvider = payment.Provider
	b.PaymentReference = payment.Reference
}

// lineDetails maps a catalog line to booking details. Cabs, trains and buses
// are all booked as transport.
func lineDetails(line pricing.QuoteLine, travellers int, date string) db_models.BookingDetails {
	switch line.Type {
	case pricing.Flight:
		return db_models.FlightDetails{
			ServiceID:  line.ServiceID,
			Tier:       string(line.Tier),
			TierLabel:  line.TierLabel,
			Travellers: travellers,
			Features:   line.Features,
		}
	case pricing.Hotel:
		return db_models.HotelDetails{
			ServiceID: line.ServiceID,
			Tier:      string(line.Tier),
			TierLabel: line.TierLabel,
			Guests:    travellers,
			CheckIn:   date,
			Features:  line.Features,
		}
	default:
		return db_models.TransportDetails{
			ServiceID:  line.ServiceID,
			Mode:       string(line.Type),
			Tier:       string(line.Tier),
			TierLabel:  line.TierLabel,
			Passengers: travellers,
			Features:   line.Features,
		}
	}
}

func newSelection(req request_models.QuoteRequest) (*pricing.Selection, error) {
	tiers := make(map[string]pricing.PriceTier, len(req.Tiers))
	for id, t := range req.Tiers {
		tiers[id] = pricing.PriceTier(t)
	}
	sel, err := pricing.NewSelection(req.ServiceIDs, tiers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrInvalidInput, err)
	}
	return sel, nil
}

func paymentMethod(m string) PaymentMethod {
	if m == "" {
		return MethodCard
	}
	return PaymentMethod(m)
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrInvalidInput, err)
	}
	return &id, nil
}

func toBookingResponse(b *db_models.Booking) *response_models.BookingResponse {
	resp := &response_models.BookingResponse{
		ID:                 b.ID.String(),
		BookingType:        string(b.BookingType),
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		Amount:             b.Amount,
		Currency:           b.Currency,
		ServiceDate:        utils.FormatDate(b.ServiceDate),
		ConfirmationCode:   b.ConfirmationCode,
		PaymentReference:   b.PaymentReference,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
	}
	if b.TripID != nil {
		resp.TripID = b.TripID.String()
	}
	if len(b.Details) > 0 {
		if details, err := db_models.DecodeDetails(b.Details); err == nil {
			resp.Details = details
		}
	}
	return resp
}
