package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"globetrotter/internal/models/db_models"
	"globetrotter/pkg/utils"
)

const bookingsCollection = "bookings"

// bookingDocument is the Mongo shape of a booking. Ids are stored as strings
// and the details envelope as its JSON text.
type bookingDocument struct {
	ID                 string    `bson:"id"`
	UserID             string    `bson:"user_id"`
	TripID             string    `bson:"trip_id,omitempty"`
	BookingType        string    `bson:"booking_type"`
	Status             string    `bson:"status"`
	PaymentStatus      string    `bson:"payment_status"`
	Amount             int64     `bson:"amount"`
	Currency           string    `bson:"currency"`
	ServiceDate        time.Time `bson:"service_date"`
	ConfirmationCode   string    `bson:"confirmation_code"`
	PaymentProvider    string    `bson:"payment_provider"`
	PaymentReference   string    `bson:"payment_reference"`
	Details            string    `bson:"details"`
	CancellationReason string    `bson:"cancellation_reason,omitempty"`
	CancelledAt        *int64    `bson:"cancelled_at,omitempty"`
	CreatedAt          int64     `bson:"created_at"`
	UpdatedAt          int64     `bson:"updated_at"`
}

func toDocument(b *db_models.Booking) bookingDocument {
	doc := bookingDocument{
		ID:                 b.ID.String(),
		UserID:             b.UserID.String(),
		BookingType:        string(b.BookingType),
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		Amount:             b.Amount,
		Currency:           b.Currency,
		ServiceDate:        b.ServiceDate,
		ConfirmationCode:   b.ConfirmationCode,
		PaymentProvider:    b.PaymentProvider,
		PaymentReference:   b.PaymentReference,
		Details:            string(b.Details),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	if b.TripID != nil {
		doc.TripID = b.TripID.String()
	}
	return doc
}

func (d bookingDocument) toModel() (db_models.Booking, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return db_models.Booking{}, fmt.Errorf("bad booking id %q: %w", d.ID, err)
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return db_models.Booking{}, fmt.Errorf("bad user id %q: %w", d.UserID, err)
	}

	b := db_models.Booking{
		UserID:             userID,
		BookingType:        db_models.BookingType(d.BookingType),
		Status:             db_models.BookingStatus(d.Status),
		PaymentStatus:      db_models.PaymentStatus(d.PaymentStatus),
		Amount:             d.Amount,
		Currency:           d.Currency,
		ServiceDate:        d.ServiceDate,
		ConfirmationCode:   d.ConfirmationCode,
		PaymentProvider:    d.PaymentProvider,
		PaymentReference:   d.PaymentReference,
		Details:            []byte(d.Details),
		CancellationReason: d.CancellationReason,
		CancelledAt:        d.CancelledAt,
	}
	b.ID = id
	b.CreatedAt = d.CreatedAt
	b.UpdatedAt = d.UpdatedAt
	if d.TripID != "" {
		tripID, err := uuid.Parse(d.TripID)
		if err != nil {
			return db_models.Booking{}, fmt.Errorf("bad trip id %q: %w", d.TripID, err)
		}
		b.TripID = &tripID
	}
	return b, nil
}

type mongoBookingStore struct {
	coll *mongo.Collection
}

func NewMongoBookingStore(db *mongo.Database) BookingStore {
	return &mongoBookingStore{coll: db.Collection(bookingsCollection)}
}

// EnsureBookingIndexes creates the indexes List and Get rely on.
func EnsureBookingIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := db.Collection(bookingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "confirmation_code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

func (s *mongoBookingStore) Append(ctx context.Context, booking *db_models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	booking.Touch()
	if _, err := s.coll.InsertOne(ctx, toDocument(booking)); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (s *mongoBookingStore) AppendAll(ctx context.Context, bookings []*db_models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(bookings))
	for _, b := range bookings {
		b.Touch()
		docs = append(docs, toDocument(b))
	}

	// Standalone servers have no multi-document transactions, so a partial
	// insert is undone by deleting whatever did land.
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		ids := make([]string, 0, len(bookings))
		for _, b := range bookings {
			ids = append(ids, b.ID.String())
		}
		if _, delErr := s.coll.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}}); delErr != nil {
			return fmt.Errorf("failed to create bookings: %w (cleanup failed: %v)", err, delErr)
		}
		return fmt.Errorf("failed to create bookings: %w", err)
	}
	return nil
}

func (s *mongoBookingStore) List(ctx context.Context, userID uuid.UUID, filter BookingFilter) ([]db_models.Booking, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q := bson.M{"user_id": userID.String()}
	if filter.Status != "" {
		q["status"] = string(filter.Status)
	}
	if filter.Type != "" {
		q["booking_type"] = string(filter.Type)
	}

	total, err := s.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * filter.PageSize)).SetLimit(int64(filter.PageSize))
	}

	cursor, err := s.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}

	bookings := make([]db_models.Booking, 0, len(docs))
	for _, d := range docs {
		b, err := d.toModel()
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	return bookings, total, nil
}

func (s *mongoBookingStore) Get(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc bookingDocument
	err := s.coll.FindOne(ctx, bson.M{"id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking %s: %w", id, err)
	}
	b, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *mongoBookingStore) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := utils.NowUnixSeconds()
	set := bson.M{"status": string(status), "updated_at": now}
	if status == db_models.BookingCancelled {
		set["cancellation_reason"] = reason
		set["cancelled_at"] = now
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"id": id.String()}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.ErrBookingNotFound
	}
	return nil
}
