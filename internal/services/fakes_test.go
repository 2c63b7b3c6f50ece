package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/repositories"
	mem "globetrotter/pkg/memcache"
)

func newTestItineraryService() ItineraryServiceInterface {
	cache := repositories.NewMemoryPlanCache(mem.NewTTLStore[repositories.CachedPlan](), time.Hour)
	return NewItineraryService(cache, zap.NewNop())
}

func budget(v float64) *float64 { return &v }

// composeGoa caches the five day, 25000 Goa plan and returns its id.
func composeGoa(svc ItineraryServiceInterface) (string, error) {
	plan, err := svc.Compose(context.Background(), request_models.ComposeItineraryRequest{
		Destination: " Goa ",
		Days:        5,
		TotalBudget: budget(25000),
		Interests:   "beaches, nightlife",
	})
	if err != nil {
		return "", err
	}
	return plan.PlanID, nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (r *fakeAccountRepo) Insert(_ context.Context, a *db_models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.Touch()
	r.accounts[a.Email] = a
	return nil
}

func (r *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accounts[email], nil
}

type fakeTripRepo struct {
	mu    sync.Mutex
	trips []db_models.Trip
}

func (r *fakeTripRepo) Insert(_ context.Context, trip *db_models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	trip.Touch()
	r.trips = append(r.trips, *trip)
	return nil
}

func (r *fakeTripRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.trips {
		if r.trips[i].ID == id {
			t := r.trips[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (r *fakeTripRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, page, pageSize int) ([]db_models.Trip, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Trip
	for _, t := range r.trips {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, int64(len(out)), nil
}

// failingStore reads through to the embedded store and refuses every write.
type failingStore struct {
	repositories.BookingStore
}

var errStoreDown = errors.New("store down")

func (failingStore) Append(context.Context, *db_models.Booking) error { return errStoreDown }

func (failingStore) AppendAll(context.Context, []*db_models.Booking) error { return errStoreDown }

var errDeclined = errors.New("card declined")

type decliningPayments struct{ calls int }

func (p *decliningPayments) Charge(context.Context, PaymentRequest) (*PaymentResult, error) {
	p.calls++
	return nil, errDeclined
}

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) CompleteJSON(context.Context, string, string) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Provider() string { return "fake" }
func (f *fakeLLM) Close() error     { return nil }

type recordingMailer struct {
	sent []BookingConfirmation
	err  error
}

func (m *recordingMailer) SendBookingConfirmation(_ context.Context, msg BookingConfirmation) error {
	m.sent = append(m.sent, msg)
	return m.err
}

type fakeDestinationRepo struct {
	mu           sync.Mutex
	destinations []db_models.Destination
	lastFilter   repositories.DestinationFilter
}

func (r *fakeDestinationRepo) add(d db_models.Destination) db_models.Destination {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.Touch()
	if d.Slug == "" {
		d.Slug = db_models.Slugify(d.Name)
	}
	r.destinations = append(r.destinations, d)
	return d
}

func (r *fakeDestinationRepo) InsertIfMissing(_ context.Context, d *db_models.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.destinations {
		if existing.Slug == d.Slug {
			return nil
		}
	}
	d.Touch()
	r.destinations = append(r.destinations, *d)
	return nil
}

func (r *fakeDestinationRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.destinations {
		if r.destinations[i].ID == id && r.destinations[i].IsActive {
			d := r.destinations[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeDestinationRepo) List(_ context.Context, filter repositories.DestinationFilter) ([]db_models.Destination, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = filter
	var out []db_models.Destination
	for _, d := range r.destinations {
		if d.IsActive {
			out = append(out, d)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeDestinationRepo) Featured(_ context.Context, limit int) ([]db_models.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Destination
	for _, d := range r.destinations {
		if d.IsActive && d.IsFeatured && len(out) < limit {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDestinationRepo) WithinBox(_ context.Context, box repositories.BoundingBox) ([]db_models.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Destination
	for _, d := range r.destinations {
		if d.IsActive && d.Latitude >= box.MinLat && d.Latitude <= box.MaxLat &&
			d.Longitude >= box.MinLng && d.Longitude <= box.MaxLng {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDestinationRepo) UpdateRating(_ context.Context, id uuid.UUID, avg float64, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.destinations {
		if r.destinations[i].ID == id {
			r.destinations[i].AvgRating = avg
			r.destinations[i].ReviewCount = count
		}
	}
	return nil
}

func (r *fakeDestinationRepo) get(id uuid.UUID) db_models.Destination {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.destinations {
		if d.ID == id {
			return d
		}
	}
	return db_models.Destination{}
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []db_models.Review
}

func (r *fakeReviewRepo) Insert(_ context.Context, review *db_models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review.Touch()
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *db_models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID == review.ID {
			review.Touch()
			r.reviews[i] = *review
		}
	}
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeReviewRepo) find(match func(db_models.Review) bool) *db_models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if match(rv) {
			return &rv
		}
	}
	return nil
}

func (r *fakeReviewRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Review, error) {
	return r.find(func(rv db_models.Review) bool { return rv.ID == id }), nil
}

func (r *fakeReviewRepo) FindByUserAndDestination(_ context.Context, userID, destinationID uuid.UUID) (*db_models.Review, error) {
	return r.find(func(rv db_models.Review) bool {
		return rv.UserID == userID && rv.DestinationID == destinationID
	}), nil
}

func (r *fakeReviewRepo) ListByDestination(_ context.Context, destinationID uuid.UUID, order repositories.ReviewSort, page, pageSize int) ([]db_models.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Review
	for _, rv := range r.reviews {
		if rv.DestinationID == destinationID && rv.IsApproved {
			out = append(out, rv)
		}
	}
	switch order {
	case repositories.ReviewsHelpful:
		sort.SliceStable(out, func(i, j int) bool { return out[i].HelpfulVotes > out[j].HelpfulVotes })
	case repositories.ReviewsRatingHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case repositories.ReviewsRatingLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) ListByUser(_ context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Review
	for _, rv := range r.reviews {
		if rv.UserID == userID {
			out = append(out, rv)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) IncrementHelpful(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews[i].HelpfulVotes++
		}
	}
	return nil
}

func (r *fakeReviewRepo) RatingStats(_ context.Context, destinationID uuid.UUID) (float64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, n int64
	for _, rv := range r.reviews {
		if rv.DestinationID == destinationID && rv.IsApproved {
			sum += int64(rv.Rating)
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(n), n, nil
}
