package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"globetrotter/internal/composer"
	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const (
	defaultDestinationPageSize = 20
	featuredLimit              = 8

	defaultNearbyRadiusKm = 100
	maxNearbyRadiusKm     = 1000
	defaultNearbyLimit    = 20
	maxNearbyLimit        = 50

	earthRadiusKm = 6371
	kmPerDegree   = 111.32
)

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context, query request_models.DestinationQuery) (*response_models.DestinationListResponse, error)
	FeaturedDestinations(ctx context.Context) ([]response_models.DestinationResponse, error)
	GetDestination(ctx context.Context, id uuid.UUID) (*response_models.DestinationResponse, error)
	NearbyDestinations(ctx context.Context, query request_models.NearbyQuery) ([]response_models.DestinationResponse, error)
	SeedCatalog(ctx context.Context) error
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	logger          *zap.Logger
}

func NewDestinationService(destinationRepo repositories.DestinationRepository, logger *zap.Logger) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		logger:          logger,
	}
}

func (s *DestinationService) ListDestinations(ctx context.Context, query request_models.DestinationQuery) (*response_models.DestinationListResponse, error) {
	pageSize := query.PageSize
	if pageSize == 0 {
		pageSize = defaultDestinationPageSize
	}
	page, pageSize, err := normalizePage(query.Page, pageSize)
	if err != nil {
		return nil, err
	}
	filter, err := destinationFilter(query)
	if err != nil {
		return nil, err
	}
	filter.Page, filter.PageSize = page, pageSize

	destinations, total, err := s.destinationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list destinations", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.DestinationListResponse{
		Destinations: make([]response_models.DestinationResponse, 0, len(destinations)),
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}
	for i := range destinations {
		resp.Destinations = append(resp.Destinations, *toDestinationResponse(&destinations[i], false))
	}
	return resp, nil
}

func destinationFilter(query request_models.DestinationQuery) (repositories.DestinationFilter, error) {
	filter := repositories.DestinationFilter{
		Search:  strings.TrimSpace(query.Search),
		Country: strings.TrimSpace(query.Country),
		SortBy:  repositories.SortByRating,
	}

	if c := strings.TrimSpace(query.Continent); c != "" {
		filter.Continent = db_models.Continent(c)
		if !filter.Continent.Valid() {
			return filter, fmt.Errorf("%w: unknown continent %q", utils.ErrInvalidInput, c)
		}
	}
	if query.MinRating < 0 || query.MinRating > 5 {
		return filter, fmt.Errorf("%w: min_rating must be between 0 and 5", utils.ErrInvalidInput)
	}
	filter.MinRating = query.MinRating
	if query.MaxPrice < 0 {
		return filter, fmt.Errorf("%w: max_price must not be negative", utils.ErrInvalidInput)
	}
	filter.MaxPrice = query.MaxPrice

	for _, raw := range strings.Split(query.Categories, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		c, ok := db_models.CanonicalCategory(raw)
		if !ok {
			return filter, fmt.Errorf("%w: unknown category %q", utils.ErrInvalidInput, strings.TrimSpace(raw))
		}
		filter.Categories = append(filter.Categories, c)
	}

	if by := strings.ToLower(strings.TrimSpace(query.SortBy)); by != "" {
		filter.SortBy = repositories.DestinationSort(by)
		if !filter.SortBy.Valid() {
			return filter, fmt.Errorf("%w: sort_by must be name, rating, price or popularity", utils.ErrInvalidInput)
		}
	}
	switch strings.ToLower(strings.TrimSpace(query.SortOrder)) {
	case "", "desc":
	case "asc":
		filter.Ascending = true
	default:
		return filter, fmt.Errorf("%w: sort_order must be asc or desc", utils.ErrInvalidInput)
	}
	return filter, nil
}

func (s *DestinationService) FeaturedDestinations(ctx context.Context) ([]response_models.DestinationResponse, error) {
	destinations, err := s.destinationRepo.Featured(ctx, featuredLimit)
	if err != nil {
		s.logger.Error("failed to list featured destinations", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for i := range destinations {
		out = append(out, *toDestinationResponse(&destinations[i], false))
	}
	return out, nil
}

func (s *DestinationService) GetDestination(ctx context.Context, id uuid.UUID) (*response_models.DestinationResponse, error) {
	d, err := s.destinationRepo.FindById(ctx, id)
	if err != nil {
		s.logger.Error("failed to load destination", zap.String("destination_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if d == nil {
		return nil, utils.ErrDestinationNotFound
	}
	return toDestinationResponse(d, true), nil
}

// NearbyDestinations returns active destinations within the radius of a
// point, closest first.
func (s *DestinationService) NearbyDestinations(ctx context.Context, query request_models.NearbyQuery) ([]response_models.DestinationResponse, error) {
	if query.Lat == nil || query.Lng == nil {
		return nil, fmt.Errorf("%w: lat and lng are required", utils.ErrInvalidInput)
	}
	lat, lng := *query.Lat, *query.Lng
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", utils.ErrInvalidInput)
	}
	radius := query.RadiusKm
	if radius == 0 {
		radius = defaultNearbyRadiusKm
	}
	if radius < 0 || radius > maxNearbyRadiusKm {
		return nil, fmt.Errorf("%w: radius must be positive and at most %d km", utils.ErrInvalidInput, maxNearbyRadiusKm)
	}
	limit := query.Limit
	if limit == 0 {
		limit = defaultNearbyLimit
	}
	if limit < 1 || limit > maxNearbyLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", utils.ErrInvalidInput, maxNearbyLimit)
	}

	candidates, err := s.destinationRepo.WithinBox(ctx, boundingBox(lat, lng, radius))
	if err != nil {
		s.logger.Error("failed to search nearby destinations", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	type hit struct {
		d    *db_models.Destination
		dist float64
	}
	hits := make([]hit, 0, len(candidates))
	for i := range candidates {
		if dist := haversine(lat, lng, candidates[i].Latitude, candidates[i].Longitude); dist <= radius {
			hits = append(hits, hit{d: &candidates[i], dist: dist})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]response_models.DestinationResponse, 0, len(hits))
	for _, h := range hits {
		resp := toDestinationResponse(h.d, false)
		dist := math.Round(h.dist*10) / 10
		resp.DistanceKm = &dist
		out = append(out, *resp)
	}
	return out, nil
}

// boundingBox over-approximates the circle around a point. Near the poles or
// across the antimeridian it widens to every longitude.
func boundingBox(lat, lng, radiusKm float64) repositories.BoundingBox {
	dLat := radiusKm / kmPerDegree
	box := repositories.BoundingBox{
		MinLat: math.Max(lat-dLat, -90),
		MaxLat: math.Min(lat+dLat, 90),
		MinLng: -180,
		MaxLng: 180,
	}
	cos := math.Cos(lat * math.Pi / 180)
	if cos < 0.01 {
		return box
	}
	dLng := radiusKm / (kmPerDegree * cos)
	if lng-dLng < -180 || lng+dLng > 180 {
		return box
	}
	box.MinLng, box.MaxLng = lng-dLng, lng+dLng
	return box
}

// haversine is the great-circle distance in km between two points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// SeedCatalog stores the built-in destinations that are not stored yet.
func (s *DestinationService) SeedCatalog(ctx context.Context) error {
	seed := catalogSeed()
	for i := range seed {
		if err := s.destinationRepo.InsertIfMissing(ctx, &seed[i]); err != nil {
			s.logger.Error("failed to seed destination", zap.String("slug", seed[i].Slug), zap.Error(err))
			return utils.ErrDatabaseError
		}
	}
	s.logger.Info("destination catalog seeded", zap.Int("destinations", len(seed)))
	return nil
}

func toDestinationResponse(d *db_models.Destination, withDescription bool) *response_models.DestinationResponse {
	resp := &response_models.DestinationResponse{
		ID:                  d.ID.String(),
		Name:                d.Name,
		Slug:                d.Slug,
		City:                d.City,
		Country:             d.Country,
		Continent:           string(d.Continent),
		Latitude:            d.Latitude,
		Longitude:           d.Longitude,
		ShortDescription:    d.ShortDescription,
		ImageURL:            d.ImageURL,
		Categories:          nonNil(d.Categories),
		Languages:           d.Languages,
		Timezone:            d.Timezone,
		VisaRequired:        d.VisaRequired,
		AvgRating:           d.AvgRating,
		ReviewCount:         d.ReviewCount,
		AveragePrice:        d.AveragePrice,
		Currency:            d.Currency,
		PriceRange:          string(d.PriceRange),
		IsFeatured:          d.IsFeatured,
		HasItineraryCatalog: composer.HasCatalog(d.Name),
	}
	if withDescription {
		resp.Description = d.Description
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
