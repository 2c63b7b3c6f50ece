package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"globetrotter/internal/models/db_models"
)

type DestinationSort string

const (
	SortByName       DestinationSort = "name"
	SortByRating     DestinationSort = "rating"
	SortByPrice      DestinationSort = "price"
	SortByPopularity DestinationSort = "popularity"
)

var destinationSortColumns = map[DestinationSort]string{
	SortByName:       "name",
	SortByRating:     "avg_rating",
	SortByPrice:      "average_price",
	SortByPopularity: "review_count",
}

func (s DestinationSort) Valid() bool {
	_, ok := destinationSortColumns[s]
	return ok
}

// DestinationFilter narrows List. Zero values mean "any". Only active
// destinations are ever listed.
type DestinationFilter struct {
	Search     string
	Country    string
	Continent  db_models.Continent
	MinRating  float64
	MaxPrice   int64
	Categories []string
	SortBy     DestinationSort
	Ascending  bool
	Page       int
	PageSize   int
}

// BoundingBox is an inclusive latitude/longitude rectangle.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

type DestinationRepository interface {
	// InsertIfMissing stores d unless a destination with the same slug exists.
	InsertIfMissing(ctx context.Context, d *db_models.Destination) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Destination, error)
	List(ctx context.Context, filter DestinationFilter) ([]db_models.Destination, int64, error)
	Featured(ctx context.Context, limit int) ([]db_models.Destination, error)
	WithinBox(ctx context.Context, box BoundingBox) ([]db_models.Destination, error)
	UpdateRating(ctx context.Context, id uuid.UUID, avg float64, count int) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&db_models.Destination{}).Where("is_active = ?", true)
}

func (r *destinationRepository) InsertIfMissing(ctx context.Context, d *db_models.Destination) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
		Create(d).Error
}

// FindById returns nil, nil for unknown or inactive destinations.
func (r *destinationRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Destination, error) {
	var d db_models.Destination
	err := r.active(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *destinationRepository) List(ctx context.Context, filter DestinationFilter) ([]db_models.Destination, int64, error) {
	var (
		destinations []db_models.Destination
		total        int64
	)

	q := r.active(ctx)
	if term := strings.TrimSpace(filter.Search); term != "" {
		like := "%" + term + "%"
		q = q.Where("name ILIKE ? OR city ILIKE ? OR country ILIKE ? OR description ILIKE ?", like, like, like, like)
	}
	if filter.Country != "" {
		q = q.Where("LOWER(country) = LOWER(?)", filter.Country)
	}
	if filter.Continent != "" {
		q = q.Where("continent = ?", filter.Continent)
	}
	if filter.MinRating > 0 {
		q = q.Where("avg_rating >= ?", filter.MinRating)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("average_price <= ?", filter.MaxPrice)
	}
	if len(filter.Categories) > 0 {
		q = q.Where("categories && ?", pq.StringArray(filter.Categories))
	}
	q = q.Session(&gorm.Session{})

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Scopes(paginate(filter.Page, filter.PageSize)).
		Order(destinationOrder(filter.SortBy, filter.Ascending)).
		Order("avg_rating DESC").
		Find(&destinations).Error
	if err != nil {
		return nil, 0, err
	}
	return destinations, total, nil
}

func destinationOrder(sortBy DestinationSort, ascending bool) clause.OrderByColumn {
	column, ok := destinationSortColumns[sortBy]
	if !ok {
		column = destinationSortColumns[SortByRating]
	}
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: !ascending}
}

func (r *destinationRepository) Featured(ctx context.Context, limit int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.active(ctx).
		Where("is_featured = ?", true).
		Order("avg_rating DESC").
		Limit(limit).
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) WithinBox(ctx context.Context, box BoundingBox) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.active(ctx).
		Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) UpdateRating(ctx context.Context, id uuid.UUID, avg float64, count int) error {
	return r.db.WithContext(ctx).Model(&db_models.Destination{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"avg_rating": avg, "review_count": count}).Error
}
