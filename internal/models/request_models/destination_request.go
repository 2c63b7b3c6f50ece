package request_models

type DestinationQuery struct {
	Page       int     `form:"page"`
	PageSize   int     `form:"page_size"`
	Search     string  `form:"search"`
	Country    string  `form:"country"`
	Continent  string  `form:"continent"`
	MinRating  float64 `form:"min_rating"`
	MaxPrice   int64   `form:"max_price"`
	Categories string  `form:"categories"` // comma separated
	SortBy     string  `form:"sort_by"`
	SortOrder  string  `form:"sort_order"`
}

type NearbyQuery struct {
	Lat      *float64 `form:"lat" binding:"required"`
	Lng      *float64 `form:"lng" binding:"required"`
	RadiusKm float64  `form:"radius"`
	Limit    int      `form:"limit"`
}
