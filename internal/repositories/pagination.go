package repositories

import "gorm.io/gorm"

// paginate is a gorm scope for 1-based page numbers. A non-positive
// pageSize disables pagination.
func paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}

// pageBounds returns the [start, end) slice bounds of a page within n items.
func pageBounds(n, page, pageSize int) (int, int) {
	if pageSize <= 0 {
		return 0, n
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start > n {
		start = n
	}
	end := start + pageSize
	if end > n {
		end = n
	}
	return start, end
}
