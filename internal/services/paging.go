package services

import (
	"strings"

	"globetrotter/pkg/utils"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100

	DefaultCurrency = "USD"
)

// normalizePage fills in the defaults for zero values and rejects the rest.
func normalizePage(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = defaultPage
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		return 0, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, utils.ErrInvalidPageSize
	}
	return page, pageSize, nil
}

// normalizeCurrency upper-cases a three letter code, defaulting to USD.
func normalizeCurrency(c string) (string, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return DefaultCurrency, nil
	}
	if len(c) != 3 {
		return "", utils.ErrInvalidInput
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", utils.ErrInvalidInput
		}
	}
	return c, nil
}
