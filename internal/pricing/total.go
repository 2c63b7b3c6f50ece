package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var ErrServiceNotFound = errors.New("service not found in catalog")

type QuoteLine struct {
	ServiceID string      `json:"service_id"`
	Type      ServiceType `json:"type"`
	Name      string      `json:"name"`
	Tier      PriceTier   `json:"tier"`
	TierLabel string      `json:"tier_label"`
	Amount    Money       `json:"amount"`
	Features  []string    `json:"features"`
}

// Quote is a priced selection. Unknown holds selected ids the catalog does
// not carry; they contribute nothing to Total.
type Quote struct {
	Lines   []QuoteLine `json:"lines"`
	Total   Money       `json:"total"`
	Unknown []string    `json:"unknown,omitempty"`
}

// Err reports the unknown ids, if any, as an ErrServiceNotFound.
func (q Quote) Err() error {
	if len(q.Unknown) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrServiceNotFound, strings.Join(q.Unknown, ", "))
}

func NewQuote(sel *Selection, catalog Catalog) Quote {
	q := Quote{Lines: make([]QuoteLine, 0, sel.Len())}
	for _, id := range sel.ids {
		offer, ok := catalog.Find(id)
		if !ok {
			q.Unknown = append(q.Unknown, id)
			continue
		}
		tier := sel.TierFor(id)
		line := QuoteLine{
			ServiceID: offer.ID,
			Type:      offer.Type,
			Name:      offer.Name,
			Tier:      tier,
			TierLabel: tier.Label(),
			Amount:    offer.Price(tier),
			Features:  offer.Features[tier],
		}
		q.Lines = append(q.Lines, line)
		q.Total += line.Amount
	}
	return q
}

// ComputeTotal sums the selected services at their chosen tiers. Unknown ids
// are skipped; the returned total is valid even when err wraps
// ErrServiceNotFound.
func ComputeTotal(sel *Selection, catalog Catalog) (Money, error) {
	q := NewQuote(sel, catalog)
	return q.Total, q.Err()
}
