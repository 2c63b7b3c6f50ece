package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotSelected = errors.New("service is not selected")
	ErrInvalidTier = errors.New("invalid price tier")
)

// Selection is the set of services a user picked, in pick order, with a tier
// choice per picked service. A tier choice only ever exists for a selected id.
type Selection struct {
	ids   []string
	tiers map[string]PriceTier
}

// NewSelection builds a selection from request data. Blank and duplicate ids
// are dropped, as are tier choices for ids that are not selected.
func NewSelection(ids []string, tiers map[string]PriceTier) (*Selection, error) {
	sel := &Selection{tiers: make(map[string]PriceTier, len(ids))}
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" || sel.Has(id) {
			continue
		}
		tier, ok := tiers[raw]
		if !ok {
			tier = tiers[id]
		}
		if tier == "" {
			tier = CostEffective
		}
		if !tier.Valid() {
			return nil, fmt.Errorf("%w: %q for service %s", ErrInvalidTier, tier, id)
		}
		sel.ids = append(sel.ids, id)
		sel.tiers[id] = tier
	}
	return sel, nil
}

func (s *Selection) Has(id string) bool {
	_, ok := s.tiers[id]
	return ok
}

// Toggle selects id with the cost-effective tier, or unselects it and forgets
// its tier choice. It reports whether id is selected afterwards; a blank id
// is never selected.
func (s *Selection) Toggle(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	if s.tiers == nil {
		s.tiers = make(map[string]PriceTier)
	}
	if s.Has(id) {
		delete(s.tiers, id)
		for i, v := range s.ids {
			if v == id {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
		return false
	}
	s.ids = append(s.ids, id)
	s.tiers[id] = CostEffective
	return true
}

func (s *Selection) SetTier(id string, tier PriceTier) error {
	if !tier.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTier, tier)
	}
	id = strings.TrimSpace(id)
	if !s.Has(id) {
		return fmt.Errorf("%w: %s", ErrNotSelected, id)
	}
	s.tiers[id] = tier
	return nil
}

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string {
	return append([]string(nil), s.ids...)
}

// TierFor returns the tier chosen for id, defaulting to cost-effective.
func (s *Selection) TierFor(id string) PriceTier {
	if t, ok := s.tiers[id]; ok && t != "" {
		return t
	}
	return CostEffective
}

func (s *Selection) Len() int {
	return len(s.ids)
}
