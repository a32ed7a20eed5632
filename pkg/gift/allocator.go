// Package gift implements Gift-One allocation: routing a second box to a
// senior center alongside a subscription delivery.
package gift

import (
	"errors"
	"strings"

	"freshsprout-be/internal/entity"
)

var (
	ErrNoActiveCenter   = errors.New("no active senior center in region")
	ErrCustomIncomplete = errors.New("custom center requires a name and address")
)

// ChooseDefault picks the senior center a default-center gift goes to.
// Selection is deterministic: the oldest active center in the region, id as
// tie-break, so repeated allocations for the same region agree.
func ChooseDefault(centers []*entity.SeniorCenter, region string) (*entity.SeniorCenter, error) {
	var chosen *entity.SeniorCenter
	for _, c := range centers {
		if !c.IsActive || c.Region != region {
			continue
		}
		if chosen == nil {
			chosen = c
			continue
		}
		if c.CreatedAt.Before(chosen.CreatedAt) ||
			(c.CreatedAt.Equal(chosen.CreatedAt) && c.Id.String() < chosen.Id.String()) {
			chosen = c
		}
	}
	if chosen == nil {
		return nil, ErrNoActiveCenter
	}
	return chosen, nil
}

// ValidateCustom checks a customer-supplied destination before checkout.
func ValidateCustom(name, address string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(address) == "" {
		return ErrCustomIncomplete
	}
	return nil
}
