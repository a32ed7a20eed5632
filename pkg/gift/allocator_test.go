package gift

import (
	"errors"
	"testing"
	"time"

	"freshsprout-be/internal/entity"

	"github.com/google/uuid"
)

func center(name, region string, active bool, created time.Time) *entity.SeniorCenter {
	return &entity.SeniorCenter{
		Id:        uuid.New(),
		Name:      name,
		Region:    region,
		IsActive:  active,
		CreatedAt: created,
	}
}

func TestChooseDefault(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

	oldest := center("Cedar Grove", "metro", true, day(1))
	newer := center("Maple House", "metro", true, day(5))
	inactive := center("Closed Center", "metro", false, day(0))
	otherRegion := center("North Hall", "north", true, day(0))

	got, err := ChooseDefault([]*entity.SeniorCenter{newer, inactive, otherRegion, oldest}, "metro")
	if err != nil {
		t.Fatalf("ChooseDefault: %v", err)
	}
	if got.Name != "Cedar Grove" {
		t.Errorf("chose %q, want oldest active center in region", got.Name)
	}
}

func TestChooseDefaultTieBreaksById(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a := center("A", "metro", true, created)
	b := center("B", "metro", true, created)

	want := a
	if b.Id.String() < a.Id.String() {
		want = b
	}

	// Same result regardless of input order.
	got1, _ := ChooseDefault([]*entity.SeniorCenter{a, b}, "metro")
	got2, _ := ChooseDefault([]*entity.SeniorCenter{b, a}, "metro")
	if got1.Id != want.Id || got2.Id != want.Id {
		t.Error("tie-break must be deterministic across input orderings")
	}
}

func TestChooseDefaultNoActive(t *testing.T) {
	_, err := ChooseDefault([]*entity.SeniorCenter{
		center("Closed", "metro", false, time.Now()),
	}, "metro")
	if !errors.Is(err, ErrNoActiveCenter) {
		t.Errorf("err = %v, want ErrNoActiveCenter", err)
	}
}

func TestValidateCustom(t *testing.T) {
	if err := ValidateCustom("Sunrise Manor", "12 Elm St"); err != nil {
		t.Errorf("valid custom center rejected: %v", err)
	}
	for _, tt := range [][2]string{{"", "12 Elm St"}, {"Sunrise Manor", ""}, {"  ", "  "}} {
		if err := ValidateCustom(tt[0], tt[1]); !errors.Is(err, ErrCustomIncomplete) {
			t.Errorf("ValidateCustom(%q, %q) = %v, want ErrCustomIncomplete", tt[0], tt[1], err)
		}
	}
}
