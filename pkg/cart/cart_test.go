package cart

import (
	"context"
	"testing"
	"time"

	"freshsprout-be/pkg/schedule"
)

func pricing() schedule.Config {
	return schedule.Config{
		OrderCutoff:           schedule.Cutoff{Weekday: time.Tuesday, Hour: 22},
		DeliveryWeekday:       time.Friday,
		FreeShippingThreshold: 25.00,
		DeliveryFee:           5.00,
	}
}

func TestAddItemMergesBySlug(t *testing.T) {
	var c Cart
	c.AddItem("sunflower-pack", "Sunflower Pack", 8.50, 1)
	c.AddItem("pea-shoots", "Pea Shoots", 7.00, 2)
	c.AddItem("sunflower-pack", "Sunflower Pack", 8.50, 3)

	if len(c.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 4 {
		t.Errorf("expected merged quantity 4, got %d", c.Lines[0].Quantity)
	}

	tot := c.Totals(pricing())
	if tot.ItemCount != 6 {
		t.Errorf("ItemCount = %d, want 6", tot.ItemCount)
	}
}

func TestAddItemClampsQuantity(t *testing.T) {
	var c Cart
	c.AddItem("basil-hydrosol", "Basil Hydrosol", 12.00, 0)
	if c.Lines[0].Quantity != 1 {
		t.Errorf("quantity below 1 should be treated as 1, got %d", c.Lines[0].Quantity)
	}
}

func TestUpdateQuantity(t *testing.T) {
	var c Cart
	c.AddItem("pea-shoots", "Pea Shoots", 7.00, 2)

	c.UpdateQuantity("pea-shoots", 5)
	if c.Lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", c.Lines[0].Quantity)
	}

	// qty <= 0 removes the line
	c.UpdateQuantity("pea-shoots", 0)
	if !c.IsEmpty() {
		t.Error("setting quantity to 0 should remove the line")
	}

	// unknown slug is a no-op
	c.UpdateQuantity("missing", 3)
	if !c.IsEmpty() {
		t.Error("updating an unknown slug must not create a line")
	}
}

func TestRemoveItem(t *testing.T) {
	var c Cart
	c.AddItem("a", "A", 1, 1)
	c.AddItem("b", "B", 2, 1)
	c.RemoveItem("a")

	if len(c.Lines) != 1 || c.Lines[0].Slug != "b" {
		t.Errorf("unexpected lines after removal: %+v", c.Lines)
	}
}

func TestTotalsShippingBoundary(t *testing.T) {
	cfg := pricing()

	tests := []struct {
		name         string
		price        float64
		qty          int
		wantShipping float64
		wantTotal    float64
	}{
		{"below threshold pays fee", 10.00, 2, 5.00, 25.00},
		{"exactly at threshold pays fee", 12.50, 2, 5.00, 30.00},
		{"above threshold ships free", 12.51, 2, 0, 25.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			c.AddItem("x", "X", tt.price, tt.qty)
			tot := c.Totals(cfg)
			if tot.ShippingFee != tt.wantShipping {
				t.Errorf("ShippingFee = %.2f, want %.2f", tot.ShippingFee, tt.wantShipping)
			}
			if tot.Total != tt.wantTotal {
				t.Errorf("Total = %.2f, want %.2f", tot.Total, tt.wantTotal)
			}
		})
	}
}

func TestNoDuplicateSlugsUnderMutation(t *testing.T) {
	var c Cart
	ops := []func(){
		func() { c.AddItem("a", "A", 2, 1) },
		func() { c.AddItem("b", "B", 3, 2) },
		func() { c.AddItem("a", "A", 2, 2) },
		func() { c.UpdateQuantity("b", 7) },
		func() { c.AddItem("c", "C", 1, 1) },
		func() { c.RemoveItem("a") },
		func() { c.AddItem("a", "A", 2, 1) },
	}

	for _, op := range ops {
		op()
		seen := map[string]bool{}
		count := 0
		for _, l := range c.Lines {
			if seen[l.Slug] {
				t.Fatalf("duplicate slug %q in cart", l.Slug)
			}
			seen[l.Slug] = true
			count += l.Quantity
		}
		if tot := c.Totals(pricing()); tot.ItemCount != count {
			t.Fatalf("ItemCount = %d, want %d", tot.ItemCount, count)
		}
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	c, err := store.Load(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.IsEmpty() {
		t.Error("fresh token should load an empty cart")
	}

	c.AddItem("pea-shoots", "Pea Shoots", 7.00, 2)
	if err := store.Save(ctx, "tok-1", c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Lines) != 1 || loaded.Lines[0].Quantity != 2 {
		t.Errorf("unexpected loaded cart: %+v", loaded)
	}

	if err := store.Clear(ctx, "tok-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	cleared, _ := store.Load(ctx, "tok-1")
	if !cleared.IsEmpty() {
		t.Error("cart should be empty after Clear")
	}
}
