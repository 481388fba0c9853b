package pricing

import (
	"math"
	"reflect"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testPlan(t *testing.T, key PlanKey) *Plan {
	t.Helper()
	plan, ok := DefaultCatalog().FindPlanByKey(key)
	if !ok {
		t.Fatalf("plan %q missing from default catalog", key)
	}
	return &plan
}

func TestComputeNoPlanSelected(t *testing.T) {
	q := Compute(Input{DurationHours: 2, PetCount: 3})
	if len(q.Items) != 0 {
		t.Errorf("expected empty breakdown, got %d items", len(q.Items))
	}
	if q.Total != 0 {
		t.Errorf("expected total 0, got %.2f", q.Total)
	}
}

func TestComputeSoloPortraitNoOvertime(t *testing.T) {
	q := Compute(Input{
		Plan:          testPlan(t, PlanPortraitOne),
		DurationHours: 1,
		TravelZone:    TravelZone{Label: "Missisauga", FlatSurcharge: 0},
	})

	want := []LineItem{{Name: "base plan fee", Amount: 139}}
	if !reflect.DeepEqual(q.Items, want) {
		t.Errorf("breakdown mismatch: got %+v, want %+v", q.Items, want)
	}
	if !approx(q.Total, 139) {
		t.Errorf("total: got %.2f, want 139.00", q.Total)
	}
}

func TestComputeOvertimeDefaultRateRoundsUpBlocks(t *testing.T) {
	// 0.3h over → 1 half-hour block at 40.
	q := Compute(Input{
		Plan:          testPlan(t, PlanPortraitOne),
		DurationHours: 1.3,
	})

	if len(q.Items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(q.Items), q.Items)
	}
	if q.Items[1].Name != "overtime" || !approx(q.Items[1].Amount, 40) {
		t.Errorf("overtime: got (%s, %.2f), want (overtime, 40.00)", q.Items[1].Name, q.Items[1].Amount)
	}
	if !approx(q.Total, 179) {
		t.Errorf("total: got %.2f, want 179.00", q.Total)
	}
}

func TestComputeOvertimeCustomRateIsLinear(t *testing.T) {
	rate := 50.0
	q := Compute(Input{
		Plan:               testPlan(t, PlanPortraitOne),
		DurationHours:      1.3,
		CustomOvertimeRate: &rate,
	})

	// 0.3h × 50, no block rounding.
	if !approx(q.Items[1].Amount, 15) {
		t.Errorf("overtime: got %.2f, want 15.00", q.Items[1].Amount)
	}
	if !approx(q.Total, 154) {
		t.Errorf("total: got %.2f, want 154.00", q.Total)
	}
}

func TestComputeCustomRateZeroIsARealOverride(t *testing.T) {
	zero := 0.0
	q := Compute(Input{
		Plan:               testPlan(t, PlanPortraitOne),
		DurationHours:      3,
		CustomOvertimeRate: &zero,
	})

	if len(q.Items) != 2 {
		t.Fatalf("expected the overtime line to still be emitted, got %+v", q.Items)
	}
	if !approx(q.Items[1].Amount, 0) {
		t.Errorf("overtime with zero rate: got %.2f, want 0.00", q.Items[1].Amount)
	}
	if !approx(q.Total, 139) {
		t.Errorf("total: got %.2f, want 139.00", q.Total)
	}
}

func TestComputeDurationBelowIncludedNeverGoesNegative(t *testing.T) {
	q := Compute(Input{
		Plan:          testPlan(t, PlanPortraitOne),
		DurationHours: 0.5,
	})
	if len(q.Items) != 1 {
		t.Errorf("expected no overtime line, got %+v", q.Items)
	}
}

func TestComputePetsAndTravel(t *testing.T) {
	q := Compute(Input{
		Plan:          testPlan(t, PlanPortraitCouple),
		DurationHours: 1,
		HasPets:       true,
		PetCount:      2,
		TravelZone:    TravelZone{Label: "North York", FlatSurcharge: 15},
	})

	want := []LineItem{
		{Name: "base plan fee", Amount: 179},
		{Name: "pet fee", Amount: 40},
		{Name: "travel fee (North York)", Amount: 15},
	}
	if !reflect.DeepEqual(q.Items, want) {
		t.Errorf("breakdown mismatch: got %+v, want %+v", q.Items, want)
	}
	if !approx(q.Total, 234) {
		t.Errorf("total: got %.2f, want 234.00", q.Total)
	}
}

func TestComputePetFeeRequiresPortraitPlan(t *testing.T) {
	q := Compute(Input{
		Plan:          testPlan(t, PlanSigningCeremony),
		DurationHours: 1,
		HasPets:       true,
		PetCount:      2,
	})
	for _, item := range q.Items {
		if item.Name == "pet fee" {
			t.Errorf("pet fee emitted for non-portrait plan: %+v", q.Items)
		}
	}
}

func TestComputeWeddingPackageOvertime(t *testing.T) {
	plan := testPlan(t, PlanWeddingHourly)

	q := Compute(Input{
		Plan:               plan,
		DurationHours:      10,
		WeddingBillingMode: BillingPackage,
	})

	want := []LineItem{
		{Name: "8-hour wedding package", Amount: 699},
		{Name: "overtime", Amount: 360}, // (10-8) × 180
	}
	if !reflect.DeepEqual(q.Items, want) {
		t.Errorf("breakdown mismatch: got %+v, want %+v", q.Items, want)
	}
	if !approx(q.Total, 1059) {
		t.Errorf("total: got %.2f, want 1059.00", q.Total)
	}

	rate := 100.0
	q = Compute(Input{
		Plan:               plan,
		DurationHours:      10,
		WeddingBillingMode: BillingPackage,
		CustomOvertimeRate: &rate,
	})
	if !approx(q.Total, 899) {
		t.Errorf("total with custom rate: got %.2f, want 899.00", q.Total)
	}
}

func TestComputeWeddingPackageWithinWindow(t *testing.T) {
	q := Compute(Input{
		Plan:               testPlan(t, PlanWeddingHourly),
		DurationHours:      8,
		WeddingBillingMode: BillingPackage,
	})
	if len(q.Items) != 1 || !approx(q.Total, 699) {
		t.Errorf("expected flat package price, got %+v total %.2f", q.Items, q.Total)
	}
}

func TestComputeWeddingHourlyDoubleCamera(t *testing.T) {
	q := Compute(Input{
		Plan:               testPlan(t, PlanWeddingHourly),
		DurationHours:      4,
		WeddingBillingMode: BillingHourly,
		CameraCount:        CameraDouble,
	})

	want := []LineItem{{Name: "double-camera wedding coverage", Amount: 720}}
	if !reflect.DeepEqual(q.Items, want) {
		t.Errorf("breakdown mismatch: got %+v, want %+v", q.Items, want)
	}
	if !approx(q.Total, 720) {
		t.Errorf("total: got %.2f, want 720.00", q.Total)
	}
}

func TestComputeWeddingHourlySingleCamera(t *testing.T) {
	q := Compute(Input{
		Plan:               testPlan(t, PlanWeddingHourly),
		DurationHours:      3,
		WeddingBillingMode: BillingHourly,
		CameraCount:        CameraSingle,
	})
	if !approx(q.Total, 300) {
		t.Errorf("total: got %.2f, want 300.00", q.Total)
	}
}

func TestComputeAdditionalItemsFiltering(t *testing.T) {
	q := Compute(Input{
		Plan:          testPlan(t, PlanPortraitOne),
		DurationHours: 1,
		AdditionalItems: []AdditionalItem{
			{ID: "1", Name: "album", Amount: 50},
			{ID: "2", Name: "", Amount: 25},          // blank name, skipped
			{ID: "3", Name: "voucher", Amount: 0},    // zero amount, skipped
			{ID: "4", Name: "discount", Amount: -30}, // negative amounts pass
		},
	})

	want := []LineItem{
		{Name: "base plan fee", Amount: 139},
		{Name: "album", Amount: 50},
		{Name: "discount", Amount: -30},
	}
	if !reflect.DeepEqual(q.Items, want) {
		t.Errorf("breakdown mismatch: got %+v, want %+v", q.Items, want)
	}
	if !approx(q.Total, 159) {
		t.Errorf("total: got %.2f, want 159.00", q.Total)
	}
}

func TestComputeLineItemOrderIsFixed(t *testing.T) {
	q := Compute(Input{
		Plan:            testPlan(t, PlanPortraitCouple),
		DurationHours:   2,
		HasPets:         true,
		PetCount:        1,
		TravelZone:      TravelZone{Label: "Markham", FlatSurcharge: 18},
		AdditionalItems: []AdditionalItem{{ID: "1", Name: "props", Amount: 10}},
	})

	wantOrder := []string{"base plan fee", "overtime", "pet fee", "travel fee (Markham)", "props"}
	if len(q.Items) != len(wantOrder) {
		t.Fatalf("expected %d items, got %+v", len(wantOrder), q.Items)
	}
	for i, name := range wantOrder {
		if q.Items[i].Name != name {
			t.Errorf("item %d: got %q, want %q", i, q.Items[i].Name, name)
		}
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	rate := 60.0
	in := Input{
		Plan:               testPlan(t, PlanPortraitCouple),
		DurationHours:      2.5,
		HasPets:            true,
		PetCount:           3,
		TravelZone:         TravelZone{Label: "Vaughan", FlatSurcharge: 18},
		AdditionalItems:    []AdditionalItem{{ID: "1", Name: "rush edit", Amount: 45}},
		CustomOvertimeRate: &rate,
	}

	first := Compute(in)
	second := Compute(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated computation diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
