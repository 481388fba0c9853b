package pricing

import (
	"fmt"
	"math"
)

const (
	PetFeePerPet        = 20.0
	WeddingPackagePrice = 699.0
	WeddingPackageHours = 8.0
	WeddingOvertimeRate = 180.0 // per hour, package mode past the included window
	SingleCameraRate    = 100.0 // per hour
	DoubleCameraRate    = 180.0 // per hour
)

// Input is the full current selection. It is owned by the caller and
// recomputed from scratch on every change; the engine keeps no state.
type Input struct {
	Plan            *Plan
	DurationHours   float64
	HasPets         bool
	PetCount        int
	TravelZone      TravelZone
	AdditionalItems []AdditionalItem

	// Wedding-only fields, ignored for other plans.
	WeddingBillingMode BillingMode
	CameraCount        CameraMode

	// CustomOvertimeRate replaces the plan's overtime pricing when set.
	// A pointer to 0 is a real override (free overtime), nil means no
	// override; the two must never be conflated.
	CustomOvertimeRate *float64
}

type LineItem struct {
	Name   string
	Amount float64
}

// Quote is an ordered breakdown plus the sum of its amounts. Item order is
// user-visible and fixed: base, overtime, pet, travel, additional items.
type Quote struct {
	Items []LineItem
	Total float64
}

// Compute prices the current selection. It is pure and total: no plan
// selected yields an empty quote, never an error, and identical inputs
// always yield identical quotes. Inputs are assumed already sanitized by
// the caller (negative or NaN numbers are not rejected here).
func Compute(in Input) Quote {
	var q Quote
	if in.Plan == nil {
		return q
	}

	plan := *in.Plan
	key := plan.Key
	if key.IsWedding() {
		// The billing mode toggle decides which wedding sub-engine runs,
		// whichever wedding key the catalog stores the plan under.
		if in.WeddingBillingMode == BillingPackage {
			key = PlanWeddingPackage
		} else {
			key = PlanWeddingHourly
		}
	}

	switch key {
	case PlanWeddingPackage:
		q.add("8-hour wedding package", WeddingPackagePrice)
		if in.DurationHours > WeddingPackageHours {
			rate := WeddingOvertimeRate
			if in.CustomOvertimeRate != nil {
				rate = *in.CustomOvertimeRate
			}
			q.add("overtime", (in.DurationHours-WeddingPackageHours)*rate)
		}

	case PlanWeddingHourly:
		rate := SingleCameraRate
		name := "single-camera wedding coverage"
		if in.CameraCount == CameraDouble {
			rate = DoubleCameraRate
			name = "double-camera wedding coverage"
		}
		// Linear in duration, so no separate overtime line.
		q.add(name, rate*in.DurationHours)

	default:
		q.add("base plan fee", plan.BasePrice)
		if in.DurationHours > plan.IncludedDuration {
			overtime := in.DurationHours - plan.IncludedDuration
			if in.CustomOvertimeRate != nil {
				// A custom rate bills continuously; only the default rate
				// rounds up to half-hour blocks.
				q.add("overtime", overtime*(*in.CustomOvertimeRate))
			} else {
				blocks := math.Ceil(overtime * 2)
				q.add("overtime", blocks*plan.OvertimeRatePerHalfHour)
			}
		}
	}

	if key.IsPortrait() && in.HasPets && in.PetCount > 0 {
		q.add("pet fee", float64(in.PetCount)*PetFeePerPet)
	}

	if in.TravelZone.FlatSurcharge > 0 {
		q.add(fmt.Sprintf("travel fee (%s)", in.TravelZone.Label), in.TravelZone.FlatSurcharge)
	}

	for _, item := range in.AdditionalItems {
		if item.Name == "" || item.Amount == 0 {
			continue
		}
		q.add(item.Name, item.Amount)
	}

	return q
}

func (q *Quote) add(name string, amount float64) {
	q.Items = append(q.Items, LineItem{Name: name, Amount: amount})
	q.Total += amount
}
