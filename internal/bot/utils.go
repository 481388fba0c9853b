package bot

import (
	"fmt"
	"strings"

	"studioquote-bot/internal/pricing"
)

// BuildPricingInput resolves a stored draft against the catalog. Unknown
// plan keys or zone labels resolve to "nothing selected", never an error.
func BuildPricingInput(catalog *pricing.Catalog, draft QuoteDraft) pricing.Input {
	in := pricing.Input{
		DurationHours:      draft.DurationHours,
		HasPets:            draft.HasPets,
		PetCount:           draft.PetCount,
		WeddingBillingMode: pricing.BillingMode(draft.BillingMode),
		CameraCount:        pricing.CameraMode(draft.CameraCount),
		CustomOvertimeRate: draft.CustomOvertimeRate,
	}

	if plan, ok := catalog.FindPlanByKey(pricing.PlanKey(draft.PlanKey)); ok {
		in.Plan = &plan
	}
	if zone, ok := catalog.FindZoneByLabel(draft.TravelZone); ok {
		in.TravelZone = zone
	}

	for _, extra := range draft.Extras {
		in.AdditionalItems = append(in.AdditionalItems, pricing.AdditionalItem{
			ID:     extra.ID,
			Name:   extra.Name,
			Amount: extra.Amount,
		})
	}

	return in
}

// FormatQuote renders the breakdown as it is shown in chat.
func FormatQuote(q pricing.Quote) string {
	if len(q.Items) == 0 {
		return "Nothing selected yet. Pick a plan to see a price."
	}

	var b strings.Builder
	b.WriteString("🧾 Price breakdown\n\n")
	for _, item := range q.Items {
		fmt.Fprintf(&b, "• %s: $%.2f\n", item.Name, item.Amount)
	}
	b.WriteString("────────────────────\n")
	fmt.Fprintf(&b, "Total: $%.2f", q.Total)
	return b.String()
}

// FormatRunningTotal is the short confirmation shown while extras are
// being added.
func FormatRunningTotal(q pricing.Quote) string {
	return fmt.Sprintf("Added. Running total: $%.2f\n\nSend another `name amount` line or press %s.", q.Total, BtnDone)
}
