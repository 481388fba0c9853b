package pricing

// Catalog is the read-only lookup table for plans and travel zones.
// It is built once at process start and never mutated afterwards.
type Catalog struct {
	plans []Plan
	zones []TravelZone
}

func NewCatalog(plans []Plan, zones []TravelZone) *Catalog {
	c := &Catalog{
		plans: make([]Plan, len(plans)),
		zones: make([]TravelZone, len(zones)),
	}
	copy(c.plans, plans)
	copy(c.zones, zones)
	return c
}

// DefaultCatalog returns the studio's built-in price list. It is used as
// seed data and as a fallback when no database is configured.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]Plan{
			{Label: "Solo portrait", Key: PlanPortraitOne, BasePrice: 139, IncludedDuration: 1, OvertimeRatePerHalfHour: 40},
			{Label: "Couple portrait", Key: PlanPortraitCouple, BasePrice: 179, IncludedDuration: 1, OvertimeRatePerHalfHour: 40},
			{Label: "Signing ceremony", Key: PlanSigningCeremony, BasePrice: 289, IncludedDuration: 1, OvertimeRatePerHalfHour: 40},
			{Label: "Wedding day coverage", Key: PlanWeddingHourly},
		},
		[]TravelZone{
			{Label: "Missisauga", FlatSurcharge: 0},
			{Label: "DT Toronto", FlatSurcharge: 9},
			{Label: "North York", FlatSurcharge: 15},
			{Label: "Richmond Hill", FlatSurcharge: 18},
			{Label: "Scarbrough", FlatSurcharge: 18},
			{Label: "Vaughan", FlatSurcharge: 18},
			{Label: "Markham", FlatSurcharge: 18},
		},
	)
}

// Plans returns a copy of the plan list in display order.
func (c *Catalog) Plans() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

// Zones returns a copy of the travel zone list in display order.
func (c *Catalog) Zones() []TravelZone {
	out := make([]TravelZone, len(c.zones))
	copy(out, c.zones)
	return out
}

func (c *Catalog) FindPlanByKey(key PlanKey) (Plan, bool) {
	for _, p := range c.plans {
		if p.Key == key {
			return p, true
		}
	}
	return Plan{}, false
}

func (c *Catalog) FindPlanByLabel(label string) (Plan, bool) {
	for _, p := range c.plans {
		if p.Label == label {
			return p, true
		}
	}
	return Plan{}, false
}

func (c *Catalog) FindZoneByLabel(label string) (TravelZone, bool) {
	for _, z := range c.zones {
		if z.Label == label {
			return z, true
		}
	}
	return TravelZone{}, false
}
