package pricing

// PlanKey is the category tag that decides which pricing branch applies.
type PlanKey string

const (
	PlanPortraitOne     PlanKey = "portrait-one"
	PlanPortraitCouple  PlanKey = "portrait-couple"
	PlanSigningCeremony PlanKey = "signing-ceremony"
	PlanWeddingHourly   PlanKey = "wedding-hourly"
	PlanWeddingPackage  PlanKey = "wedding-package"
)

// IsPortrait reports whether the plan is eligible for the pet surcharge.
func (k PlanKey) IsPortrait() bool {
	return k == PlanPortraitOne || k == PlanPortraitCouple
}

// IsWedding reports whether the plan is priced by the wedding sub-engine
// (hourly vs package) instead of BasePrice.
func (k PlanKey) IsWedding() bool {
	return k == PlanWeddingHourly || k == PlanWeddingPackage
}

type Plan struct {
	Label                   string
	Key                     PlanKey
	BasePrice               float64
	IncludedDuration        float64 // hours covered by BasePrice before overtime
	OvertimeRatePerHalfHour float64
}

type TravelZone struct {
	Label         string
	FlatSurcharge float64
}

// AdditionalItem is a user-typed ad-hoc charge. Name may be blank and
// Amount may be zero or negative; the engine filters, it never rejects.
type AdditionalItem struct {
	ID     string
	Name   string
	Amount float64
}

// BillingMode selects how the wedding plan is billed.
type BillingMode string

const (
	BillingHourly  BillingMode = "hourly"
	BillingPackage BillingMode = "package"
)

// CameraMode selects the hourly wedding rate.
type CameraMode string

const (
	CameraSingle CameraMode = "single"
	CameraDouble CameraMode = "double"
)
