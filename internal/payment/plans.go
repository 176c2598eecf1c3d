package payment

type Interval string

const (
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

type Plan struct {
	ID       string
	Name     string
	Price    float64 // USD
	Interval Interval
	PriceID  string // billing backend's price identifier
	Popular  bool
	Features []string
}

var plans = []Plan{
	{
		ID:       "monthly",
		Name:     "Monthly Premium",
		Price:    9.99,
		Interval: IntervalMonth,
		PriceID:  "price_monthly_premium",
		Features: []string{
			"Unlimited habits",
			"Unlimited AI insights",
			"Advanced analytics",
			"Custom categories",
			"Cloud sync",
			"Priority support",
		},
	},
	{
		ID:       "yearly",
		Name:     "Yearly Premium",
		Price:    59.99,
		Interval: IntervalYear,
		PriceID:  "price_yearly_premium",
		Popular:  true,
		Features: []string{
			"Everything in Monthly",
			"50% savings ($119.88 → $59.99)",
			"Exclusive yearly insights",
			"Early access to new features",
			"Personal habit coach",
			"1-on-1 success consultation",
		},
	},
}

// Plans returns the available subscription plans.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanByID looks up a plan by its identifier.
func PlanByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
