package models

import "strings"

// PricingPlan is a statically defined pricing tier. Plans are immutable and
// selected by key via the `plan` URL query parameter on the billing page.
type PricingPlan struct {
	Key      string
	Name     string
	Price    float64
	Period   string // "forever" or "month"
	Features []string
	Popular  bool
}

// IsFree reports whether the plan skips the payment flow entirely.
func (p PricingPlan) IsFree() bool {
	return p.Price == 0
}

const (
	PlanKeyFree = "free"
	PlanKeyPlus = "plus"
	PlanKeyPro  = "pro"
)

var pricingPlans = map[string]PricingPlan{
	PlanKeyFree: {
		Key:    PlanKeyFree,
		Name:   "Free",
		Price:  0,
		Period: "forever",
		Features: []string{
			"Basic connection features",
			"Up to 5 connections per month",
			"Standard support",
		},
	},
	PlanKeyPlus: {
		Key:    PlanKeyPlus,
		Name:   "Plus",
		Price:  9.99,
		Period: "month",
		Features: []string{
			"Unlimited connections",
			"Priority matching",
			"Advanced filters",
			"Email support",
			"Profile boost",
		},
		Popular: true,
	},
	PlanKeyPro: {
		Key:    PlanKeyPro,
		Name:   "Pro",
		Price:  19.99,
		Period: "month",
		Features: []string{
			"Everything in Plus",
			"VIP badge",
			"Exclusive events access",
			"24/7 priority support",
			"Advanced analytics",
			"Custom profile themes",
		},
	},
}

// ResolvePlan looks a plan key up in the static table. The second return is
// false for unknown or empty keys; callers must redirect in that case rather
// than render a billing form.
func ResolvePlan(key string) (PricingPlan, bool) {
	plan, ok := pricingPlans[strings.ToLower(strings.TrimSpace(key))]
	return plan, ok
}

// AllPlans returns the tiers in display order.
func AllPlans() []PricingPlan {
	return []PricingPlan{
		pricingPlans[PlanKeyFree],
		pricingPlans[PlanKeyPlus],
		pricingPlans[PlanKeyPro],
	}
}
