package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/entrext/companion/app/models"
)

type pricingFAQ struct {
	Question string
	Answer   string
}

var pricingFAQs = []pricingFAQ{
	{
		Question: "How do I cancel?",
		Answer:   "You can cancel your subscription anytime through the billing portal. Your access will remain active until the end of your current billing period.",
	},
	{
		Question: "How do refunds work?",
		Answer:   "We follow a 14-day refund policy. If you request a refund within 14 days of purchase, you'll receive a full refund. After 14 days, no prorated refunds are available.",
	},
	{
		Question: "Can I upgrade?",
		Answer:   "Yes! You can upgrade your plan at any time. The price difference will be prorated for the remainder of your billing cycle.",
	},
	{
		Question: "Is my data safe?",
		Answer:   "Absolutely. We use industry-standard encryption and security measures. All payment processing is handled securely by our payment provider, and we never store your card details.",
	},
}

// HandlePricing renders the standalone pricing page with FAQ and the
// money-back guarantee.
func HandlePricing(c *fiber.Ctx) error {
	return render(c, "pricing", fiber.Map{
		"Title": "Choose the perfect Companion plan.",
		"Plans": models.AllPlans(),
		"FAQs":  pricingFAQs,
	})
}
