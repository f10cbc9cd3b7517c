package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/entrext/companion/app/models"
	"github.com/entrext/companion/internal/pkg/forms"
	"github.com/entrext/companion/internal/pkg/session"
)

// HandleBillingPage resolves the `plan` query parameter against the static
// plan table. Unknown keys redirect back to plan selection; a free plan
// renders its confirmation view with no network involved; paid plans get
// the billing form.
func HandleBillingPage(c *fiber.Ctx) error {
	plan, ok := models.ResolvePlan(c.Query("plan"))
	if !ok {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Invalid Plan. Please select a valid pricing plan.",
		}).Redirect("/#pricing")
	}

	_ = session.SetSessionValue(c, session.KeySelectedPlan, plan.Key)

	if plan.IsFree() {
		return render(c, "billing_free", fiber.Map{
			"Title": "Welcome to Companion Free Plan!",
			"Plan":  plan,
		})
	}

	return renderBillingForm(c, plan, forms.BillingForm{}, nil, fiber.StatusOK)
}

// HandleBillingCheckout validates the billing form and opens a checkout
// session for the selected paid plan. Success redirects the browser to the
// processor's hosted page; failure re-renders the form so the user can
// resubmit manually.
func HandleBillingCheckout(c *fiber.Ctx) error {
	plan, ok := models.ResolvePlan(c.FormValue("plan"))
	if !ok {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Invalid Plan. Please select a valid pricing plan.",
		}).Redirect("/#pricing")
	}

	// Free plans never reach the processor.
	if plan.IsFree() {
		return c.Redirect("/billing?plan="+plan.Key, fiber.StatusSeeOther)
	}

	var form forms.BillingForm
	if err := c.BodyParser(&form); err != nil {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Invalid form submission",
		}).Redirect("/billing?plan=" + plan.Key)
	}

	if errs := forms.Validate(form); len(errs) > 0 {
		return renderBillingForm(c, plan, form, errs, fiber.StatusUnprocessableEntity)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	items := []models.OrderItem{
		{
			Name:     fmt.Sprintf("Companion %s Plan", plan.Name),
			Price:    plan.Price,
			Quantity: 1,
		},
	}

	checkoutURL, err := gw.CreateCheckoutSession(ctx, items)
	if err != nil {
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Payment Error: " + err.Error(),
		}).Redirect("/billing?plan=" + plan.Key)
	}

	return c.Redirect(checkoutURL, fiber.StatusSeeOther)
}

func renderBillingForm(c *fiber.Ctx, plan models.PricingPlan, form forms.BillingForm, errs map[string]string, status int) error {
	if errs == nil {
		errs = map[string]string{}
	}
	c.Status(status)
	return render(c, "billing", fiber.Map{
		"Title":  "Secure Billing Information",
		"Plan":   plan,
		"Form":   form,
		"Errors": errs,
	})
}
