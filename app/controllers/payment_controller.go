package controllers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// paymentDetails is the bind for the success state of the payment page.
type paymentDetails struct {
	AmountFormatted string
	CustomerEmail   string
	CustomerName    string
	SessionIDPrefix string
}

// HandlePaymentStatus is the return landing from the hosted checkout. The
// session id from the URL is verified exactly once; there is no polling
// loop, and re-verification requires navigating here again.
func HandlePaymentStatus(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		return renderPaymentStatus(c, "error", "No payment session found", nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	sess, err := gw.VerifyPayment(ctx, sessionID)
	if err != nil {
		return renderPaymentStatus(c, "error", err.Error(), nil)
	}
	if !sess.Verified {
		return renderPaymentStatus(c, "error", "Payment verification failed. Please contact support.", nil)
	}

	details := &paymentDetails{
		AmountFormatted: fmt.Sprintf("$%.2f %s", float64(sess.Amount)/100, strings.ToUpper(sess.Currency)),
		CustomerEmail:   sess.CustomerEmail,
		CustomerName:    sess.CustomerName,
		SessionIDPrefix: sessionIDPrefix(sess.SessionID),
	}
	return renderPaymentStatus(c, "success", "", details)
}

func sessionIDPrefix(id string) string {
	if len(id) <= 20 {
		return id
	}
	return id[:20] + "..."
}

func renderPaymentStatus(c *fiber.Ctx, state, message string, details *paymentDetails) error {
	return render(c, "payment_status", fiber.Map{
		"Title":   "Payment Status",
		"State":   state,
		"Message": message,
		"Details": details,
	})
}
