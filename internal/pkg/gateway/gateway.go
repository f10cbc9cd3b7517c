package gateway

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/entrext/companion/app/models"
	"github.com/entrext/companion/app/repository"
	"github.com/entrext/companion/internal/pkg/payment"
)

// Currency for all checkouts. Fixed by the checkout contract.
const Currency = "usd"

// CheckoutClient is the slice of the payment client the gateway needs.
type CheckoutClient interface {
	CreateCheckoutSession(ctx context.Context, items []models.OrderItem, currency string) (*payment.CreatedSession, error)
	GetSession(ctx context.Context, sessionID string) (*payment.Session, error)
}

// Service is the remote-data surface the controllers talk to. Each operation
// is a single round trip: no caching, no retries, failures surface
// immediately as tagged errors.
type Service interface {
	AddToWaitlist(ctx context.Context, email string) (*models.WaitlistEntry, error)
	CreateCheckoutSession(ctx context.Context, items []models.OrderItem) (string, error)
	// VerifyPayment checks a session exactly once per call. There is no
	// polling loop; re-verification requires a fresh call.
	VerifyPayment(ctx context.Context, sessionID string) (*payment.Session, error)
}

// Gateway implements Service against the database and the payment processor.
type Gateway struct {
	waitlist repository.WaitlistRepository
	orders   repository.OrderRepository
	checkout CheckoutClient
}

// New wires the gateway from explicit dependencies.
func New(waitlist repository.WaitlistRepository, orders repository.OrderRepository, checkout CheckoutClient) *Gateway {
	return &Gateway{
		waitlist: waitlist,
		orders:   orders,
		checkout: checkout,
	}
}

// AddToWaitlist inserts a signup row. A duplicate email comes back as
// KindDuplicateEntry; the driver-specific duplicate-key signal never leaves
// this method.
func (g *Gateway) AddToWaitlist(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	entry, err := models.NewWaitlistEntry(strings.TrimSpace(email))
	if err != nil {
		return nil, NewError(KindTransport, "Invalid email address", err)
	}

	if err := g.waitlist.Create(entry); err != nil {
		if isDuplicateKey(err) {
			return nil, NewError(KindDuplicateEntry, "This email is already registered for the waitlist.", err)
		}
		log.Printf("waitlist insert failed: %v", err)
		return nil, NewError(KindTransport, "Please try again later.", err)
	}

	return entry, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// MySQL error 1062 in case the connection was opened without
	// TranslateError.
	return strings.Contains(err.Error(), "Duplicate entry")
}

// CreateCheckoutSession opens a processor checkout session for the line
// items and records a pending order carrying the session id. The returned
// string is the hosted checkout URL the caller redirects to.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, items []models.OrderItem) (string, error) {
	created, err := g.checkout.CreateCheckoutSession(ctx, items, Currency)
	if err != nil {
		log.Printf("checkout session creation failed: %v", err)
		return "", NewError(KindCheckoutCreation, checkoutFailureMessage(err), err)
	}

	order := &models.Order{
		Currency:          Currency,
		Status:            models.OrderStatusPending,
		CheckoutSessionID: created.SessionID,
	}
	if err := order.SetItems(items); err != nil {
		log.Printf("order item snapshot failed: %v", err)
	} else if err := g.orders.Create(order); err != nil {
		// The session already exists on the processor side; losing the local
		// order row must not block the user from paying.
		log.Printf("order insert failed: %v", err)
	}

	return created.URL, nil
}

func checkoutFailureMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return "Failed to process payment. Please try again later."
	}
	return msg
}

// VerifyPayment confirms a checkout session with the processor once. On a
// verified session the matching pending order, when present, is completed
// with the customer details the processor reported.
func (g *Gateway) VerifyPayment(ctx context.Context, sessionID string) (*payment.Session, error) {
	sess, err := g.checkout.GetSession(ctx, sessionID)
	if err != nil {
		log.Printf("payment verification failed: %v", err)
		return nil, NewError(KindVerification, "Failed to verify payment. Please contact support.", err)
	}

	if sess.Verified {
		g.completeOrder(sess)
	}

	return sess, nil
}

func (g *Gateway) completeOrder(sess *payment.Session) {
	order, err := g.orders.GetByCheckoutSessionID(sess.SessionID)
	if err != nil {
		// Sessions created outside this deployment have no local order.
		log.Printf("no order for session %s: %v", sess.SessionID, err)
		return
	}
	if order.Status == models.OrderStatusCompleted {
		return
	}
	order.TotalAmount = sess.Amount
	order.Currency = sess.Currency
	order.MarkCompleted(sess.PaymentIntentID, sess.CustomerEmail, sess.CustomerName)
	if err := g.orders.Update(order); err != nil {
		log.Printf("order completion update failed: %v", err)
	}
}
