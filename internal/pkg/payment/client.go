package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/entrext/companion/app/models"
)

const defaultAPIBaseURL = "https://api.stripe.com"

// Client talks to the hosted payment processor's checkout API. One round
// trip per call, no internal retry; the transport timeout is the only limit.
type Client struct {
	SecretKey  string
	APIBaseURL string

	// SuccessURL and CancelURL are where the hosted checkout sends the user
	// back. SuccessURL carries the session id placeholder the processor
	// substitutes on redirect.
	SuccessURL string
	CancelURL  string

	HTTPClient *http.Client
}

// Session is the processor's view of a checkout session, read back once when
// the user returns from the hosted page. Amount is in minor units.
type Session struct {
	SessionID       string
	Verified        bool
	Amount          int64
	Currency        string
	CustomerEmail   string
	CustomerName    string
	PaymentIntentID string
}

// CreatedSession is the result of opening a new checkout session.
type CreatedSession struct {
	SessionID string
	URL       string
}

// NewClient builds a processor client from explicit configuration. The
// secret key requirement is checked at boot by config.Validate, so an empty
// key here is a programming error surfaced per call.
func NewClient(secretKey, apiBaseURL, publicDomain string) *Client {
	base := strings.TrimRight(apiBaseURL, "/")
	if base == "" {
		base = defaultAPIBaseURL
	}
	domain := strings.TrimRight(publicDomain, "/")

	return &Client{
		SecretKey:  strings.TrimSpace(secretKey),
		APIBaseURL: base,
		SuccessURL: domain + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  domain + "/pricing",
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// errorMessage digs the processor's human-readable message out of an error
// response body, falling back to the raw body.
func errorMessage(body []byte) string {
	var raw struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &raw); err == nil && strings.TrimSpace(raw.Error.Message) != "" {
		return strings.TrimSpace(raw.Error.Message)
	}
	return strings.TrimSpace(string(body))
}

// CreateCheckoutSession opens a hosted checkout session for the given line
// items in the given currency and returns its id and redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, items []models.OrderItem, currency string) (*CreatedSession, error) {
	if c.SecretKey == "" {
		return nil, errors.New("checkout secret key is not configured")
	}
	if len(items) == 0 {
		return nil, errors.New("at least one line item is required")
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.SuccessURL)
	form.Set("cancel_url", c.CancelURL)
	form.Set("payment_method_types[0]", "card")
	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		form.Set(prefix+"[quantity]", strconv.Itoa(qty))
		form.Set(prefix+"[price_data][currency]", currency)
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(int64(item.Price*100+0.5), 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIBaseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("checkout session creation failed: %s", errorMessage(body))
	}

	var out struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.URL) == "" {
		return nil, errors.New("no checkout URL received")
	}

	return &CreatedSession{SessionID: out.ID, URL: out.URL}, nil
}

// GetSession retrieves a checkout session by id. Verified reports whether
// the processor considers the session paid.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	if c.SecretKey == "" {
		return nil, errors.New("checkout secret key is not configured")
	}
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return nil, errors.New("session id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIBaseURL+"/v1/checkout/sessions/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("checkout session lookup failed: %s", errorMessage(body))
	}

	var raw struct {
		ID              string `json:"id"`
		PaymentStatus   string `json:"payment_status"`
		AmountTotal     int64  `json:"amount_total"`
		Currency        string `json:"currency"`
		PaymentIntent   string `json:"payment_intent"`
		CustomerDetails struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"customer_details"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw.ID) == "" {
		return nil, errors.New("checkout session response missing id")
	}

	return &Session{
		SessionID:       raw.ID,
		Verified:        strings.EqualFold(raw.PaymentStatus, "paid"),
		Amount:          raw.AmountTotal,
		Currency:        raw.Currency,
		CustomerEmail:   strings.TrimSpace(raw.CustomerDetails.Email),
		CustomerName:    strings.TrimSpace(raw.CustomerDetails.Name),
		PaymentIntentID: strings.TrimSpace(raw.PaymentIntent),
	}, nil
}
