package models

import "testing"

func TestItemsTotalCents(t *testing.T) {
	tests := []struct {
		name  string
		items []OrderItem
		want  int64
	}{
		{
			name:  "single item",
			items: []OrderItem{{Name: "Companion Plus Plan", Price: 9.99, Quantity: 1}},
			want:  999,
		},
		{
			name:  "quantity multiplies",
			items: []OrderItem{{Name: "Companion Pro Plan", Price: 19.99, Quantity: 2}},
			want:  3998,
		},
		{
			name:  "zero quantity counts as one",
			items: []OrderItem{{Name: "Companion Plus Plan", Price: 9.99}},
			want:  999,
		},
		{
			name: "multiple items sum",
			items: []OrderItem{
				{Name: "Companion Plus Plan", Price: 9.99, Quantity: 1},
				{Name: "Companion Pro Plan", Price: 19.99, Quantity: 1},
			},
			want: 2998,
		},
		{
			name:  "empty",
			items: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		if got := ItemsTotalCents(tt.items); got != tt.want {
			t.Fatalf("%s: ItemsTotalCents = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestOrderSetItemsRoundTrip(t *testing.T) {
	order := &Order{}
	in := []OrderItem{{Name: "Companion Plus Plan", Price: 9.99, Quantity: 1}}

	if err := order.SetItems(in); err != nil {
		t.Fatalf("SetItems failed: %v", err)
	}
	if order.TotalAmount != 999 {
		t.Fatalf("TotalAmount = %d, want 999", order.TotalAmount)
	}

	out, err := order.Items()
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if len(out) != 1 || out[0].Name != in[0].Name || out[0].Price != in[0].Price {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestOrderItemsEmpty(t *testing.T) {
	order := &Order{}
	items, err := order.Items()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items != nil {
		t.Fatalf("expected nil items for empty snapshot, got %+v", items)
	}
}

func TestOrderMarkCompleted(t *testing.T) {
	order := &Order{Status: OrderStatusPending}
	order.MarkCompleted("pi_123", "jane@example.com", "Jane Doe")

	if order.Status != OrderStatusCompleted {
		t.Fatalf("status = %q, want %q", order.Status, OrderStatusCompleted)
	}
	if order.PaymentIntentID != "pi_123" {
		t.Fatalf("payment intent = %q, want pi_123", order.PaymentIntentID)
	}
	if order.CustomerEmail != "jane@example.com" || order.CustomerName != "Jane Doe" {
		t.Fatalf("customer details not recorded: %q %q", order.CustomerEmail, order.CustomerName)
	}
	if order.CompletedAt == nil {
		t.Fatalf("expected CompletedAt to be set")
	}
}
