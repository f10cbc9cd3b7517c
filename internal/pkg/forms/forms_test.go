package forms

import "testing"

func validBillingForm() BillingForm {
	return BillingForm{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		CardNumber: "4242424242424242",
		Expiry:     "12/27",
		CVV:        "123",
		Address:    "1 Main St",
		City:       "Berlin",
		PostalCode: "10115",
	}
}

func TestValidateBillingForm_Valid(t *testing.T) {
	if errs := Validate(validBillingForm()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestValidateBillingForm_CardNumber(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{in: "4242424242424242", valid: true},
		{in: "424242424242424", valid: false},  // 15 digits
		{in: "42424242424242424", valid: false}, // 17 digits
		{in: "4242 4242 4242 4242", valid: false},
		{in: "abcdabcdabcdabcd", valid: false},
	}

	for _, tt := range tests {
		form := validBillingForm()
		form.CardNumber = tt.in
		errs := Validate(form)
		if tt.valid && len(errs) != 0 {
			t.Fatalf("card %q: expected valid, got %+v", tt.in, errs)
		}
		if !tt.valid && errs["CardNumber"] != "Card number must be 16 digits" {
			t.Fatalf("card %q: message = %q", tt.in, errs["CardNumber"])
		}
	}
}

func TestValidateBillingForm_Expiry(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{in: "01/25", valid: true},
		{in: "12/99", valid: true},
		{in: "13/25", valid: false},
		{in: "00/25", valid: false},
		{in: "1/25", valid: false},
		{in: "12-25", valid: false},
		{in: "12/2025", valid: false},
	}

	for _, tt := range tests {
		form := validBillingForm()
		form.Expiry = tt.in
		errs := Validate(form)
		if tt.valid && len(errs) != 0 {
			t.Fatalf("expiry %q: expected valid, got %+v", tt.in, errs)
		}
		if !tt.valid && errs["Expiry"] != "Format: MM/YY" {
			t.Fatalf("expiry %q: message = %q", tt.in, errs["Expiry"])
		}
	}
}

func TestValidateBillingForm_CVV(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{in: "123", valid: true},
		{in: "1234", valid: true},
		{in: "12", valid: false},
		{in: "12345", valid: false},
		{in: "abc", valid: false},
	}

	for _, tt := range tests {
		form := validBillingForm()
		form.CVV = tt.in
		errs := Validate(form)
		if tt.valid && len(errs) != 0 {
			t.Fatalf("cvv %q: expected valid, got %+v", tt.in, errs)
		}
		if !tt.valid && errs["CVV"] != "CVV must be 3-4 digits" {
			t.Fatalf("cvv %q: message = %q", tt.in, errs["CVV"])
		}
	}
}

func TestValidateBillingForm_RequiredFields(t *testing.T) {
	errs := Validate(BillingForm{})
	if len(errs) != 8 {
		t.Fatalf("expected 8 field errors, got %d: %+v", len(errs), errs)
	}
	if errs["Name"] != "Name is required" {
		t.Fatalf("Name message = %q", errs["Name"])
	}
	if errs["PostalCode"] != "Postal code is required" {
		t.Fatalf("PostalCode message = %q", errs["PostalCode"])
	}
}

func TestValidateWaitlistForm(t *testing.T) {
	if errs := Validate(WaitlistForm{Email: "jane@example.com"}); len(errs) != 0 {
		t.Fatalf("expected valid email to pass, got %+v", errs)
	}

	errs := Validate(WaitlistForm{})
	if errs["Email"] != "Email is required" {
		t.Fatalf("empty email message = %q", errs["Email"])
	}

	errs = Validate(WaitlistForm{Email: "not-an-email"})
	if errs["Email"] != "Invalid email address" {
		t.Fatalf("bad email message = %q", errs["Email"])
	}
}
