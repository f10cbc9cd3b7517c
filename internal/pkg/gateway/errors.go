package gateway

import "errors"

// Kind classifies gateway failures. Backend-specific signals (driver error
// codes, processor response bodies) are mapped to a Kind at the gateway
// boundary so callers never probe error shapes.
type Kind int

const (
	// KindTransport is a network or backend failure with no more specific
	// classification. Recoverable by resubmitting.
	KindTransport Kind = iota
	// KindDuplicateEntry means the waitlist email is already registered.
	// Expected condition, not a fault.
	KindDuplicateEntry
	// KindCheckoutCreation means the processor refused to open a checkout
	// session. Message carries the processor's text when available.
	KindCheckoutCreation
	// KindVerification means a payment session could not be confirmed.
	KindVerification
)

// Error is the tagged failure type returned by every gateway operation.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match against a bare &Error{Kind: ...} target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// NewError builds a tagged gateway error. Alternative Service
// implementations return these so KindOf keeps working for their callers.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the Kind from a gateway error; transport is the fallback
// for anything unclassified.
func KindOf(err error) Kind {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return KindTransport
}

// IsDuplicateEntry reports whether the error is the expected
// already-registered condition.
func IsDuplicateEntry(err error) bool {
	return err != nil && KindOf(err) == KindDuplicateEntry
}
