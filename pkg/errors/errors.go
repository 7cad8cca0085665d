package errors

import "fmt"

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation is returned when request input fails validation before any
// network call is made
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrMalformedResponse is returned when a Shopify response is missing data the
// query asked for (e.g. no "collection" object for a known collection ID)
type ErrMalformedResponse struct {
	Query  string
	Detail string
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed upstream response for %s: %s", e.Query, e.Detail)
}

// ErrUpstream is returned when the Shopify API call itself fails (transport,
// non-200 status, or top-level GraphQL errors)
type ErrUpstream struct {
	Operation string
	Err       error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("shopify %s failed: %v", e.Operation, e.Err)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Err
}
