package service

// ValidationError is returned when request data fails validation. Its
// message is safe to return to the caller as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DeliveryError is returned when the push provider rejects a message or
// cannot be reached. Its text is the provider's own message.
type DeliveryError struct {
	Provider string
	Err      error
}

func (e *DeliveryError) Error() string {
	return e.Err.Error()
}

func (e *DeliveryError) Unwrap() error { return e.Err }
