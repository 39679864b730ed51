package status

import "errors"

// Response is the JSON structure used when reporting an error to an API client.
//
// Execution traces are never included; they contain function names and file
// paths.
type Response struct {
	// Code is the classification code.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Category tells the client how to treat the failure.
	Category string `json:"category"`
}

// ToJSON converts any error to a Response suitable for JSON serialization.
// Returns nil if err is nil.
//
// Unclassified errors report CodeUnknown and CategoryInternal.
func ToJSON(err error) *Response {
	if err == nil {
		return nil
	}

	code := CodeOf(err)
	message := err.Error()

	// Report the classified error's own message rather than any outer wrapping.
	var c Classifier
	if errors.As(err, &c) {
		message = c.Error()
	}

	return &Response{
		Code:     string(code),
		Message:  message,
		Category: string(code.Category()),
	}
}
