package pesapal

import (
	"errors"
	"fmt"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/tidwall/gjson"
)

// APIError is a definitive failure reported by Pesapal. It is never retried.
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request rejected"
	}
	if e.Code != "" {
		return fmt.Sprintf("pesapal: %s (code=%s, http=%d)", msg, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("pesapal: %s (http=%d)", msg, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return domain.ErrProviderRejected
}

// IsTransient reports whether err is worth another attempt.
func IsTransient(err error) bool {
	return errors.Is(err, domain.ErrProviderUnavailable)
}

// bodyError extracts the "error" object Pesapal embeds in otherwise successful
// responses. It returns nil when the object is absent or empty.
func bodyError(statusCode int, body []byte) *APIError {
	res := gjson.GetBytes(body, "error")
	if !res.Exists() || res.Type == gjson.Null {
		return nil
	}
	apiErr := &APIError{
		StatusCode: statusCode,
		Type:       res.Get("error_type").String(),
		Code:       res.Get("code").String(),
		Message:    res.Get("message").String(),
	}
	if apiErr.Code == "" && apiErr.Message == "" {
		return nil
	}
	return apiErr
}
