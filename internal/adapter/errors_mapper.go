package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jmvaldez/portero/models"
)

// mapHTTPError converts a non-2xx response into a sentinel error
// wrapping the backend-provided message, so callers can both branch on
// the cause (errors.Is) and surface the message verbatim.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := backendMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusGone:
		return fmt.Errorf("%w: %s", ErrCodeExpired, msg)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrInvalidCode, msg)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServer, msg)
	default:
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// backendMessage pulls the user-facing message out of the uniform
// response envelope, falling back to the raw body when the body is not
// an envelope.
func backendMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var envelope models.APIResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	return body
}
