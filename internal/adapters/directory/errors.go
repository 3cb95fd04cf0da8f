package directory

import (
	"encoding/json"
	"net/http"
	"strings"

	"eventboard/internal/domain"
)

const (
	// alreadyRegisteredCode is the machine-readable code checked first.
	alreadyRegisteredCode = "ALREADY_REGISTERED"
	// alreadyRegisteredText is matched in the message when no code is sent.
	alreadyRegisteredText = "has already been registered"
)

// decodeError turns a non-2xx response into a *domain.RemoteError.
func decodeError(status int, body []byte) error {
	var payload errorResponse
	_ = json.Unmarshal(unwrapData(body, "message"), &payload)
	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}
	if msg == "" && len(body) > 0 && body[0] != '{' {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &domain.RemoteError{
		Kind:       classify(status, payload.Code, msg),
		StatusCode: status,
		Code:       payload.Code,
		Message:    msg,
	}
}

func classify(status int, code, message string) error {
	switch {
	case strings.EqualFold(code, alreadyRegisteredCode),
		strings.Contains(strings.ToLower(message), alreadyRegisteredText):
		return domain.ErrAlreadyRegistered
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusConflict:
		return domain.ErrConflict
	case status >= http.StatusInternalServerError:
		return domain.ErrNetwork
	default:
		return domain.ErrValidation
	}
}

func networkError(err error) error {
	return &domain.RemoteError{Kind: domain.ErrNetwork, Message: err.Error()}
}
