package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	pkgerrors "github.com/skibidoo/storefront/pkg/errors"
)

// rejection is a non-2xx answer from the backend.
type rejection struct {
	status  int
	message string
	body    string
}

func (r *rejection) Error() string {
	if r.message != "" {
		return fmt.Sprintf("backend responded %d: %s", r.status, r.message)
	}
	return fmt.Sprintf("backend responded %d: %s", r.status, r.body)
}

func (r *rejection) UpstreamStatus() int { return r.status }

func (r *rejection) UpstreamMessage() string { return r.message }

func newRejection(op string, status int, raw []byte) *pkgerrors.Error {
	rej := &rejection{status: status, body: strings.TrimSpace(string(raw))}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		rej.message = strings.TrimSpace(payload.Message)
	}

	msg := rej.message
	if msg == "" {
		msg = op + " rejected by backend"
	}
	return pkgerrors.Wrap(codeForStatus(status), rej, msg).
		WithDetails(map[string]any{"upstream_status": status})
}

func codeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return pkgerrors.CodeValidation
	case http.StatusConflict:
		return pkgerrors.CodeConflict
	case http.StatusTooManyRequests:
		return pkgerrors.CodeRateLimit
	default:
		return pkgerrors.CodeDependency
	}
}

// RejectionMessage returns the message the backend attached to a non-2xx
// response. ok is false for transport and decoding failures, where the
// backend never answered with a status.
func RejectionMessage(err error) (message string, ok bool) {
	var rej *rejection
	if errors.As(err, &rej) {
		return rej.message, true
	}
	return "", false
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	var rej *rejection
	return errors.As(err, &rej) && rej.status == http.StatusNotFound
}

// emptyRecord reports a 2xx answer whose body decoded to no record, such as a
// literal null. It reads as not found.
func emptyRecord(op string) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, op+": backend returned an empty record")
}
