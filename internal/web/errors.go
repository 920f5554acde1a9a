package web

// errors.go provides the single error body used by every non-2xx response.
//
// Each route adds its own extra payload (the valid ids, the valid range, the
// route list). Those payloads are modeled as ErrorDetails variants and
// flattened into the top-level object, so clients see
//
//	{"error": "...", "message": "...", "validIds": [...]}

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JonMunkholm/nftmeta/internal/logging"
)

// ErrorResponse represents the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string
	Message string
	Details ErrorDetails
}

// ErrorDetails is a route-specific payload merged into an ErrorResponse.
type ErrorDetails interface {
	errorDetails()
}

// ValidIDsDetails lists the ids accepted by the /nft routes.
type ValidIDsDetails struct {
	ValidIDs []string `json:"validIds"`
}

// ValidRangeDetails states the accepted Power Cube id range.
type ValidRangeDetails struct {
	ValidRange string `json:"validRange"`
}

// AvailableRoutesDetails lists the documented routes.
type AvailableRoutesDetails struct {
	AvailableRoutes []string `json:"availableRoutes"`
}

func (ValidIDsDetails) errorDetails()        {}
func (ValidRangeDetails) errorDetails()      {}
func (AvailableRoutesDetails) errorDetails() {}

// MarshalJSON writes error and message first, then the Details fields in
// their declared order.
func (e ErrorResponse) MarshalJSON() ([]byte, error) {
	head, err := json.Marshal(struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}{e.Error, e.Message})
	if err != nil {
		return nil, err
	}
	if e.Details == nil {
		return head, nil
	}

	extra, err := json.Marshal(e.Details)
	if err != nil {
		return nil, err
	}
	if len(extra) < 2 || extra[0] != '{' {
		return nil, fmt.Errorf("error details must encode as an object, got %s", extra)
	}
	if len(extra) == 2 {
		return head, nil
	}

	out := make([]byte, 0, len(head)+len(extra))
	out = append(out, head[:len(head)-1]...)
	out = append(out, ',')
	out = append(out, extra[1:]...)
	return out, nil
}

// respondError logs the rejection and writes resp with the given status.
func respondError(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	logging.FromContext(r.Context()).Debug("request rejected",
		"path", r.URL.Path,
		"status", status,
		"error", resp.Error,
		"message", resp.Message,
	)
	writeJSON(w, r, status, resp)
}
