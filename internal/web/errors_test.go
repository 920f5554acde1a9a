package web

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		resp ErrorResponse
		want string
	}{
		{
			name: "no details",
			resp: ErrorResponse{Error: "e", Message: "m"},
			want: `{"error":"e","message":"m"}`,
		},
		{
			name: "valid ids",
			resp: ErrorResponse{Error: "e", Message: "m", Details: ValidIDsDetails{ValidIDs: []string{"a", "b"}}},
			want: `{"error":"e","message":"m","validIds":["a","b"]}`,
		},
		{
			name: "empty valid ids stays an array",
			resp: ErrorResponse{Error: "e", Message: "m", Details: ValidIDsDetails{ValidIDs: []string{}}},
			want: `{"error":"e","message":"m","validIds":[]}`,
		},
		{
			name: "valid range",
			resp: ErrorResponse{Error: "e", Message: "m", Details: ValidRangeDetails{ValidRange: "1-600"}},
			want: `{"error":"e","message":"m","validRange":"1-600"}`,
		},
		{
			name: "available routes",
			resp: ErrorResponse{Error: "e", Message: "m", Details: AvailableRoutesDetails{AvailableRoutes: []string{"/"}}},
			want: `{"error":"e","message":"m","availableRoutes":["/"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.resp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestErrorResponse_FieldOrder(t *testing.T) {
	got, err := json.Marshal(ErrorResponse{
		Error:   errRouteNotFound,
		Message: msgRouteDoesNotExist,
		Details: AvailableRoutesDetails{AvailableRoutes: AvailableRoutes},
	})
	require.NoError(t, err)

	body := string(got)
	assert.Less(t, strings.Index(body, `"error"`), strings.Index(body, `"message"`))
	assert.Less(t, strings.Index(body, `"message"`), strings.Index(body, `"availableRoutes"`))
}

func TestResolveStatic(t *testing.T) {
	tests := []struct {
		urlPath string
		wantOK  bool
		want    string
	}{
		{"/images/a.gif", true, "static/images/a.gif"},
		{"/../../etc/passwd", true, "static/etc/passwd"},
		{"/", false, ""},
		{"", false, ""},
		{"/.env", false, ""},
		{"/images/.git/config", false, ""},
	}

	for _, tt := range tests {
		got, ok := resolveStatic("static", tt.urlPath)
		assert.Equal(t, tt.wantOK, ok, tt.urlPath)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, tt.urlPath)
		}
	}
}
