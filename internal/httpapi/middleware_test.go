package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy-api/internal/apperr"
	"academy-api/internal/auth"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"bearer abc", "abc", nil},
		{"  Bearer   abc  ", "abc", nil},
		{"", "", auth.ErrMissingToken},
		{"abc", "", auth.ErrMalformedHeader},
		{"Token abc", "", auth.ErrMalformedHeader},
		{"Bearer", "", auth.ErrMalformedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := bearerToken(tt.header)
			if tt.wantErr != nil {
				apperr.AssertCode(t, err, apperr.CodeUnauthorized)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t)

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rr := ts.do(req, "")
		assert.Equal(t, "req-123", rr.Header().Get(RequestIDHeader))
	})

	t.Run("assigned", func(t *testing.T) {
		rr := ts.request(http.MethodGet, "/", nil, "")
		assert.Len(t, rr.Header().Get(RequestIDHeader), 36)
	})
}

func TestErrors_UpstreamIsSanitized(t *testing.T) {
	ts := newTestServer(t)
	ts.players.err = apperr.Upstream("postgres", errors.New("password authentication failed for user \"academy\""))

	req := httptest.NewRequest(http.MethodGet, "/api/pemain", nil)
	req.Header.Set(RequestIDHeader, "trace-me")
	rr := ts.do(req, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")
	assert.Equal(t, errorBody{
		Message:   "upstream service failure",
		Code:      apperr.CodeUpstream,
		RequestID: "trace-me",
	}, decode[errorBody](t, rr))
}

func TestErrors_UncodedIsInternal(t *testing.T) {
	ts := newTestServer(t)
	ts.players.err = errors.New("something odd")

	rr := ts.request(http.MethodGet, "/api/pemain", nil, "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decode[errorBody](t, rr)
	assert.Equal(t, apperr.CodeInternal, body.Code)
	assert.Equal(t, "internal server error", body.Message)
}

func TestRecovery(t *testing.T) {
	ts := newTestServer(t)
	ts.players.panics = true

	rr := ts.request(http.MethodGet, "/api/pemain", nil, "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "boom")
	assert.Equal(t, apperr.CodeInternal, decode[errorBody](t, rr).Code)

	// the server keeps serving
	ts.players.panics = false
	assert.Equal(t, http.StatusOK, ts.request(http.MethodGet, "/api/pemain", nil, "").Code)
}

func TestNoRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/unknown", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"not found","code":"NOT_FOUND"}`, rr.Body.String())
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, withOrigins("https://*.vercel.app", "http://localhost:5173"))

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://academy-web.vercel.app", true},
		{"http://localhost:5173", true},
		{"https://evil.example.com", false},
		{"https://a.b.vercel.app", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/pemain", nil)
			req.Header.Set("Origin", tt.origin)
			rr := ts.do(req, "")

			if tt.allowed {
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Equal(t, tt.origin, rr.Header().Get("Access-Control-Allow-Origin"))
				return
			}
			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/pemain", nil)
		req.Header.Set("Origin", "https://academy-web.vercel.app")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
		rr := ts.do(req, "")

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})
}

func TestCORS_AllowAll(t *testing.T) {
	ts := newTestServer(t, withOrigins("*"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anything.example")
	rr := ts.do(req, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_InvalidPattern(t *testing.T) {
	_, err := CORS([]string{"https://[unclosed"})
	apperr.AssertCode(t, err, "CORS_ORIGIN_INVALID")
}

func TestNewRouter_MissingDeps(t *testing.T) {
	_, err := NewRouter(Deps{})
	apperr.AssertCode(t, err, "ROUTER_DEPS_MISSING")
}
