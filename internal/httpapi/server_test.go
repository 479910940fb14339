package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"academy-api/internal/auth"
	"academy-api/internal/clock/clocktest"
	"academy-api/internal/logging"
	"academy-api/internal/media"
	"academy-api/internal/media/mediatest"
	"academy-api/internal/metrics"
	"academy-api/internal/models"
)

const (
	testSecret   = "0123456789abcdef-http-tests"
	testEmail    = "coach@academy.id"
	testPassword = "rahasia123"
)

var start = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type testServer struct {
	handler   http.Handler
	clock     *clocktest.Mock
	tokens    *auth.Tokens
	revoker   *memRevoker
	players   *fakePlayers
	coaches   *fakeCoaches
	schedules *fakeSchedules
	uploader  *mediatest.Uploader
	metrics   *metrics.Metrics
}

type serverOption func(*Deps)

func withUploader(u media.Uploader) serverOption {
	return func(d *Deps) { d.Uploader = u }
}

func withDB(p Pinger) serverOption {
	return func(d *Deps) { d.DB = p }
}

func withOrigins(origins ...string) serverOption {
	return func(d *Deps) { d.AllowedOrigins = origins }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	ts := &testServer{
		clock:     clocktest.NewMock(start),
		revoker:   &memRevoker{revoked: map[string]time.Duration{}},
		players:   &fakePlayers{},
		coaches:   &fakeCoaches{},
		schedules: &fakeSchedules{},
		uploader:  mediatest.NewUploader(t),
		metrics:   metrics.New(),
	}
	ts.tokens = auth.NewTokens(testSecret, time.Hour, ts.clock)

	creds := fakeCreds{testEmail: {ID: 1, Email: testEmail, PasswordHash: string(hash)}}
	deps := Deps{
		Logger:    logging.Discard(),
		Clock:     ts.clock,
		Auth:      auth.NewService(creds, ts.tokens, ts.revoker, ts.clock),
		Players:   ts.players,
		Coaches:   ts.coaches,
		Schedules: ts.schedules,
		Uploader:  ts.uploader,
		DB:        fakePinger{},
		Metrics:   ts.metrics,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	router, err := NewRouter(deps)
	require.NoError(t, err)
	ts.handler = router
	return ts
}

// token issues a valid bearer token for the test admin.
func (ts *testServer) token(t *testing.T) string {
	t.Helper()
	tok, err := ts.tokens.Issue(models.Credential{ID: 1, Email: testEmail})
	require.NoError(t, err)
	return tok.Value
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(req, token)
}

type upload struct {
	filename string
	content  []byte
}

func (ts *testServer) multipart(t *testing.T, method, path string, fields map[string]string, file *upload, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile(photoField, file.filename)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return ts.do(req, token)
}

func (ts *testServer) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

type errorBody struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
