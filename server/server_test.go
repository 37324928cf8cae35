package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoforge/config"
	"autoforge/forge"
)

const launchIdea = "A motivating video for Gen Z founders launching new AI-driven wellness apps"

func newTestServer(t *testing.T, maxEntries int) (*Server, http.Handler) {
	t.Helper()
	cfg := config.Default()
	cfg.Store.MaxEntries = maxEntries
	srv, err := New(cfg, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.NoError(t, err)
	return srv, srv.Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type createEnvelope struct {
	Status string         `json:"status"`
	Data   createResponse `json:"data"`
}

type errorEnvelope struct {
	Status string       `json:"status"`
	Error  errorPayload `json:"error"`
}

func create(t *testing.T, h http.Handler, idea string) createResponse {
	t.Helper()
	body, err := json.Marshal(createRequest{Idea: idea})
	require.NoError(t, err)
	rec := do(t, h, http.MethodPost, "/api/forges", string(body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var env createEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)
	require.NotEmpty(t, env.Data.ID)
	return env.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorPayload {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status)
	return env.Error
}

func TestNew_RequiresLogger(t *testing.T) {
	_, err := New(config.Default(), nil)
	assert.Error(t, err)
}

func TestNew_RejectsInvalidStoreSize(t *testing.T) {
	cfg := config.Default()
	cfg.Store.MaxEntries = 0
	_, err := New(cfg, slog.Default())
	assert.Error(t, err)
}

func TestHealthz(t *testing.T) {
	_, h := newTestServer(t, 4)
	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestCreate_MatchesEngine(t *testing.T) {
	_, h := newTestServer(t, 4)
	got := create(t, h, launchIdea)

	want, err := forge.Generate(launchIdea)
	require.NoError(t, err)
	assert.Equal(t, want, got.Result)
}

func TestCreate_InvalidInput(t *testing.T) {
	_, h := newTestServer(t, 4)
	for _, body := range []string{`{"idea":""}`, `{"idea":"   \n\t"}`, `{}`} {
		rec := do(t, h, http.MethodPost, "/api/forges", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		e := decodeError(t, rec)
		assert.Equal(t, "invalid_input", e.Code)
		assert.Equal(t, forge.ErrInvalidInput.Error(), e.Message)
		assert.NotEmpty(t, e.RequestID)
	}
}

func TestCreate_InvalidJSON(t *testing.T) {
	_, h := newTestServer(t, 4)
	rec := do(t, h, http.MethodPost, "/api/forges", `{"idea":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_json", decodeError(t, rec).Code)
}

func TestCreate_BodyTooLarge(t *testing.T) {
	_, h := newTestServer(t, 4)
	body := `{"idea":"` + strings.Repeat("a", maxIdeaBytes+1) + `"}`
	rec := do(t, h, http.MethodPost, "/api/forges", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "too_large", decodeError(t, rec).Code)
}

func TestGet_RoundTrip(t *testing.T) {
	_, h := newTestServer(t, 4)
	created := create(t, h, launchIdea)

	rec := do(t, h, http.MethodGet, "/api/forges/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data record `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, created.ID, env.Data.ID)
	assert.Equal(t, launchIdea, env.Data.Idea)
	assert.Equal(t, created.Result, env.Data.Result)
	assert.False(t, env.Data.CreatedAt.IsZero())
}

func TestGet_NotFound(t *testing.T) {
	_, h := newTestServer(t, 4)
	for _, path := range []string{"/api/forges/missing", "/api/forges/missing/prompt", "/api/forges/missing/caption", "/api/forges/missing/export"} {
		rec := do(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "not_found", decodeError(t, rec).Code, path)
	}
}

func TestPromptAndCaption(t *testing.T) {
	_, h := newTestServer(t, 4)
	created := create(t, h, launchIdea)

	rec := do(t, h, http.MethodGet, "/api/forges/"+created.ID+"/prompt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, created.Result.Prompt.Formatted, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/forges/"+created.ID+"/caption", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.Result.Copywriting.Caption, rec.Body.String())
}

func TestExport(t *testing.T) {
	_, h := newTestServer(t, 4)
	created := create(t, h, launchIdea)
	base := "/api/forges/" + created.ID + "/export"

	rec := do(t, h, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/markdown"))
	assert.Contains(t, rec.Body.String(), "## Step 1 · Interpret")

	rec = do(t, h, http.MethodGet, base+"?format=html", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h2>")

	rec = do(t, h, http.MethodGet, base+"?format=flat", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<h2>")
	assert.Contains(t, rec.Body.String(), "font-size:20px")

	rec = do(t, h, http.MethodGet, base+"?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_format", decodeError(t, rec).Code)
}

func TestStore_EvictsOldest(t *testing.T) {
	srv, h := newTestServer(t, 2)
	first := create(t, h, "a tiktok tutorial on sourdough")
	create(t, h, "a linkedin story about hiring")
	create(t, h, "a youtube explainer on solar panels")

	assert.Equal(t, 2, srv.store.len())
	rec := do(t, h, http.MethodGet, "/api/forges/"+first.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestID_Propagates(t *testing.T) {
	_, h := newTestServer(t, 4)
	req := httptest.NewRequest(http.MethodPost, "/api/forges", bytes.NewBufferString(`{"idea":""}`))
	req.Header.Set(requestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
	assert.Equal(t, "req-123", decodeError(t, rec).RequestID)
}

func TestCORS_Preflight(t *testing.T) {
	_, h := newTestServer(t, 4)
	req := httptest.NewRequest(http.MethodOptions, "/api/forges", nil)
	req.Header.Set("Origin", "https://studio.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogsRequests(t *testing.T) {
	var buf bytes.Buffer
	srv, err := New(config.Default(), slog.New(slog.NewJSONHandler(&buf, nil)))
	require.NoError(t, err)
	create(t, srv.Routes(), launchIdea)

	out := buf.String()
	assert.Contains(t, out, `"msg":"forge created"`)
	assert.Contains(t, out, `"msg":"http request"`)
	assert.Contains(t, out, `"status":201`)
}
