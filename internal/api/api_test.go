package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaharia-lab/topicast/internal/api"
	"github.com/shaharia-lab/topicast/internal/build"
	svcmocks "github.com/shaharia-lab/topicast/internal/service/mocks"
)

// testHarness bundles the mocks and router used by every test.
type testHarness struct {
	broadcastSvc *svcmocks.MockBroadcastService
	router       chi.Router
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()

	broadcastSvc := new(svcmocks.MockBroadcastService)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := api.New(broadcastSvc, logger)

	r := chi.NewRouter()
	srv.Mount(r)

	t.Cleanup(func() { broadcastSvc.AssertExpectations(t) })

	return &testHarness{
		broadcastSvc: broadcastSvc,
		router:       r,
	}
}

func (h *testHarness) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	w := h.do(httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var info build.Info
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, build.Current(), info)
}

func TestUnknownRoute(t *testing.T) {
	h := newHarness(t)

	w := h.do(httptest.NewRequest(http.MethodGet, "/notifications/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(httptest.NewRequest(http.MethodGet, "/notifications/broadcast", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
