package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agencyforge/roi-proposal/internal/export"
	"github.com/agencyforge/roi-proposal/internal/logo"
	"github.com/agencyforge/roi-proposal/internal/projection"
	"github.com/agencyforge/roi-proposal/internal/session"
	"github.com/agencyforge/roi-proposal/internal/state"
	"github.com/agencyforge/roi-proposal/internal/store"
)

type stateEnvelope struct {
	State      state.FormState        `json:"state"`
	Projection *projection.Projection `json:"projection"`
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	st := store.NewStore(filepath.Join(t.TempDir(), "proposal-form.json"), "img.logo.test", nil)
	policy := logo.NewPolicy("img.logo.test", "key123", 200)
	sess := session.New(st, policy, 10*time.Millisecond, nil)
	t.Cleanup(sess.Close)
	exporter := export.NewPDFExporter(export.DefaultOptions(), nil)
	return NewHandler(sess, exporter, nil, "test")
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) stateEnvelope {
	t.Helper()
	var envelope stateEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return envelope
}

func postJSON(t *testing.T, h http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleStateReturnsStartupProjection(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	envelope := decodeState(t, rec)
	if envelope.State.ClientName != "Prospect Inc." {
		t.Errorf("ClientName = %q, expected default", envelope.State.ClientName)
	}
	if envelope.Projection == nil {
		t.Errorf("expected the eager startup projection in the response")
	}
}

func TestHandleUpdateDispatchesAction(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h, "/api/editor/update", map[string]interface{}{
		"action": "setField",
		"field":  "clientName",
		"value":  "Acme Corp",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200: %s", rec.Code, rec.Body.String())
	}
	if envelope := decodeState(t, rec); envelope.State.ClientName != "Acme Corp" {
		t.Errorf("ClientName = %q after update", envelope.State.ClientName)
	}
}

func TestHandleUpdateBulletActions(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h, "/api/editor/update", map[string]interface{}{"action": "appendBullet"})
	envelope := decodeState(t, rec)
	if len(envelope.State.PackageBullets) != 4 {
		t.Fatalf("got %d bullets after append, expected 4", len(envelope.State.PackageBullets))
	}

	rec = postJSON(t, h, "/api/editor/update", map[string]interface{}{
		"action": "removeBullet",
		"index":  0,
	})
	envelope = decodeState(t, rec)
	if len(envelope.State.PackageBullets) != 3 {
		t.Fatalf("got %d bullets after remove, expected 3", len(envelope.State.PackageBullets))
	}
	if envelope.State.PackageBullets[0] != "Ongoing testing & optimization" {
		t.Errorf("bullets did not shift left: %v", envelope.State.PackageBullets)
	}
}

func TestHandleUpdateRejectsUnknownAction(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h, "/api/editor/update", map[string]interface{}{"action": "explode"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400 for unknown action", rec.Code)
	}
}

func TestHandleCalculateAndReset(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h, "/api/editor/calculate", map[string]interface{}{})
	if rec.Code != http.StatusOK {
		t.Fatalf("calculate status = %d", rec.Code)
	}
	envelope := decodeState(t, rec)
	if envelope.Projection == nil || envelope.Projection.ExtraRevenueTimeframe != 45000 {
		t.Errorf("projection = %+v, expected default-scenario figures", envelope.Projection)
	}

	rec = postJSON(t, h, "/api/editor/reset", map[string]interface{}{})
	if rec.Code != http.StatusOK {
		t.Fatalf("reset status = %d", rec.Code)
	}
	envelope = decodeState(t, rec)
	if envelope.Projection != nil {
		t.Errorf("expected null projection after reset, got %+v", envelope.Projection)
	}
}

func TestHandleExportSummary(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/export/summary", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Proposal for: Prospect Inc.") {
		t.Errorf("summary body = %q", rec.Body.String())
	}
}

func TestHandleExportSummaryWithoutProjection(t *testing.T) {
	h := newTestHandler(t)

	// Reset clears the projection; the summary needs a computed one.
	postJSON(t, h, "/api/editor/reset", map[string]interface{}{})

	req := httptest.NewRequest(http.MethodGet, "/api/export/summary", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, expected 409 with no projection", rec.Code)
	}
}

func TestHandlePreviewRendersHTML(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/preview", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "Ad Creative ROI Proposal for Prospect Inc.") {
		t.Errorf("preview missing proposal heading")
	}
}

func TestHandleExportScript(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/export/script", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Prospect Inc.") {
		t.Errorf("script body = %q", rec.Body.String())
	}
}

func TestHandleVersion(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode version: %v", err)
	}
	if payload["version"] != "test" {
		t.Errorf("version = %q", payload["version"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/state"},
		{http.MethodGet, "/api/editor/update"},
		{http.MethodGet, "/api/editor/calculate"},
		{http.MethodPost, "/api/export/summary"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("status = %d, expected 405", rec.Code)
			}
		})
	}
}
