// Package server exposes the proposal editor over HTTP: a JSON API for state,
// actions, and projections, export endpoints, and the embedded static editor
// page.
package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/agencyforge/roi-proposal/internal/document"
	"github.com/agencyforge/roi-proposal/internal/export"
	"github.com/agencyforge/roi-proposal/internal/projection"
	"github.com/agencyforge/roi-proposal/internal/session"
	"github.com/agencyforge/roi-proposal/internal/state"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	session  *session.Session
	exporter *export.PDFExporter
	logger   *zap.Logger
	version  string
}

// NewHandler constructs the HTTP handler that serves the editor UI and the
// proposal API.
func NewHandler(sess *session.Session, exporter *export.PDFExporter, logger *zap.Logger, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{session: sess, exporter: exporter, logger: logger, version: trimmedVersion}

	mux := http.NewServeMux()

	// Editor state and actions
	mux.HandleFunc("/api/state", h.handleState)
	mux.HandleFunc("/api/editor/update", h.handleUpdate)
	mux.HandleFunc("/api/editor/calculate", h.handleCalculate)
	mux.HandleFunc("/api/editor/reset", h.handleReset)

	// Rendered document and exports
	mux.HandleFunc("/api/preview", h.handlePreview)
	mux.HandleFunc("/api/export/summary", h.handleExportSummary)
	mux.HandleFunc("/api/export/script", h.handleExportScript)
	mux.HandleFunc("/api/export/pdf", h.handleExportPDF)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (editor UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

type stateResponse struct {
	State      state.FormState        `json:"state"`
	Projection *projection.Projection `json:"projection"`
}

// updateRequest is one dispatched editor action.
type updateRequest struct {
	Action string `json:"action"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
	Index  int    `json:"index,omitempty"`
}

func (h *handler) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, stateResponse{
		State:      h.session.State(),
		Projection: h.session.Projection(),
	})
}

func (h *handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode action: %v", err), "server.handleUpdate")
		return
	}

	action, err := toAction(req)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleUpdate")
		return
	}

	h.session.Dispatch(action)

	h.writeJSON(w, http.StatusOK, stateResponse{
		State:      h.session.State(),
		Projection: h.session.Projection(),
	})
}

func toAction(req updateRequest) (state.Action, error) {
	switch req.Action {
	case "setField":
		return state.SetField{Field: req.Field, Value: req.Value}, nil
	case "setBullet":
		return state.SetBullet{Index: req.Index, Value: req.Value}, nil
	case "appendBullet":
		return state.AppendBullet{}, nil
	case "removeBullet":
		return state.RemoveBullet{Index: req.Index}, nil
	case "reset":
		return state.Reset{}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", req.Action)
	}
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	p := h.session.Calculate()

	h.logger.Info("projection computed",
		zap.String("op", "server.handleCalculate"),
		zap.Float64("extraRevenueTimeframe", p.ExtraRevenueTimeframe),
	)

	h.writeJSON(w, http.StatusOK, stateResponse{
		State:      h.session.State(),
		Projection: &p,
	})
}

func (h *handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.session.Dispatch(state.Reset{})

	h.writeJSON(w, http.StatusOK, stateResponse{
		State:      h.session.State(),
		Projection: h.session.Projection(),
	})
}

func (h *handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	html, err := document.HTML(h.session.State(), h.session.Projection())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render proposal: %v", err), "server.handlePreview")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (h *handler) handleExportSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	proj := h.session.Projection()
	if proj == nil {
		h.respondError(w, http.StatusConflict, "no projection computed yet", "server.handleExportSummary")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(document.Summary(h.session.State(), *proj)))
}

func (h *handler) handleExportScript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	lines := document.Script(h.session.State(), h.session.Projection())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(strings.Join(lines, "\n\n")))
}

func (h *handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	formState := h.session.State()
	html, err := document.HTML(formState, h.session.Projection())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render proposal: %v", err), "server.handleExportPDF")
		return
	}

	pdf, err := h.exporter.Render(html)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to generate PDF: %v", err), "server.handleExportPDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(formState.ClientName)))
	_, _ = w.Write(pdf)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("editor request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
