package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ByLCY/faktura/export"
	"github.com/ByLCY/faktura/invoice"
	"github.com/ByLCY/faktura/layout"
	"github.com/ByLCY/faktura/wiretext"
)

const (
	maxBodyBytes = 1 << 20
	headerPages  = "X-Invoice-Pages"
)

type Handler struct {
	gen             *export.Generator
	defaultCurrency string
	logger          *zap.Logger
}

func NewHandler(gen *export.Generator, defaultCurrency string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		gen:             gen,
		defaultCurrency: strings.ToUpper(strings.TrimSpace(defaultCurrency)),
		logger:          logger,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/pdf", h.pdf)
	r.Post("/layout", h.layout)
}

type renderRequest struct {
	Invoice  invoice.Invoice   `json:"invoice"`
	Settings *invoice.Settings `json:"settings,omitempty"`
	// WireText is pasted bank text, used when the invoice has no structured wire instructions.
	WireText string `json:"wireText,omitempty"`
}

type totalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type layoutResponse struct {
	FileName string         `json:"fileName"`
	Totals   totalsResponse `json:"totals"`
	Layout   *layout.Result `json:"layout"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Section string `json:"section,omitempty"`
}

func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	inv, settings, err := h.decode(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	doc, err := h.gen.Generate(r.Context(), inv, settings)
	if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	w.Header().Set(headerPages, fmt.Sprint(doc.Pages))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Bytes); err != nil {
		h.logger.Warn("failed to write pdf", zap.Error(err))
	}
}

func (h *Handler) layout(w http.ResponseWriter, r *http.Request) {
	inv, settings, err := h.decode(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, resolved, err := h.gen.Layout(r.Context(), inv, settings)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{
		FileName: h.gen.FileName(resolved),
		Totals: totalsResponse{
			Subtotal: resolved.Subtotal(),
			Tax:      resolved.TaxAmount(),
			Total:    resolved.Total(),
		},
		Layout: res,
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (invoice.Invoice, *invoice.Settings, error) {
	var req renderRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return invoice.Invoice{}, nil, fmt.Errorf("请求体无效: %w", err)
	}

	inv := req.Invoice
	if strings.TrimSpace(req.WireText) != "" && inv.WireInstructions.IsZero() {
		wire, err := wiretext.Parse(req.WireText)
		if err != nil {
			return invoice.Invoice{}, nil, err
		}
		inv.WireInstructions = wire
	}

	return inv, invoice.WithDefaultCurrency(req.Settings, h.defaultCurrency), nil
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, layout.ErrMissingCurrency):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("invoice request failed", zap.Error(err))
	}

	resp := errorResponse{Error: err.Error()}
	var se *layout.SectionError
	if errors.As(err, &se) {
		resp.Section = se.Section
	}
	writeJSON(w, status, resp)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
