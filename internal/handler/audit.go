package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mlorentedev/revisor/internal/adapter"
	"github.com/mlorentedev/revisor/internal/audit"
	"github.com/mlorentedev/revisor/internal/metrics"
)

const maxTextLength = 20000

type auditRequest struct {
	Src     string `json:"src"`
	Tgt     string `json:"tgt"`
	Style   string `json:"style"`
	ModelID string `json:"model_id"`
}

type auditResponse struct {
	HTML      string `json:"html"`
	Model     string `json:"model"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// Options configures the audit pipeline shared by every request.
type Options struct {
	// DefaultModel is used when the request names no model_id.
	DefaultModel string
	// PromptStyle selects strict (system prompt + JSON mode) or freeform
	// (single user message) prompting.
	PromptStyle audit.Style
	// StyleGuide replaces audit.DefaultStyleGuide when non-empty. A style
	// field in the request overrides both.
	StyleGuide string
}

// Audit runs the full pipeline for one request: validate, build the prompt,
// call the model once, parse the reply, render HTML. Every upstream or
// parse failure maps to a 500; only bad input maps to a 4xx.
func Audit(adapters map[string]adapter.LLMAdapter, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req auditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if req.Src == "" {
			writeError(w, http.StatusBadRequest, "src is required")
			return
		}
		if req.Tgt == "" {
			writeError(w, http.StatusBadRequest, "tgt is required")
			return
		}
		if len(req.Src) > maxTextLength {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("src too long: %d characters (max %d)", len(req.Src), maxTextLength))
			return
		}
		if len(req.Tgt) > maxTextLength {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("tgt too long: %d characters (max %d)", len(req.Tgt), maxTextLength))
			return
		}

		modelID := req.ModelID
		if modelID == "" {
			modelID = opts.DefaultModel
		}
		a, ok := adapters[modelID]
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown model: %s", modelID))
			return
		}

		guide := req.Style
		if guide == "" {
			guide = opts.StyleGuide
		}
		system, user := audit.BuildPrompt(req.Src, req.Tgt, guide, opts.PromptStyle)

		metrics.InputChars.Observe(float64(len(req.Src) + len(req.Tgt)))

		start := time.Now()
		reply, err := a.Complete(r.Context(), adapter.Request{
			System:   system,
			User:     user,
			JSONMode: opts.PromptStyle == audit.StyleStrict,
		})
		elapsed := time.Since(start)

		if err != nil {
			if errors.Is(err, adapter.ErrNotConfigured) {
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("server misconfigured: %v", err))
				return
			}
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("audit failed: %v", err))
			return
		}

		metrics.AuditDuration.WithLabelValues(modelID).Observe(elapsed.Seconds())

		rep, err := audit.ParseReport(reply)
		if err != nil {
			metrics.ParseFailures.Inc()
			writeError(w, http.StatusInternalServerError, "failed to parse model reply as JSON")
			return
		}
		metrics.ReportRows.Observe(float64(len(rep.Rows)))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(auditResponse{
			HTML:      audit.RenderHTML(rep),
			Model:     modelID,
			ElapsedMs: elapsed.Milliseconds(),
		})
	}
}
