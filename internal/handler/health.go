package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mlorentedev/revisor/internal/adapter"
	"github.com/mlorentedev/revisor/internal/metrics"
)

type adapterStatus struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status   string                   `json:"status"`
	Version  string                   `json:"version"`
	Adapters map[string]adapterStatus `json:"adapters"`
}

// Health reports adapter availability. Probing happens here, not per audit
// request, so an unreachable backend surfaces in monitoring without slowing
// the audit path.
func Health(adapters map[string]adapter.LLMAdapter, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make(map[string]adapterStatus, len(adapters))
		for id, a := range adapters {
			s := adapterStatus{Available: a.Available()}
			if !s.Available {
				s.Reason = unavailableReason(a)
			}
			statuses[id] = s

			up := 0.0
			if s.Available {
				up = 1.0
			}
			metrics.AdapterAvailable.WithLabelValues(id).Set(up)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status:   "ok",
			Version:  version,
			Adapters: statuses,
		})
	}
}

func unavailableReason(a adapter.LLMAdapter) string {
	switch a.(type) {
	case *adapter.OpenAIAdapter:
		return "no API key"
	case *adapter.ClaudeAdapter:
		return "no API key"
	case *adapter.OllamaAdapter:
		return "ollama unreachable"
	default:
		return "unavailable"
	}
}
