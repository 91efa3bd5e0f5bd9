package http

import (
	"net/http"

	"github.com/epistat/casetrend/pkg/domain/model"
	"github.com/epistat/casetrend/pkg/domain/types"
	"github.com/epistat/casetrend/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// ChartHandler serves the precomputed chart series and their summaries
type ChartHandler struct {
	chart usecase.ChartData
}

// NewChartHandler creates a new chart handler
func NewChartHandler(chart usecase.ChartData) *ChartHandler {
	return &ChartHandler{chart: chart}
}

// modeEntry describes one selectable mode in the /api/modes response
type modeEntry struct {
	Mode    types.Mode `json:"mode"`
	Default bool       `json:"default"`
}

// HandleModes lists the selectable modes
func (h *ChartHandler) HandleModes(w http.ResponseWriter, r *http.Request) {
	modes := make([]modeEntry, 0, len(types.Modes()))
	for _, mode := range types.Modes() {
		modes = append(modes, modeEntry{
			Mode:    mode,
			Default: mode == types.DefaultMode(),
		})
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"modes": modes,
	})
}

// HandleSeries returns the chart series for the requested mode
func (h *ChartHandler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	mode, err := h.resolveMode(r)
	if err != nil {
		writeError(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, h.chart.SeriesByMode(mode))
}

// HandleSummary returns the display summary for the requested mode
func (h *ChartHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	mode, err := h.resolveMode(r)
	if err != nil {
		writeError(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, h.chart.SummaryByMode(mode))
}

// resolveMode picks the mode from the query string, falling back to the
// selector's current mode. An unknown mode string is rejected here so API
// users get a diagnosable error instead of a silently empty series.
func (h *ChartHandler) resolveMode(r *http.Request) (types.Mode, error) {
	q := r.URL.Query().Get("mode")
	if q == "" {
		return h.chart.Mode(), nil
	}

	mode := types.Mode(q)
	if !mode.IsValid() {
		return "", goerr.Wrap(model.ErrUnknownMode, "unsupported mode",
			goerr.V("mode", q))
	}
	return mode, nil
}
