package charts

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/plutus/internal/modules/allocation"
	"github.com/aristath/plutus/internal/modules/simulation"
)

// Handler handles chart HTTP requests
type Handler struct {
	simService         *simulation.Service
	defaultCorrelation float64
	maxDurationMonths  int
	log                zerolog.Logger
}

// NewHandler creates a new charts handler
func NewHandler(
	simService *simulation.Service,
	defaultCorrelation float64,
	maxDurationMonths int,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		simService:         simService,
		defaultCorrelation: defaultCorrelation,
		maxDurationMonths:  maxDurationMonths,
		log:                log.With().Str("handler", "charts").Logger(),
	}
}

// HandleProjectionChart handles POST / - run a projection and return it as a PNG
func (h *Handler) HandleProjectionChart(w http.ResponseWriter, r *http.Request) {
	var api simulation.APIRequest
	if err := json.NewDecoder(r.Body).Decode(&api); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	req, gen, err := simulation.ResolveAPIRequest(api, h.defaultCorrelation, h.maxDurationMonths)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	states, err := h.simService.Simulate(req, gen)
	if err != nil {
		allocation.WriteError(w, err)
		return
	}

	png, err := RenderProjection(chartTitle(req), states)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to render projection chart")
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
