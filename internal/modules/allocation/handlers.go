package allocation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// Handler handles allocation HTTP requests
type Handler struct {
	service            *Service
	defaultCorrelation float64
	log                zerolog.Logger
}

// NewHandler creates a new allocation handler
func NewHandler(service *Service, defaultCorrelation float64, log zerolog.Logger) *Handler {
	return &Handler{
		service:            service,
		defaultCorrelation: defaultCorrelation,
		log:                log.With().Str("handler", "allocation").Logger(),
	}
}

// HandleCalculate handles POST / - compute an allocation
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	correlation := h.defaultCorrelation
	if req.Correlation != nil {
		correlation = *req.Correlation
	}

	result, err := h.service.Calculate(
		req.TotalAmount,
		req.Assets,
		req.RiskFree,
		req.TargetVolatility,
		correlation,
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// WriteError maps engine errors to HTTP responses. Invalid inputs are 400s;
// unachievable targets and degenerate weightings are 422s since the request
// was well-formed but unsatisfiable.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnachievableVolatility), errors.Is(err, ErrDegenerateSharpeWeights):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "Allocation failed", http.StatusInternalServerError)
	}
}
