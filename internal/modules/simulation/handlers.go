package simulation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/plutus/internal/domain"
	"github.com/aristath/plutus/internal/modules/allocation"
	"github.com/aristath/plutus/pkg/random"
)

// APIRequest is the wire form of a simulation call. Scenario arrives as a
// string, correlation defaults when omitted, and an optional seed makes the
// path reproducible.
type APIRequest struct {
	InitialInvestment float64                `json:"initial_investment"`
	MonthlyDeposit    float64                `json:"monthly_deposit"`
	Assets            []domain.Asset         `json:"assets"`
	RiskFree          domain.RiskFreeAccount `json:"risk_free"`
	TargetVolatility  float64                `json:"target_volatility"`
	DurationMonths    int                    `json:"duration_months"`
	Scenario          string                 `json:"scenario"`
	Correlation       *float64               `json:"correlation,omitempty"`
	Seed              *int64                 `json:"seed,omitempty"`
}

// Handler handles simulation HTTP requests
type Handler struct {
	service            *Service
	repo               *Repository
	defaultCorrelation float64
	maxDurationMonths  int
	log                zerolog.Logger
}

// NewHandler creates a new simulation handler
func NewHandler(
	service *Service,
	repo *Repository,
	defaultCorrelation float64,
	maxDurationMonths int,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		service:            service,
		repo:               repo,
		defaultCorrelation: defaultCorrelation,
		maxDurationMonths:  maxDurationMonths,
		log:                log.With().Str("handler", "simulation").Logger(),
	}
}

// ResolveAPIRequest converts a wire request into an engine request and, when
// a seed was supplied, a deterministic generator.
func ResolveAPIRequest(api APIRequest, defaultCorrelation float64, maxDurationMonths int) (Request, random.Generator, error) {
	scenario, err := domain.ParseScenario(api.Scenario)
	if err != nil {
		return Request{}, nil, err
	}
	if api.DurationMonths > maxDurationMonths {
		return Request{}, nil, fmt.Errorf("duration_months %d exceeds maximum %d",
			api.DurationMonths, maxDurationMonths)
	}

	correlation := defaultCorrelation
	if api.Correlation != nil {
		correlation = *api.Correlation
	}

	var gen random.Generator
	if api.Seed != nil {
		gen = random.NewSeededNormalSource(*api.Seed)
	}

	return Request{
		InitialInvestment: api.InitialInvestment,
		MonthlyDeposit:    api.MonthlyDeposit,
		Assets:            api.Assets,
		RiskFree:          api.RiskFree,
		TargetVolatility:  api.TargetVolatility,
		DurationMonths:    api.DurationMonths,
		Scenario:          scenario,
		Correlation:       correlation,
	}, gen, nil
}

// HandleSimulate handles POST / - run a projection and persist it
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var api APIRequest
	if err := json.NewDecoder(r.Body).Decode(&api); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	req, gen, err := ResolveAPIRequest(api, h.defaultCorrelation, h.maxDurationMonths)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	states, err := h.service.Simulate(req, gen)
	if err != nil {
		allocation.WriteError(w, err)
		return
	}

	run := &Run{
		Request: req,
		Summary: Summarize(states),
		History: states,
	}
	if err := h.repo.Save(run); err != nil {
		// The projection itself succeeded; losing the stored copy isn't
		// worth failing the request over.
		h.log.Error().Err(err).Msg("Failed to persist simulation run")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// HandleListRuns handles GET /runs - list recent runs without histories
func (h *Handler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 || l > 500 {
			http.Error(w, "Invalid limit. Must be 1-500", http.StatusBadRequest)
			return
		}
		limit = l
	}

	runs, err := h.repo.GetRecent(limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list simulation runs")
		http.Error(w, "Failed to retrieve runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []Run{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// HandleGetRun handles GET /runs/{id} - fetch one run with full history
func (h *Handler) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid run ID", http.StatusBadRequest)
		return
	}

	run, err := h.repo.GetByID(id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to get simulation run")
		http.Error(w, "Failed to retrieve run", http.StatusInternalServerError)
		return
	}
	if run == nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}
