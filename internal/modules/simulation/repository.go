package simulation

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/plutus/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// Repository persists simulation runs. The engine itself stays persistence
// free; this is the collaborator that stores its outputs.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new simulation run repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "simulation_runs").Logger(),
	}
}

// Save inserts a run and fills in its ID and CreatedAt
func (r *Repository) Save(run *Run) error {
	requestJSON, err := json.Marshal(run.Request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	historyJSON, err := json.Marshal(run.History)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	createdAt := time.Now().UTC()

	query := `
		INSERT INTO simulation_runs (
			created_at, scenario, initial_investment, monthly_deposit,
			target_volatility, correlation, duration_months,
			final_value, contributed, gain, max_drawdown,
			mean_monthly_return, realized_volatility,
			request_json, history_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		createdAt.Format(timeLayout),
		string(run.Request.Scenario),
		run.Request.InitialInvestment,
		run.Request.MonthlyDeposit,
		run.Request.TargetVolatility,
		run.Request.Correlation,
		run.Request.DurationMonths,
		run.Summary.FinalValue,
		run.Summary.Contributed,
		run.Summary.Gain,
		run.Summary.MaxDrawdown,
		run.Summary.MeanMonthlyReturn,
		run.Summary.RealizedVolatility,
		string(requestJSON),
		string(historyJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to insert simulation run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	run.ID = id
	run.CreatedAt = createdAt

	return nil
}

// GetByID retrieves a run including its full history
func (r *Repository) GetByID(id int64) (*Run, error) {
	query := `
		SELECT id, created_at, request_json, history_json,
		       final_value, contributed, gain, max_drawdown,
		       mean_monthly_return, realized_volatility
		FROM simulation_runs
		WHERE id = ?
	`

	var run Run
	var createdAt, requestJSON, historyJSON string

	err := r.db.QueryRow(query, id).Scan(
		&run.ID,
		&createdAt,
		&requestJSON,
		&historyJSON,
		&run.Summary.FinalValue,
		&run.Summary.Contributed,
		&run.Summary.Gain,
		&run.Summary.MaxDrawdown,
		&run.Summary.MeanMonthlyReturn,
		&run.Summary.RealizedVolatility,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation run %d: %w", id, err)
	}

	run.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if err := json.Unmarshal([]byte(requestJSON), &run.Request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request for run %d: %w", id, err)
	}

	var history []domain.PortfolioState
	if err := json.Unmarshal([]byte(historyJSON), &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history for run %d: %w", id, err)
	}
	run.History = history

	return &run, nil
}

// GetRecent retrieves the most recent runs, newest first, without their
// histories.
func (r *Repository) GetRecent(limit int) ([]Run, error) {
	query := `
		SELECT id, created_at, request_json,
		       final_value, contributed, gain, max_drawdown,
		       mean_monthly_return, realized_volatility
		FROM simulation_runs
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt, requestJSON string
		if err := rows.Scan(
			&run.ID,
			&createdAt,
			&requestJSON,
			&run.Summary.FinalValue,
			&run.Summary.Contributed,
			&run.Summary.Gain,
			&run.Summary.MaxDrawdown,
			&run.Summary.MeanMonthlyReturn,
			&run.Summary.RealizedVolatility,
		); err != nil {
			return nil, fmt.Errorf("failed to scan simulation run: %w", err)
		}

		run.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		if err := json.Unmarshal([]byte(requestJSON), &run.Request); err != nil {
			return nil, fmt.Errorf("failed to unmarshal request for run %d: %w", run.ID, err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating simulation runs: %w", err)
	}

	return runs, nil
}

// DeleteOlderThan removes runs created before the cutoff and returns the
// number deleted.
func (r *Repository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(
		`DELETE FROM simulation_runs WHERE created_at < ?`,
		cutoff.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old simulation runs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get deleted row count: %w", err)
	}

	return deleted, nil
}
