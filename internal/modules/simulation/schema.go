package simulation

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the simulation run tables if they don't exist
func EnsureSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS simulation_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			scenario TEXT NOT NULL,
			initial_investment REAL NOT NULL,
			monthly_deposit REAL NOT NULL,
			target_volatility REAL NOT NULL,
			correlation REAL NOT NULL,
			duration_months INTEGER NOT NULL,
			final_value REAL NOT NULL,
			contributed REAL NOT NULL,
			gain REAL NOT NULL,
			max_drawdown REAL NOT NULL,
			mean_monthly_return REAL NOT NULL,
			realized_volatility REAL NOT NULL,
			request_json TEXT NOT NULL,
			history_json TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_simulation_runs_created_at
			ON simulation_runs(created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create simulation_runs schema: %w", err)
	}

	return nil
}
