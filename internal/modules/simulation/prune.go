package simulation

import (
	"time"

	"github.com/rs/zerolog"
)

// PruneJob deletes persisted runs older than the configured retention.
// Registered with the scheduler to run daily.
type PruneJob struct {
	repo          *Repository
	retentionDays int
	log           zerolog.Logger
}

// NewPruneJob creates a new prune job
func NewPruneJob(repo *Repository, retentionDays int, log zerolog.Logger) *PruneJob {
	return &PruneJob{
		repo:          repo,
		retentionDays: retentionDays,
		log:           log.With().Str("job", "runs_prune").Logger(),
	}
}

// Name returns the job name
func (j *PruneJob) Name() string {
	return "runs_prune"
}

// Run deletes runs past retention
func (j *PruneJob) Run() error {
	cutoff := time.Now().AddDate(0, 0, -j.retentionDays)

	deleted, err := j.repo.DeleteOlderThan(cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		j.log.Info().
			Int64("deleted", deleted).
			Time("cutoff", cutoff).
			Msg("Pruned old simulation runs")
	}

	return nil
}
