package store

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/dock-labs/rdf2020soundness/errors"
)

// AuditLog persists a record of each CheckSoundness replay to the
// proof_replays table: how many steps the attached proof took, how
// many triples it assumed versus implied, and whether it was accepted
// or rejected. This lets a deployment answer "what did we check, and
// did it pass" without re-running verification.
//
// AuditLog implements soundness.ReplayRecorder structurally; callers
// wire it in via Driver.Recorder rather than this package importing
// soundness directly.
type AuditLog struct {
	db *sql.DB
}

// NewAuditLog wraps db for proof-replay persistence. db is expected to
// already carry the proof_replays migration (see OpenWithMigrations).
func NewAuditLog(db *sql.DB) *AuditLog {
	return &AuditLog{db: db}
}

// RecordReplay inserts one proof_replays row. goal_triple is left
// blank: CheckSoundness replays an attached proof rather than
// searching for one, so there is no single goal triple to record, only
// the call's step/assumed/implied counts and outcome.
func (a *AuditLog) RecordReplay(stepCount, assumedCount, impliedCount int, outcome string) error {
	_, err := a.db.Exec(
		`INSERT INTO proof_replays (id, goal_triple, step_count, assumed_count, implied_count, outcome) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), "", stepCount, assumedCount, impliedCount, outcome,
	)
	if err != nil {
		return errors.Wrap(err, "insert proof replay")
	}
	return nil
}
