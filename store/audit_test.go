package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	soundnesstesting "github.com/dock-labs/rdf2020soundness/internal/testing"
)

func TestAuditLogRecordReplayInsertsARow(t *testing.T) {
	db := soundnesstesting.CreateTestDB(t)
	require.NoError(t, Migrate(db, nil))

	log := NewAuditLog(db)
	require.NoError(t, log.RecordReplay(3, 2, 1, "accepted"))

	var stepCount, assumedCount, impliedCount int
	var outcome, goalTriple string
	err := db.QueryRow(
		"SELECT step_count, assumed_count, implied_count, outcome, goal_triple FROM proof_replays",
	).Scan(&stepCount, &assumedCount, &impliedCount, &outcome, &goalTriple)
	require.NoError(t, err)

	assert.Equal(t, 3, stepCount)
	assert.Equal(t, 2, assumedCount)
	assert.Equal(t, 1, impliedCount)
	assert.Equal(t, "accepted", outcome)
	assert.Equal(t, "", goalTriple)
}

func TestAuditLogRecordReplayMultipleRows(t *testing.T) {
	db := soundnesstesting.CreateTestDB(t)
	require.NoError(t, Migrate(db, nil))

	log := NewAuditLog(db)
	require.NoError(t, log.RecordReplay(1, 1, 0, "accepted"))
	require.NoError(t, log.RecordReplay(1, 1, 0, "rejected:unverified_assumption"))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM proof_replays").Scan(&count))
	assert.Equal(t, 2, count)
}
