package ops_test

import (
	"errors"
	"testing"

	"github.com/c360studio/owl2store/ops"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRecentIsOldestFirstBeforeFull(t *testing.T) {
	log := ops.NewAuditLog(3)
	log.Record("append", "ex:graph/0", "block 0", nil)
	log.Record("append", "ex:graph/1", "block 1", nil)

	recent := log.Recent()
	require.Len(t, recent, 2)
	require.Equal(t, "ex:graph/0", recent[0].GraphIRI)
	require.Equal(t, "ex:graph/1", recent[1].GraphIRI)
}

func TestAuditLogEvictsOldestOnceFull(t *testing.T) {
	log := ops.NewAuditLog(2)
	log.Record("append", "ex:graph/0", "", nil)
	log.Record("append", "ex:graph/1", "", nil)
	log.Record("append", "ex:graph/2", "", nil)

	recent := log.Recent()
	require.Len(t, recent, 2)
	require.Equal(t, "ex:graph/1", recent[0].GraphIRI)
	require.Equal(t, "ex:graph/2", recent[1].GraphIRI)
}

func TestAuditLogRecordsError(t *testing.T) {
	log := ops.NewAuditLog(1)
	log.Record("validate", "ex:graph", "EL", errors.New("disjoint classes forbidden"))

	recent := log.Recent()
	require.Len(t, recent, 1)
	require.Equal(t, "disjoint classes forbidden", recent[0].Err)
}
