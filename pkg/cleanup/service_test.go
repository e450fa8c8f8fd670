package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/pluginexecution"
	"github.com/shu-assistant/shu/pkg/config"
	testdb "github.com/shu-assistant/shu/test/database"
)

func createExecution(t *testing.T, client *ent.Client, status pluginexecution.Status, age time.Duration) string {
	t.Helper()
	row, err := client.PluginExecution.Create().
		SetID(uuid.New().String()).
		SetUserID("u1").
		SetPluginName("github_digest").
		SetStatus(status).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return row.ID
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		ExecutionRetentionDays: 90,
		CleanupInterval:        1 * time.Hour,
	}
}

func TestService_DeletesOldTerminalExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	oldCompleted := createExecution(t, client.Client, pluginexecution.StatusCompleted, 120*24*time.Hour)
	oldFailed := createExecution(t, client.Client, pluginexecution.StatusFailed, 120*24*time.Hour)

	svc := NewService(retentionConfig(), client.Client)
	svc.runAll(ctx)

	for _, id := range []string{oldCompleted, oldFailed} {
		exists, err := client.PluginExecution.Query().
			Where(pluginexecution.IDEQ(id)).
			Exist(ctx)
		require.NoError(t, err)
		assert.False(t, exists, "terminal execution past retention should be deleted")
	}
}

func TestService_PreservesRecentExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	recent := createExecution(t, client.Client, pluginexecution.StatusCompleted, 24*time.Hour)

	svc := NewService(retentionConfig(), client.Client)
	svc.runAll(ctx)

	exists, err := client.PluginExecution.Query().
		Where(pluginexecution.IDEQ(recent)).
		Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists, "recent execution should be preserved")
}

func TestService_PreservesOldNonTerminalExecutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Old but still pending/running rows belong to the orphan recovery path,
	// not retention.
	oldPending := createExecution(t, client.Client, pluginexecution.StatusPending, 120*24*time.Hour)
	oldRunning := createExecution(t, client.Client, pluginexecution.StatusRunning, 120*24*time.Hour)

	svc := NewService(retentionConfig(), client.Client)
	svc.runAll(ctx)

	for _, id := range []string{oldPending, oldRunning} {
		exists, err := client.PluginExecution.Query().
			Where(pluginexecution.IDEQ(id)).
			Exist(ctx)
		require.NoError(t, err)
		assert.True(t, exists, "non-terminal execution should never be retention-deleted")
	}
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc := NewService(retentionConfig(), client.Client)
	svc.Start(context.Background())
	svc.Stop()

	// Stop after Stop is a no-op rather than a deadlock.
	svc.Stop()
}
