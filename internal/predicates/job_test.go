package predicates

import (
	"testing"

	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/stretchr/testify/assert"
)

func Test_IsJobWithID(t *testing.T) {
	assert.True(t, IsJobWithID("1")(modelsv1.Job{ID: "1"}))
	assert.False(t, IsJobWithID("1")(modelsv1.Job{ID: "2"}))
	assert.False(t, IsJobWithID("")(modelsv1.Job{}))
}

func Test_StatusPredicates(t *testing.T) {
	running := modelsv1.Job{Status: modelsv1.JobStatusEnumInProgress}
	queued := modelsv1.Job{Status: modelsv1.JobStatusEnumInQueue}
	unknown := modelsv1.Job{Status: "PAUSED"}
	assert.True(t, IsRunningJob(running))
	assert.False(t, IsTerminalJob(running))
	assert.True(t, IsQueuedJob(queued))
	assert.False(t, IsTerminalJob(queued))
	assert.True(t, IsTerminalJob(unknown))
}

func Test_IsTimedSuccessfulJobWithName(t *testing.T) {
	predicate := IsTimedSuccessfulJobWithName("import")
	assert.True(t, predicate(modelsv1.Job{JobName: "import", Status: modelsv1.JobStatusEnumSuccess, ExecutionTime: modelsv1.ExecutionTimeSeconds(10)}))
	assert.True(t, predicate(modelsv1.Job{JobName: "import", Status: modelsv1.JobStatusEnumSuccess, ExecutionTime: modelsv1.ExecutionTimeText("1m")}))
	assert.False(t, predicate(modelsv1.Job{JobName: "import", Status: modelsv1.JobStatusEnumSuccess}))
	assert.False(t, predicate(modelsv1.Job{JobName: "import", Status: modelsv1.JobStatusEnumSuccess, ExecutionTime: modelsv1.ExecutionTimeText("")}))
	assert.False(t, predicate(modelsv1.Job{JobName: "import", Status: modelsv1.JobStatusEnumFailed, ExecutionTime: modelsv1.ExecutionTimeSeconds(10)}))
	assert.False(t, predicate(modelsv1.Job{JobName: "export", Status: modelsv1.JobStatusEnumSuccess, ExecutionTime: modelsv1.ExecutionTimeSeconds(10)}))
}
