package normalize

// Ordered source field names per canonical field. The first alias holding a
// truthy value wins: not nil, not an empty string, not zero, not false.
var (
	jobIDAliases            = []string{"id"}
	jobNameAliases          = []string{"jobName", "fileName"}
	jobFileNameAliases      = []string{"fileName"}
	jobUserNameAliases      = []string{"userName", "username"}
	jobStatusAliases        = []string{"status"}
	jobStartDateAliases     = []string{"startDate", "startTime", "uploadTime", "createdAt"}
	jobEndDateAliases       = []string{"endDate", "endTime"}
	jobBatchNameAliases     = []string{"batchName", "batchId"}
	jobEnvironmentAliases   = []string{"environment", "env"}
	jobExecutionTimeAliases = []string{"executionTime"}
	jobProgressAliases      = []string{"progress"}

	actionIDAliases        = []string{"id", "actionId"}
	actionUserNameAliases  = []string{"userName", "username", "user"}
	actionActionAliases    = []string{"action", "type"}
	actionJobNameAliases   = []string{"jobName", "fileName", "target"}
	actionFileNameAliases  = []string{"fileName"}
	actionTimestampAliases = []string{"timestamp", "createdAt", "uploadTime"}
	actionDetailsAliases   = []string{"details", "meta", "payload"}
)
