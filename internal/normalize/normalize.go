package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/equinor/radix-common/utils/pointers"
	"github.com/equinor/radix-common/utils/slice"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
)

// Record is a job or action object as decoded from the backend JSON
type Record map[string]interface{}

// NormalizeStatus Maps a status onto the canonical vocabulary. Unknown statuses are returned unchanged
func NormalizeStatus(status string) string {
	if len(status) == 0 {
		return ""
	}
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "FAILED":
		return string(modelsv1.JobStatusEnumFailed)
	case "SUCCESS":
		return string(modelsv1.JobStatusEnumSuccess)
	case "IN_PROGRESS":
		return string(modelsv1.JobStatusEnumInProgress)
	case "IN QUEUE":
		return string(modelsv1.JobStatusEnumInQueue)
	case "CANCELLED":
		return string(modelsv1.JobStatusEnumCancelled)
	default:
		return status
	}
}

// NormalizeJob Maps a backend job record onto a Job. Every field is set, missing values get defaults
func NormalizeJob(record Record) modelsv1.Job {
	return modelsv1.Job{
		ID:               stringOf(record, jobIDAliases),
		JobName:          stringOf(record, jobNameAliases),
		FileName:         stringOf(record, jobFileNameAliases),
		BatchName:        optionalStringOf(record, jobBatchNameAliases),
		UserName:         stringOf(record, jobUserNameAliases),
		Status:           modelsv1.JobStatusEnum(NormalizeStatus(stringOf(record, jobStatusAliases))),
		StartDate:        optionalStringOf(record, jobStartDateAliases),
		EndDate:          optionalStringOf(record, jobEndDateAliases),
		ExecutionTime:    executionTimeOf(record),
		Environment:      optionalStringOf(record, jobEnvironmentAliases),
		ReportedProgress: progressOf(record),
	}
}

// NormalizeAction Maps a backend action record onto a UserAction. Missing fields are empty
func NormalizeAction(record Record) modelsv1.UserAction {
	return modelsv1.UserAction{
		ID:        stringOf(record, actionIDAliases),
		UserName:  stringOf(record, actionUserNameAliases),
		Action:    stringOf(record, actionActionAliases),
		JobName:   stringOf(record, actionJobNameAliases),
		FileName:  stringOf(record, actionFileNameAliases),
		Timestamp: stringOf(record, actionTimestampAliases),
		Details:   stringOf(record, actionDetailsAliases),
	}
}

// NormalizeJobs Normalizes a list of job records
func NormalizeJobs(records []Record) []modelsv1.Job {
	return slice.Map(records, NormalizeJob)
}

// NormalizeActions Normalizes a list of action records
func NormalizeActions(records []Record) []modelsv1.UserAction {
	return slice.Map(records, NormalizeAction)
}

func resolve(record Record, aliases []string) (interface{}, bool) {
	for _, alias := range aliases {
		if value, ok := record[alias]; ok && isTruthy(value) {
			return value, true
		}
	}
	return nil, false
}

func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return len(v) > 0
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int:
		return v != 0
	case int64:
		return v != 0
	case json.Number:
		f, _ := v.Float64()
		return f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}

func stringOf(record Record, aliases []string) string {
	value, ok := resolve(record, aliases)
	if !ok {
		return ""
	}
	return toString(value)
}

func optionalStringOf(record Record, aliases []string) *string {
	value, ok := resolve(record, aliases)
	if !ok {
		return nil
	}
	return pointers.Ptr(toString(value))
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		if data, err := json.Marshal(v); err == nil {
			return string(data)
		}
		return ""
	}
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func executionTimeOf(record Record) *modelsv1.ExecutionTime {
	value, ok := resolve(record, jobExecutionTimeAliases)
	if !ok {
		return nil
	}
	if seconds, isNumber := toNumber(value); isNumber {
		return modelsv1.ExecutionTimeSeconds(seconds)
	}
	if text, isString := value.(string); isString {
		return modelsv1.ExecutionTimeText(text)
	}
	return nil
}

func progressOf(record Record) *float64 {
	for _, alias := range jobProgressAliases {
		progress, isNumber := toNumber(record[alias])
		if isNumber && !math.IsNaN(progress) && !math.IsInf(progress, 0) {
			return &progress
		}
	}
	return nil
}
