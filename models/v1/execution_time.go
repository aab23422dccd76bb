package v1

import (
	"encoding/json"
	"strconv"
)

// ExecutionTime Reported duration of a job, either a number of seconds or a text like "1h 2m 3s"
// swagger:model ExecutionTime
type ExecutionTime struct {
	seconds *float64
	text    string
}

// ExecutionTimeSeconds Execution time reported as a number of seconds
func ExecutionTimeSeconds(seconds float64) *ExecutionTime {
	return &ExecutionTime{seconds: &seconds}
}

// ExecutionTimeText Execution time reported as a text
func ExecutionTimeText(text string) *ExecutionTime {
	return &ExecutionTime{text: text}
}

// Seconds The numeric value, when the time was reported as a number
func (e *ExecutionTime) Seconds() (float64, bool) {
	if e == nil || e.seconds == nil {
		return 0, false
	}
	return *e.seconds, true
}

// Text The text value, when the time was reported as a text
func (e *ExecutionTime) Text() string {
	if e == nil {
		return ""
	}
	return e.text
}

// IsEmpty Nothing was reported
func (e *ExecutionTime) IsEmpty() bool {
	return e == nil || (e.seconds == nil && len(e.text) == 0)
}

func (e *ExecutionTime) String() string {
	if seconds, ok := e.Seconds(); ok {
		return strconv.FormatFloat(seconds, 'f', -1, 64)
	}
	return e.Text()
}

// MarshalJSON writes the value in the form it was reported
func (e ExecutionTime) MarshalJSON() ([]byte, error) {
	if e.seconds != nil {
		return json.Marshal(*e.seconds)
	}
	if len(e.text) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(e.text)
}

// UnmarshalJSON accepts a number, a string or null
func (e *ExecutionTime) UnmarshalJSON(data []byte) error {
	*e = ExecutionTime{}
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	switch v := value.(type) {
	case float64:
		e.seconds = &v
	case string:
		e.text = v
	}
	return nil
}
