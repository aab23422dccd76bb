package v1

// UserAction holds an entry of the user action log
// swagger:model UserAction
type UserAction struct {
	// ID of the action
	//
	// required: true
	ID string `json:"id"`

	// UserName of the acting user
	//
	// required: true
	// example: jdoe
	UserName string `json:"userName"`

	// Action free-text verb
	//
	// required: true
	// example: upload
	Action string `json:"action"`

	// JobName the action refers to
	//
	// required: true
	JobName string `json:"jobName"`

	// FileName the action refers to
	//
	// required: false
	FileName string `json:"fileName"`

	// Timestamp of the action
	//
	// required: true
	// example: 2006-01-02T15:04:05Z
	Timestamp string `json:"timestamp"`

	// Details optional free text
	//
	// required: false
	Details string `json:"details"`
}
