package v1

// Statistics holds job counts per status category
// swagger:model Statistics
type Statistics struct {
	// Completed jobs
	//
	// required: true
	Completed int `json:"completed"`

	// Running jobs
	//
	// required: true
	Running int `json:"running"`

	// Queue jobs waiting
	//
	// required: true
	Queue int `json:"queue"`

	// Failed jobs
	//
	// required: true
	Failed int `json:"failed"`

	// Cancelled jobs
	//
	// required: true
	Cancelled int `json:"cancelled"`

	// Total sum of all categories
	//
	// required: true
	Total int `json:"total"`
}

// Sum of the five categories
func (s Statistics) Sum() int {
	return s.Completed + s.Running + s.Queue + s.Failed + s.Cancelled
}
