package backend

import (
	"net/url"
	"strconv"
)

// Query Paging, time window and search parameters of a jobs or actions request
type Query struct {
	Page     int
	Size     int
	Days     int
	UserName string
	JobName  string
	FileName string
	Status   string
}

// Values Encodes the query. The search parameters are only sent when user name, job name and status are all set
func (q Query) Values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("size", strconv.Itoa(q.Size))
	values.Set("days", strconv.Itoa(q.Days))
	if q.HasSearch() {
		values.Set("username", q.UserName)
		values.Set("jobName", q.JobName)
		values.Set("fileName", q.FileName)
		values.Set("status", q.Status)
	}
	return values
}

// HasSearch user name, job name and status are all set
func (q Query) HasSearch() bool {
	return len(q.UserName) > 0 && len(q.JobName) > 0 && len(q.Status) > 0
}
