// Package docs classification Job dashboard API.
//
// This is the API Server for the job dashboard. It serves jobs, user actions and
// statistics from the job backend, with derived progress, estimates and paging.
//
//	Schemes: http, https
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
