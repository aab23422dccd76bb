package dashboard

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/equinor/radix-job-dashboard/api"
	"github.com/equinor/radix-job-dashboard/api/controllers"
	dashboardApi "github.com/equinor/radix-job-dashboard/api/dashboard"
	apierrors "github.com/equinor/radix-job-dashboard/api/errors"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	jobIDParam       = "jobId"
	runningPageQuery = "runningPage"
	queuedPageQuery  = "queuedPage"
)

type dashboardController struct {
	*controllers.ControllerBase
	handler dashboardApi.Handler
}

// New create a new dashboard controller
func New(handler dashboardApi.Handler) api.Controller {
	return &dashboardController{
		handler: handler,
	}
}

// GetRoutes List the supported routes of this controller
func (controller *dashboardController) GetRoutes() []api.Route {
	return []api.Route{
		{
			Path:    "/dashboard",
			Method:  http.MethodGet,
			Handler: controller.GetDashboard,
		},
		{
			Path:    fmt.Sprintf("/jobs/:%s", jobIDParam),
			Method:  http.MethodGet,
			Handler: controller.GetJob,
		},
		{
			Path:    "/refresh",
			Method:  http.MethodPost,
			Handler: controller.Refresh,
		},
		{
			Path:    "/jobs/more",
			Method:  http.MethodPost,
			Handler: controller.LoadMoreJobs,
		},
	}
}

func (controller *dashboardController) GetDashboard(c *gin.Context) {
	// swagger:operation GET /dashboard Dashboard getDashboard
	// ---
	// summary: Gets the dashboard derived for the current filters
	// parameters:
	// - name: runningPage
	//   in: query
	//   description: Page of the running jobs, starting at 1
	//   type: integer
	//   required: false
	// - name: queuedPage
	//   in: query
	//   description: Page of the queued jobs, starting at 1
	//   type: integer
	//   required: false
	// responses:
	//   "200":
	//     description: "Successful get dashboard"
	//     schema:
	//        "$ref": "#/definitions/Dashboard"
	//   "422":
	//     description: "Invalid page"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	options, err := DashboardOptionsFromQuery(c)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	dashboard, err := controller.handler.GetDashboard(c.Request.Context(), options)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (controller *dashboardController) GetJob(c *gin.Context) {
	// swagger:operation GET /jobs/{jobId} Dashboard getJob
	// ---
	// summary: Gets a job with its estimated duration, elapsed time and progress
	// parameters:
	// - name: jobId
	//   in: path
	//   description: ID of the job
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     description: "Successful get job"
	//     schema:
	//        "$ref": "#/definitions/JobView"
	//   "404":
	//     description: "Not found"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	jobID := c.Param(jobIDParam)
	log.Ctx(c.Request.Context()).Debug().Msgf("Get job %s", jobID)
	job, err := controller.handler.GetJob(c.Request.Context(), jobID)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (controller *dashboardController) Refresh(c *gin.Context) {
	// swagger:operation POST /refresh Dashboard refresh
	// ---
	// summary: Reloads jobs, user actions and statistics from the job backend
	// responses:
	//   "200":
	//     description: "Successful refresh, the notice tells whether every source was loaded"
	//     schema:
	//        "$ref": "#/definitions/Dashboard"
	//   "429":
	//     description: "Refresh requested too often"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	logger := log.Ctx(c.Request.Context())
	logger.Info().Msg("Refresh dashboard")
	dashboard, err := controller.handler.Refresh(c.Request.Context())
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (controller *dashboardController) LoadMoreJobs(c *gin.Context) {
	// swagger:operation POST /jobs/more Dashboard loadMoreJobs
	// ---
	// summary: Loads the next page of jobs from the job backend
	// responses:
	//   "200":
	//     description: "Successful load"
	//     schema:
	//        "$ref": "#/definitions/LoadMoreResult"
	//   "429":
	//     description: "A load is already in progress"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "502":
	//     description: "The job backend failed"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	result, err := controller.handler.LoadMoreJobs(c.Request.Context())
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Msgf("Loaded %d more jobs", result.Loaded)
	c.JSON(http.StatusOK, result)
}

// DashboardOptionsFromQuery Reads the running and queued pages from the request query, 1 when not set
func DashboardOptionsFromQuery(c *gin.Context) (modelsv1.DashboardOptions, error) {
	runningPage, err := pageFromQuery(c, runningPageQuery)
	if err != nil {
		return modelsv1.DashboardOptions{}, err
	}
	queuedPage, err := pageFromQuery(c, queuedPageQuery)
	if err != nil {
		return modelsv1.DashboardOptions{}, err
	}
	return modelsv1.DashboardOptions{RunningPage: runningPage, QueuedPage: queuedPage}, nil
}

func pageFromQuery(c *gin.Context, name string) (int, error) {
	value, ok := c.GetQuery(name)
	if !ok || len(value) == 0 {
		return 1, nil
	}
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 0, apierrors.NewInvalid(name)
	}
	return page, nil
}
