package filters

import (
	"net/http"

	"github.com/equinor/radix-job-dashboard/api"
	"github.com/equinor/radix-job-dashboard/api/controllers"
	dashboardApi "github.com/equinor/radix-job-dashboard/api/dashboard"
	apierrors "github.com/equinor/radix-job-dashboard/api/errors"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type filtersController struct {
	*controllers.ControllerBase
	handler dashboardApi.Handler
}

// New create a new filters controller
func New(handler dashboardApi.Handler) api.Controller {
	return &filtersController{
		handler: handler,
	}
}

// GetRoutes List the supported routes of this controller
func (controller *filtersController) GetRoutes() []api.Route {
	return []api.Route{
		{
			Path:    "/filters",
			Method:  http.MethodGet,
			Handler: controller.GetFilters,
		},
		{
			Path:    "/filters",
			Method:  http.MethodPut,
			Handler: controller.UpdateFilters,
		},
		{
			Path:    "/filters/reset",
			Method:  http.MethodPost,
			Handler: controller.ResetFilters,
		},
	}
}

func (controller *filtersController) GetFilters(c *gin.Context) {
	// swagger:operation GET /filters Filters getFilters
	// ---
	// summary: Gets the filter selections of the session
	// responses:
	//   "200":
	//     description: "Successful get filters"
	//     schema:
	//        "$ref": "#/definitions/FilterState"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	filters, err := controller.handler.GetFilters(c.Request.Context())
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, filters)
}

func (controller *filtersController) UpdateFilters(c *gin.Context) {
	// swagger:operation PUT /filters Filters updateFilters
	// ---
	// summary: Replaces the filter selections of the session
	// parameters:
	// - name: filterState
	//   in: body
	//   description: Filter selections
	//   required: true
	//   schema:
	//       "$ref": "#/definitions/FilterState"
	// responses:
	//   "200":
	//     description: "Successful update of filters"
	//     schema:
	//        "$ref": "#/definitions/FilterState"
	//   "422":
	//     description: "Invalid filters"
	//     schema:
	//        "$ref": "#/definitions/Status"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	var filters modelsv1.FilterState
	if err := c.ShouldBindJSON(&filters); err != nil {
		controller.HandleError(c, apierrors.NewInvalidWithReason("filterState", err))
		return
	}
	log.Ctx(c.Request.Context()).Debug().Interface("filters", filters).Msg("Update filters")
	updated, err := controller.handler.UpdateFilters(c.Request.Context(), filters)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (controller *filtersController) ResetFilters(c *gin.Context) {
	// swagger:operation POST /filters/reset Filters resetFilters
	// ---
	// summary: Restores the default filter selections of the session
	// responses:
	//   "200":
	//     description: "Successful reset of filters"
	//     schema:
	//        "$ref": "#/definitions/FilterState"
	//   "500":
	//     description: "Internal server error"
	//     schema:
	//        "$ref": "#/definitions/Status"
	filters, err := controller.handler.ResetFilters(c.Request.Context())
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, filters)
}
