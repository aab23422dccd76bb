package router

import (
	"net/http"

	commongin "github.com/equinor/radix-common/pkg/gin"
	"github.com/equinor/radix-job-dashboard/api"
	"github.com/gin-gonic/gin"
)

const (
	apiVersionRoute = "/api/v1"
	healthPath      = "/health"
)

// NewServer creates a new job dashboard REST service
func NewServer(controllers ...api.Controller) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.RemoveExtraSlash = true
	engine.Use(commongin.ZerologRequestLogger(), gin.Recovery())
	engine.GET(healthPath, func(c *gin.Context) { c.Status(http.StatusOK) })

	v1Router := engine.Group(apiVersionRoute)
	{
		initializeAPIServer(v1Router, controllers)
	}

	return engine
}

func initializeAPIServer(router gin.IRoutes, controllers []api.Controller) {
	for _, controller := range controllers {
		for _, route := range controller.GetRoutes() {
			addHandlerRoute(router, route)
		}
	}
}

func addHandlerRoute(router gin.IRoutes, route api.Route) {
	router.Handle(route.Method, route.Path, route.Handler)
}
