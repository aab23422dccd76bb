package live

import (
	"context"
	"net/http"
	"time"

	"github.com/equinor/radix-job-dashboard/api"
	"github.com/equinor/radix-job-dashboard/api/controllers"
	dashboardController "github.com/equinor/radix-job-dashboard/api/controllers/dashboard"
	dashboardApi "github.com/equinor/radix-job-dashboard/api/dashboard"
	modelsv1 "github.com/equinor/radix-job-dashboard/models/v1"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = pongTimeout * 9 / 10
)

type liveController struct {
	*controllers.ControllerBase
	handler  dashboardApi.Handler
	upgrader websocket.Upgrader
}

// New create a new controller streaming the dashboard over a websocket
func New(handler dashboardApi.Handler) api.Controller {
	return &liveController{
		handler: handler,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// GetRoutes List the supported routes of this controller
func (controller *liveController) GetRoutes() []api.Route {
	return []api.Route{
		{
			Path:    "/live",
			Method:  http.MethodGet,
			Handler: controller.Live,
		},
	}
}

func (controller *liveController) Live(c *gin.Context) {
	// swagger:operation GET /live Dashboard live
	// ---
	// summary: Streams the dashboard over a websocket, on connect and whenever it changes
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
	//   "101":
	//     description: "Switching to the websocket protocol"
	//   "422":
	//     description: "Invalid page"
	//     schema:
	//        "$ref": "#/definitions/Status"
	options, err := dashboardController.DashboardOptionsFromQuery(c)
	if err != nil {
		controller.HandleError(c, err)
		return
	}
	ctx := c.Request.Context()
	conn, err := controller.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Failed to upgrade to websocket")
		return
	}
	defer conn.Close()

	logger := log.Ctx(ctx).With().Str("client", uuid.NewString()).Str("remote", conn.RemoteAddr().String()).Logger()
	logger.Debug().Msg("Live client connected")
	defer logger.Debug().Msg("Live client disconnected")

	changes, unsubscribe := controller.handler.Subscribe(ctx)
	defer unsubscribe()
	closed := readPump(conn)
	pings := time.NewTicker(pingInterval)
	defer pings.Stop()

	if !controller.send(ctx, conn, options, logger) {
		return
	}
	for {
		select {
		case <-closed:
			return
		case _, ok := <-changes:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "dashboard stopped"), time.Now().Add(writeTimeout))
				return
			}
			if !controller.send(ctx, conn, options, logger) {
				return
			}
		case <-pings.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

func (controller *liveController) send(ctx context.Context, conn *websocket.Conn, options modelsv1.DashboardOptions, logger zerolog.Logger) bool {
	dashboard, err := controller.handler.GetDashboard(ctx, options)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get dashboard")
		return false
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(dashboard); err != nil {
		logger.Debug().Err(err).Msg("Failed to write dashboard")
		return false
	}
	return true
}

// readPump discards client messages and handles pongs, the returned channel is closed when the connection is gone
func readPump(conn *websocket.Conn) <-chan struct{} {
	closed := make(chan struct{})
	_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return closed
}
