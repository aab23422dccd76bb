package controllers

import (
	"encoding/json"
	"net/http"

	apierrors "github.com/equinor/radix-job-dashboard/api/errors"
	"github.com/equinor/radix-job-dashboard/models/common"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ControllerBase struct {
}

func (controller *ControllerBase) HandleError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := apierrors.NewFromError(err).Status()
	logger := log.Ctx(c.Request.Context())
	if status.Code >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("Request failed")
	} else {
		logger.Debug().Err(err).Int("code", status.Code).Msg("Request rejected")
	}

	controller.statusResponse(c.Writer, status)
}

func (controller *ControllerBase) statusResponse(w http.ResponseWriter, status *common.Status) {
	body, err := json.Marshal(status)
	if err != nil {
		controller.writeResponse(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status.Code)
	_, _ = w.Write(body)
}

func (controller *ControllerBase) writeResponse(w http.ResponseWriter, statusCode int, response ...string) {
	w.WriteHeader(statusCode)
	for _, responseText := range response {
		_, _ = w.Write([]byte(responseText))
	}
}
