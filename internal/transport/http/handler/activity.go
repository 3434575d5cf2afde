package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardhub/internal/app"
	"boardhub/internal/transport/http/middleware"
	"boardhub/internal/transport/http/response"
)

type ActivityHandler struct {
	activityService *app.ActivityService
}

func NewActivityHandler(activityService *app.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List returns the caller's own recent activity, newest first.
func (h *ActivityHandler) List(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "user not found in token")
		return
	}

	limit := parseQueryInt(c, "limit", 0)

	entries, err := h.activityService.ListRecent(callerID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list activity failed")
		return
	}
	response.OK(c, entries)
}
