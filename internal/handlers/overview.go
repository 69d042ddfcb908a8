package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adminconsole/internal/models"
	"adminconsole/internal/notify"
	"adminconsole/internal/view"
)

const recentActivity = 10

func (h HandlerSet) Overview(c *gin.Context) {
	env, notes := h.pageEnv(c)
	page := view.NewOverviewPage(h.apis.Dashboard, h.activity, recentActivity, env)
	_ = page.Mount(c.Request.Context())
	h.render(c, http.StatusOK, "overview", page.View(), notes)
}

// Activity lists the admin activity log, newest first.
func (h HandlerSet) Activity(c *gin.Context) {
	limit := 50
	if perPage := c.Query("perPage"); perPage != "" {
		if v, err := strconv.Atoi(perPage); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}

	_, notes := h.pageEnv(c)
	items := []models.ActivityEvent{}
	if h.activity != nil {
		events, err := h.activity.ListRecent(c.Request.Context(), limit)
		if err != nil {
			h.log.Error().Err(err).Msg("list activity failed")
			notes.Notify(notify.Failure("Could not load activity", err))
		} else {
			items = events
		}
	}

	h.render(c, http.StatusOK, "activity", gin.H{"items": items}, notes)
}
