package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flywise/utils"
)

type sessionSummary struct {
	PhoneNumber  string `json:"phoneNumber"`
	State        string `json:"state"`
	LastActivity string `json:"lastActivity"`
	Passengers   int    `json:"passengers"`
}

// ListSessionsHandler returns a summary of all live sessions.
func (hb *HandlerBundle) ListSessionsHandler(c *gin.Context) {
	active := hb.Sessions.ListActive()
	summaries := make([]sessionSummary, 0, len(active))
	for _, sess := range active {
		summaries = append(summaries, sessionSummary{
			PhoneNumber:  utils.MaskPhone(sess.PhoneNumber),
			State:        string(sess.State),
			LastActivity: sess.LastActivity.Format("2006-01-02T15:04:05Z07:00"),
			Passengers:   sess.TotalPassengers(),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    hb.Sessions.Count(),
		"sessions": summaries,
	})
}

// ResetSessionHandler removes a session unconditionally.
func (hb *HandlerBundle) ResetSessionHandler(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		utils.JSONError(c, http.StatusBadRequest, "phone required", "")
		return
	}
	hb.Sessions.Reset(phone)
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

// HealthHandler reports the latest dependency health snapshot.
func (hb *HandlerBundle) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": hb.Sessions.Count(),
		"deps":     utils.GetHealthStatus(),
	})
}
