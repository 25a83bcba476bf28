package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flywise/services/dialogue"
	"flywise/services/session"
	"flywise/services/whatsapp"
	"flywise/utils"
)

// HandlerBundle wires the transport handlers to the conversation core.
type HandlerBundle struct {
	Sessions *session.Store
	Engine   *dialogue.Engine
	Client   whatsapp.Client
}

// VerifyWebhookHandler answers the provider's GET subscription challenge.
func (hb *HandlerBundle) VerifyWebhookHandler(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if response, ok := hb.Client.VerifyWebhook(mode, token, challenge); ok {
		c.String(http.StatusOK, response)
		return
	}
	utils.GetLogger().Warn("Webhook verification failed")
	c.String(http.StatusForbidden, "verification failed")
}

// WebhookHandler accepts message deliveries. The turn runs on its own
// goroutine so one user's processing never blocks intake for another; the
// provider just needs a fast 200.
func (hb *HandlerBundle) WebhookHandler(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unreadable payload", err.Error())
		return
	}

	inbound, err := hb.Client.ExtractMessage(payload)
	if err != nil {
		utils.GetLogger().Warn("Failed to extract webhook message", zap.Error(err))
		c.Status(http.StatusOK)
		return
	}
	if inbound == nil || inbound.Type != "text" || inbound.Text == "" {
		c.Status(http.StatusOK)
		return
	}

	go hb.processTurn(inbound.PhoneNumber, inbound.Text)
	c.Status(http.StatusOK)
}

// processTurn serializes turns per phone number while letting different
// users proceed in parallel.
func (hb *HandlerBundle) processTurn(phone, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hb.Sessions.TurnLock(phone)
	defer hb.Sessions.TurnUnlock(phone)

	sess := hb.Sessions.GetOrCreate(phone)
	reply := hb.Engine.Process(ctx, sess, text)

	if err := hb.Client.SendText(ctx, phone, reply); err != nil {
		utils.GetLogger().Error("Failed to deliver reply",
			zap.String("phone", utils.MaskPhone(phone)), zap.Error(err))
	}
}

// TestMessageHandler runs one conversation turn synchronously and returns
// the reply. Used for development without the provider in the loop.
func (hb *HandlerBundle) TestMessageHandler(c *gin.Context) {
	var input struct {
		Phone   string `json:"phone" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	hb.Sessions.TurnLock(input.Phone)
	defer hb.Sessions.TurnUnlock(input.Phone)

	sess := hb.Sessions.GetOrCreate(input.Phone)
	reply := hb.Engine.Process(c.Request.Context(), sess, input.Message)

	c.JSON(http.StatusOK, gin.H{
		"reply": reply,
		"state": sess.State,
	})
}
