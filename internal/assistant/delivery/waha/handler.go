package waha

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/awesomefanda/adjnt/internal/webhook"
	pkgResponse "github.com/awesomefanda/adjnt/pkg/response"
	pkgWaha "github.com/awesomefanda/adjnt/pkg/waha"
)

// HandleWebhook is the Gin handler for incoming WAHA events. It
// validates the request, enqueues message events and responds 200
// immediately; the pipeline (LLM + stores + scheduler) runs in the
// dispatcher's worker pool, well past WAHA's delivery timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "waha handler: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "waha handler: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}
	if err := h.security.CheckRateLimit(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "waha handler: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}
	if err := h.security.ValidateSignature(body, c.GetHeader(webhook.HeaderHmac)); err != nil {
		h.l.Warnf(ctx, "waha handler: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	var event pkgWaha.Event
	if err := json.Unmarshal(body, &event); err != nil {
		h.l.Errorf(ctx, "waha handler: failed to parse event: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Only message events carry user text; everything else is acked and
	// dropped. Our own outgoing echoes are dropped too.
	if event.Event != pkgWaha.EventMessage && event.Event != pkgWaha.EventMessageAny {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}
	if event.Payload.FromMe {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	admitted := h.dispatcher.Enqueue(event.Payload.ID, event.Payload.From, event.Payload.From, event.Payload.Body)
	if !admitted {
		pkgResponse.OK(c, map[string]string{"status": "duplicate"})
		return
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}
