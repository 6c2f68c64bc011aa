package waha

import (
	"github.com/gin-gonic/gin"

	"github.com/awesomefanda/adjnt/internal/webhook"
	pkgLog "github.com/awesomefanda/adjnt/pkg/log"
)

// Handler exposes the WAHA webhook endpoint.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l          pkgLog.Logger
	dispatcher *Dispatcher
	security   *webhook.SecurityValidator
}

// New creates a new WAHA webhook handler.
func New(l pkgLog.Logger, dispatcher *Dispatcher, security *webhook.SecurityValidator) Handler {
	return &handler{
		l:          l,
		dispatcher: dispatcher,
		security:   security,
	}
}
