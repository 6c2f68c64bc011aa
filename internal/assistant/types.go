package assistant

import "time"

// HandleMessageInput carries one inbound message plus its reference
// instant, the "now" every relative time expression resolves against.
type HandleMessageInput struct {
	Text string
	Now  time.Time
}
