package transport

import (
	"time"
)

// Config holds the config used to initialise the transport Client
type Config struct {
	Host             string
	ServiceAuthToken string
	Timeout          time.Duration
}
