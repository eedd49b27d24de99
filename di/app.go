package di

import (
	"stayhub/internal/events"
	"stayhub/internal/scheduler"
	"stayhub/transport/http"
)

// App bundles the HTTP server with the background workers that run alongside it.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
	Consumer  *events.Consumer
}
