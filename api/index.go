package handler

import (
	"dormy/config"
	"dormy/di"
	"dormy/shared/logger"
	"net/http"
	"sync"

	transport "dormy/transport/http"
)

var (
	once   sync.Once
	server *transport.HTTP
)

// Handler is the serverless entrypoint. The dependency graph is built on the
// first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
