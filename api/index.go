package handler

import (
	"net/http"
	"sync"

	"luna/config"
	"luna/di"
	"luna/shared/logger"
	httpTransport "luna/transport/http"
)

var (
	server *httpTransport.HTTP
	once   sync.Once
)

// Handler serves the API from a serverless function. The container is built
// once per instance and reused across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
