package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init returns the route table. Paths are relative to the API prefix the
// table is mounted under.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/v1/hello/", h.hello)
	router.Get("/v1/version/", h.getServerVersion)
	router.Get("/v1/info/", h.getAppInfo)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// Middlewares returns the chain applied to every request of the root
// router, outermost first.
func (h *Handler) Middlewares() chi.Middlewares {
	return chi.Middlewares{
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
	}
}

// NotFound writes the JSON body used for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}
