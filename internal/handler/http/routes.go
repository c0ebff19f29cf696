package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/api/version/", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metricsHandler)
	router.Get("/api/cedulas/{cedula}", h.checkCedula)

	router.Route("/api/pacientes", func(r chi.Router) {
		// routes without authorization
		r.Get("/", h.listPatients)
		r.Get("/{id}", h.getPatient)

		// mutating routes
		r.Group(func(r chi.Router) {
			r.Use(h.withWriteLimit)
			r.Use(h.auth)

			r.Post("/", h.createPatient)
			r.Put("/{id}", h.updatePatient)
			r.Put("/{id}/estado", h.togglePatient)
			r.Delete("/{id}", h.deletePatient)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
