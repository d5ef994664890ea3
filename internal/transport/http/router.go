package httptransport

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"table-planner/internal/app/planner"
	"table-planner/internal/config"
)

func NewRouter(svc *planner.Service, cfg config.ServerConfig) *chi.Mux {
	tableHandlers := NewTableHandlers(svc)
	groupHandlers := NewGroupHandlers(svc)
	statusHandlers := NewStatusHandlers(svc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", statusHandlers.Health())
	r.With(APILogMiddleware()).Method(http.MethodGet, "/debug/vars", expvar.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Use(BodyCaptureMiddleware(0))

		r.Get("/tables", tableHandlers.List())
		r.Get("/tables/{table_id}", tableHandlers.Get())
		r.Get("/groups", groupHandlers.List())
		r.Get("/rooms", statusHandlers.Rooms())
		r.Get("/utilization", statusHandlers.Utilization())
		r.Get("/journal", statusHandlers.Journal())

		r.Post("/groups", groupHandlers.Add())
		r.Post("/groups/{group_id}/seat", groupHandlers.Seat())
		r.Post("/groups/{group_id}/release", groupHandlers.Release())
		r.Post("/groups/{group_id}/rename", groupHandlers.Rename())
		r.Post("/seating/optimize", groupHandlers.Optimize())

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Post("/tables", tableHandlers.Add())
			r.Delete("/tables/{table_id}", tableHandlers.Remove())
		})
	})

	return r
}
