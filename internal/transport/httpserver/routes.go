package httpserver

import (
	"net/http"

	"clubhub/internal/transport/httpserver/handler"
	"clubhub/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the API surface. Everything under /api/clubs sits behind
// bearer auth; /health stays open for probes.
func NewRouter(h *handler.Handler, auth *middleware.Auth, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORS(corsOrigins))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Route("/clubs", func(r chi.Router) {
			r.Post("/", h.CreateClub)
			r.Get("/owned", h.ListOwnedClubs)
			r.Get("/member-of", h.ListMemberClubs)
			r.Post("/join", h.JoinClub)

			r.Route("/{club_id}", func(r chi.Router) {
				r.Get("/", h.GetClubInfo)
				r.Delete("/", h.DeleteClub)
				r.Get("/admin", h.AdminClubInfo)
				r.Get("/status", h.MyStatus)
				r.Post("/leave", h.LeaveClub)
				r.Post("/members/promote", h.PromoteMember)
				r.Post("/members/remove", h.RemoveMember)
				r.Post("/transfer", h.TransferClub)
				r.Put("/join-status", h.SetJoinStatus)

				r.Post("/activities", h.AddActivity)
				r.Get("/activities", h.ListActivities)
				r.Delete("/activities/{activity_id}", h.DeleteActivity)

				r.Post("/plan", h.CreateFinalPlan)
				r.Get("/plan", h.GetFinalPlan)
				r.Patch("/plan/{plan_id}", h.EditFinalPlan)
				r.Delete("/plan/{plan_id}", h.DeleteFinalPlan)

				r.Get("/profile", h.GetProfile)
				r.Patch("/profile", h.EditProfile)
			})
		})
	})

	return r
}
