package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adityaraghav/studyspace-backend/api/controllers"
	"github.com/adityaraghav/studyspace-backend/api/middleware"
	"github.com/adityaraghav/studyspace-backend/internal/media"
	"github.com/adityaraghav/studyspace-backend/internal/members"
	"github.com/adityaraghav/studyspace-backend/internal/reference"
	"github.com/adityaraghav/studyspace-backend/internal/renewals"
	"github.com/adityaraghav/studyspace-backend/internal/seating"
	"github.com/adityaraghav/studyspace-backend/pkg/config"
	"github.com/adityaraghav/studyspace-backend/pkg/enums"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
)

// Dependencies bundles everything the router wires into handlers.
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	Registry *prometheus.Registry

	// Readiness probes; nil entries are skipped.
	GatewayPinger controllers.Pinger
	RedisPinger   controllers.Pinger

	Members   members.Service
	Renewals  renewals.Service
	Reference reference.Service
	Seating   *seating.Resolver
	Media     media.Service
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"gateway": deps.GatewayPinger,
			"redis":   deps.RedisPinger,
		}))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/members", func(r chi.Router) {
			r.With(middleware.RequireAction(enums.ActionViewMembers, logg)).
				Get("/expired", controllers.ExpiredMemberships(deps.Renewals, logg))

			r.Route("/{memberID}", func(r chi.Router) {
				r.With(middleware.RequireAction(enums.ActionViewMembers, logg)).
					Get("/", controllers.MemberEditContext(deps.Members, logg))
				r.With(middleware.RequireAction(enums.ActionEditMembers, logg)).
					Put("/", controllers.MemberUpdate(deps.Members, logg))
				r.With(middleware.RequireAction(enums.ActionDeleteMembers, logg)).
					Delete("/", controllers.MemberDelete(deps.Members, logg))
				r.With(middleware.RequireAction(enums.ActionRenewMembers, logg)).
					Post("/renew", controllers.MemberRenew(deps.Renewals, logg))
				r.With(middleware.RequireAction(enums.ActionEditMembers, logg)).
					Get("/seating-options", controllers.SeatingOptions(deps.Seating, logg))
			})
		})

		r.With(middleware.RequireAction(enums.ActionViewMembers, logg)).
			Get("/branches", controllers.BranchList(deps.Reference, logg))
		r.Route("/shifts", func(r chi.Router) {
			r.With(middleware.RequireAction(enums.ActionViewMembers, logg)).
				Get("/", controllers.ShiftList(deps.Reference, logg))
			r.With(middleware.RequireAction(enums.ActionRenewMembers, logg)).
				Get("/{shiftID}/seat-candidates", controllers.SeatCandidates(deps.Seating, logg))
		})
		r.With(middleware.RequireAction(enums.ActionViewMembers, logg)).
			Get("/seats", controllers.SeatList(deps.Reference, logg))

		r.With(middleware.RequireAction(enums.ActionViewMembers, logg)).
			Post("/fees/quote", controllers.FeeQuote(logg))

		r.With(middleware.RequireAction(enums.ActionUploadMedia, logg)).
			Post("/uploads/images", controllers.ImageUpload(deps.Media, cfg.Uploads.MaxBytes, logg))
	})

	return r
}
