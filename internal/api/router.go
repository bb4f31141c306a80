package api

import (
	"net/http"

	"github.com/dom/champion-stats/internal/api/handlers"
	"github.com/dom/champion-stats/internal/api/middleware"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, log logging.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(log.Component("http")))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS())

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	handlerLog := log.Component("handler")
	championHandler := handlers.NewChampionHandler(services.Champion, handlerLog)
	itemHandler := handlers.NewItemHandler(services.Item, handlerLog)
	associationHandler := handlers.NewAssociationHandler(services.Association, handlerLog)
	matchupHandler := handlers.NewMatchupHandler(services.Matchup, handlerLog)
	userProfileHandler := handlers.NewUserProfileHandler(services.UserProfile, handlerLog)
	reportHandler := handlers.NewReportHandler(services.Report, handlerLog)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/champions", func(r chi.Router) {
			r.Get("/", championHandler.List)
			r.Post("/", championHandler.Create)
			r.Get("/by-name/{name}", championHandler.GetByName)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", championHandler.Get)
				r.Put("/", championHandler.Replace)
				r.Patch("/", championHandler.Update)
				r.Delete("/", championHandler.SoftDelete)
				r.Post("/activate", championHandler.Activate)
				r.Delete("/hard", championHandler.Delete)

				// Item associations
				r.Get("/items", associationHandler.List)
				r.Put("/items/{itemId}", associationHandler.Upsert)
				r.Delete("/items/{itemId}", associationHandler.Remove)

				r.Get("/matchups", matchupHandler.ListForChampion)
				r.Get("/build", reportHandler.Build)
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.List)
			r.Post("/", itemHandler.Create)
			r.Get("/{id}", itemHandler.Get)
			r.Patch("/{id}", itemHandler.Update)
			r.Delete("/{id}", itemHandler.SoftDelete)
			r.Post("/{id}/activate", itemHandler.Activate)
		})

		r.Route("/matchups", func(r chi.Router) {
			r.Get("/", matchupHandler.List)
			r.Post("/", matchupHandler.Create)
			r.Get("/{id}", matchupHandler.Get)
			r.Patch("/{id}", matchupHandler.Update)
			r.Delete("/{id}", matchupHandler.Delete)
		})

		r.Route("/user-profiles", func(r chi.Router) {
			r.Get("/", userProfileHandler.List)
			r.Post("/", userProfileHandler.Create)
			r.Get("/{id}", userProfileHandler.Get)
			r.Patch("/{id}", userProfileHandler.Update)
			r.Put("/{id}/favorites", userProfileHandler.ReplaceFavorites)
			r.Get("/{id}/favorites", reportHandler.Favorites)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/top-champions", reportHandler.TopChampions)
			r.Get("/top-items", reportHandler.TopItems)
			r.Get("/champions-by-winrate", reportHandler.ChampionsByWinRate)
			r.Get("/champions", reportHandler.ChampionRows)
		})
	})

	return r
}
