package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"github.com/arbazmubasher1/HygieneChecklist/app"
	"github.com/arbazmubasher1/HygieneChecklist/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	api.Route("/checklist", func(r chi.Router) {
		r.Use(middlewares.Inspector(app.TokenSecret))

		r.Get("/items", GetChecklistItems(app))
		r.Post("/submissions", SubmitChecklist(app))
		r.Get("/submissions/{id}", GetSubmissionById(app))
	})

	return api
}
