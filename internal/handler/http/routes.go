package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// no authorization on any route: login is a one-shot credential check
	router.Get("/", h.greeting)
	router.Post("/register", h.register)
	router.Post("/login", h.login)

	router.Post("/upload", h.upload)
	router.Post("/likes", h.like)
	router.Post("/dislike", h.dislike)
	router.Post("/comments", h.comment)
	router.Get("/posts", h.posts)

	return router
}
