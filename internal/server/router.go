package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/review-desk/internal/server/handler"
)

// NewRouter creates the desk router. requestTimeout bounds a single request.
func NewRouter(desk *handler.DeskHandler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/", desk.Page)
	r.Post("/review", desk.Review)
	r.Get("/export", desk.Export)
	r.Post("/clear", desk.Clear)

	return r
}
