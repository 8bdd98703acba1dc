package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Server exposes the bot core over HTTP so chat frontends and operators
// can drive it without a direct library dependency.
type Server struct {
	router *chi.Mux
}

type Options func(*Server)

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/exam", func(r chi.Router) {
			r.Post("/", examSetHandler(uc))
			r.Get("/{userID}/countdown", examCountdownHandler(uc))
			r.Delete("/{userID}", examResetHandler(uc))
		})

		r.Route("/charts", func(r chi.Router) {
			r.Get("/campus/{campus}", campusChartHandler(uc))
			r.Get("/branch/{campus}/{branch}", branchChartHandler(uc))
		})

		r.Get("/cutoffs/{year}", cutoffTableHandler(uc))
		r.Get("/predictions/{scenario}", predictionTableHandler(uc))

		r.Post("/reminders/dispatch", remindDispatchHandler(uc))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
