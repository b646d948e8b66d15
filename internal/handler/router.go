package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/johndosdos/micropost/internal"
	"github.com/johndosdos/micropost/internal/service"
)

// NewRouter wires every endpoint onto a chi router.
func NewRouter(accounts *service.AccountService, messages *service.MessageService) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(internal.RequestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Post("/accounts", Register(accounts))
	r.Post("/login", Login(accounts))

	r.Post("/messages", CreateMessage(messages))
	r.Get("/messages", ListMessages(messages))
	r.Get("/messages/{id}", GetMessage(messages))
	r.Delete("/messages/{id}", DeleteMessage(messages))
	r.Patch("/messages/{id}", UpdateMessage(messages))

	r.Get("/accounts/{id}/messages", ListAccountMessages(messages))

	return r
}
