package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Attach mounts the dialog REST surface on the router.
func Attach(router chi.Router, handler *Handler) {
	router.Route("/api/dialogs", func(r chi.Router) {
		r.Post("/", handler.CreateDialog)
		r.Get("/", handler.GetDialogs)

		r.Route("/{conversation_id}", func(r chi.Router) {
			r.Get("/messages", func(w http.ResponseWriter, req *http.Request) {
				handler.GetDialogMessages(w, req, chi.URLParam(req, "conversation_id"))
			})
			r.Post("/messages", func(w http.ResponseWriter, req *http.Request) {
				handler.SendMessage(w, req, chi.URLParam(req, "conversation_id"))
			})
			r.Get("/token/subscribe", func(w http.ResponseWriter, req *http.Request) {
				handler.GetDialogSubscribeToken(w, req, chi.URLParam(req, "conversation_id"))
			})
		})
	})

	router.Get("/api/centrifugo/token/connect", handler.GetConnectAccessToken)
}
