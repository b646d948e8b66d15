package handler

import (
	"net/http"

	"github.com/johndosdos/micropost/internal/service"
)

// Register handles POST /accounts.
func Register(accounts *service.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := decodeJSON(r, &payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		acct, err := accounts.Register(r.Context(), payload.Username, payload.Password)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, acct)
	}
}

// Login handles POST /login. A body missing either credential is a
// malformed request (400), distinct from a wrong credential (401).
func Login(accounts *service.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Username *string `json:"username"`
			Password *string `json:"password"`
		}
		if err := decodeJSON(r, &payload); err != nil || payload.Username == nil || payload.Password == nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		acct, err := accounts.Login(r.Context(), *payload.Username, *payload.Password)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, acct)
	}
}
