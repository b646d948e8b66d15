package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/johndosdos/micropost/internal/service"
)

// CreateMessage handles POST /messages.
func CreateMessage(messages *service.MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			PostedBy        int    `json:"posted_by"`
			MessageText     string `json:"message_text"`
			TimePostedEpoch int64  `json:"time_posted_epoch"`
		}
		if err := decodeJSON(r, &payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		msg, err := messages.Create(r.Context(), payload.PostedBy, payload.MessageText, payload.TimePostedEpoch)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, msg)
	}
}

// ListMessages handles GET /messages.
func ListMessages(messages *service.MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := messages.GetAll(r.Context())
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, all)
	}
}

// GetMessage handles GET /messages/{id}. An unknown id is a 200 with an
// empty body.
func GetMessage(messages *service.MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		msg, err := messages.GetByID(r.Context(), id)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, msg)
	}
}

// DeleteMessage handles DELETE /messages/{id}. Deleting an unknown id is
// still a 200, with an empty body, so repeated deletes look the same.
func DeleteMessage(messages *service.MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		msg, err := messages.DeleteByID(r.Context(), id)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, msg)
	}
}

// UpdateMessage handles PATCH /messages/{id}.
func UpdateMessage(messages *service.MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var payload struct {
			MessageText string `json:"message_text"`
		}
		if err := decodeJSON(r, &payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		msg, err := messages.UpdateText(r.Context(), id, payload.MessageText)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, msg)
	}
}

// ListAccountMessages handles GET /accounts/{id}/messages. An unknown
// account yields an empty array.
func ListAccountMessages(messages *service.MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		byAccount, err := messages.GetAllByAccount(r.Context(), id)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, byAccount)
	}
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
