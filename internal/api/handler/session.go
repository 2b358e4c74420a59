package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nwchen/chathub/internal/api/response"
	"github.com/nwchen/chathub/internal/service"
)

type SessionHandler struct {
	conversations *service.ConversationService
}

func NewSessionHandler(conversations *service.ConversationService) *SessionHandler {
	return &SessionHandler{conversations: conversations}
}

// List returns every session without message histories
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.conversations.ListSessions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.OK(w, sessions)
}

// ListByUser returns one user's sessions without message histories
func (h *SessionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	sessions, err := h.conversations.ListUserSessions(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	response.OK(w, sessions)
}

// Create provisions a session for the user in the path. The body is
// optional; title defaults to a creation-timestamp rendering and messages
// start empty.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req struct {
		Title    string   `json:"title"`
		Messages []string `json:"messages"`
	}
	if r.Body != nil {
		// Optional body
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	session, err := h.conversations.CreateSession(r.Context(), userID, req.Title, req.Messages)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Created(w, session)
}

// Get returns the full session including messages
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.conversations.GetSession(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	response.OK(w, session)
}

// UpdateTitle renames a session. The new title travels in the title query
// parameter.
func (h *SessionHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	title := r.URL.Query().Get("title")
	if title == "" {
		response.BadRequest(w, "title is required")
		return
	}

	session, err := h.conversations.UpdateTitle(r.Context(), sessionID, title)
	if err != nil {
		writeError(w, err)
		return
	}
	response.OK(w, session)
}

// Delete removes a session
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.conversations.DeleteSession(r.Context(), sessionID); err != nil {
		writeError(w, err)
		return
	}
	response.OK(w, map[string]string{"message": "session deleted"})
}
