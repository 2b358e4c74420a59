package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/nwchen/chathub/internal/api/response"
	"github.com/nwchen/chathub/internal/service"
)

var validate = validator.New()

// ChatHandler serves the message-append endpoint.
type ChatHandler struct {
	conversations *service.ConversationService
}

func NewChatHandler(conversations *service.ConversationService) *ChatHandler {
	return &ChatHandler{conversations: conversations}
}

type postMessageRequest struct {
	Content  string `json:"content" validate:"required"`
	Provider string `json:"provider"`
}

// PostMessage appends the user's message, obtains a reply for the full
// history, and returns the updated session.
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, "content is required")
		return
	}

	session, err := h.conversations.PostMessage(r.Context(), sessionID, req.Content, req.Provider)
	if err != nil {
		writeError(w, err)
		return
	}
	response.OK(w, session)
}

// Providers lists the registered completion providers.
func (h *ChatHandler) Providers(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.conversations.Providers())
}
