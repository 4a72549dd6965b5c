package http

import (
	"encoding/json"
	"net/http"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/service"
)

type MessageHandler struct {
	messageSvc service.MessageService
}

func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

type sendMessageRequest struct {
	ReceiverID int32  `json:"receiverId"`
	Content    string `json:"content"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())

	var body sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON body"})
		return
	}

	msg, err := h.messageSvc.Send(r.Context(), actorID, body.ReceiverID, body.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	messageID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	if err := h.messageSvc.MarkRead(r.Context(), actorID, messageID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "message marked as read"})
}

func (h *MessageHandler) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	peerID, err := pathID(r, "peerId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	updated, err := h.messageSvc.MarkConversationRead(r.Context(), actorID, peerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}

func (h *MessageHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	conversations, err := h.messageSvc.ListConversations(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	if conversations == nil {
		conversations = []domain.Conversation{}
	}
	writeJSON(w, http.StatusOK, conversations)
}
