package http

import (
	"encoding/json"
	"net/http"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/service"
)

type FriendHandler struct {
	friendSvc service.FriendService
}

func NewFriendHandler(friendSvc service.FriendService) *FriendHandler {
	return &FriendHandler{friendSvc: friendSvc}
}

type friendRequestBody struct {
	FriendID int32 `json:"friendId"`
}

func (h *FriendHandler) Request(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())

	var body friendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON body"})
		return
	}

	friendship, err := h.friendSvc.Request(r.Context(), actorID, body.FriendID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, friendship)
}

func (h *FriendHandler) Accept(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	friendshipID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	friendship, err := h.friendSvc.Accept(r.Context(), friendshipID, actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, friendship)
}

func (h *FriendHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	friendshipID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	friendship, err := h.friendSvc.Reject(r.Context(), friendshipID, actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, friendship)
}

func (h *FriendHandler) Remove(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	friendID, err := pathID(r, "userId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	if err := h.friendSvc.Remove(r.Context(), actorID, friendID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "friend removed"})
}

func (h *FriendHandler) Status(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	otherID, err := pathID(r, "userId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	status, err := h.friendSvc.Status(r.Context(), actorID, otherID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *FriendHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	friends, err := h.friendSvc.ListFriends(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	if friends == nil {
		friends = []domain.Friendship{}
	}
	writeJSON(w, http.StatusOK, friends)
}

func (h *FriendHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	requests, err := h.friendSvc.ListRequests(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.Friendship{}
	}
	writeJSON(w, http.StatusOK, requests)
}
