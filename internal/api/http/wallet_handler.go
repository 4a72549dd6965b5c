package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/service"

	"github.com/gorilla/mux"
)

type WalletHandler struct {
	walletSvc service.WalletService
}

func NewWalletHandler(walletSvc service.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return int32(id), nil
}

func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	teamID, err := pathID(r, "teamId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	balance, err := h.walletSvc.GetBalance(r.Context(), teamID, actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"balance": balance})
}

func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	teamID, err := pathID(r, "teamId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	txs, err := h.walletSvc.ListTransactions(r.Context(), teamID, actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	if txs == nil {
		txs = []domain.TeamTransaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

type requestMoneyRequest struct {
	MemberIDs       []int32 `json:"memberIds"`
	AmountPerMember int64   `json:"amountPerMember"`
	Reason          string  `json:"reason"`
}

func (h *WalletHandler) RequestMoney(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	teamID, err := pathID(r, "teamId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	var req requestMoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON body"})
		return
	}

	requests, err := h.walletSvc.CreateRequests(r.Context(), teamID, actorID, req.MemberIDs, req.AmountPerMember, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  fmt.Sprintf("money request sent to %d members", len(requests)),
		"requests": requests,
	})
}

func (h *WalletHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	requests, err := h.walletSvc.ListPending(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.MoneyRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

type respondRequest struct {
	Action string `json:"action"`
}

func (h *WalletHandler) Respond(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	requestID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	var body respondRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON body"})
		return
	}
	action, err := domain.ParseRequestAction(body.Action)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_action", Message: err.Error()})
		return
	}

	updated, err := h.walletSvc.Respond(r.Context(), requestID, actorID, action)
	if err != nil {
		writeError(w, err)
		return
	}
	msg := "request approved"
	if action == domain.RequestActionReject {
		msg = "request rejected"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": msg,
		"request": updated,
	})
}

func (h *WalletHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	requestID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	updated, err := h.walletSvc.Cancel(r.Context(), requestID, actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "request cancelled",
		"request": updated,
	})
}

func (h *WalletHandler) ListTeamRequests(w http.ResponseWriter, r *http.Request) {
	actorID, _ := UserID(r.Context())
	teamID, err := pathID(r, "teamId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	requests, err := h.walletSvc.ListTeamRequests(r.Context(), teamID, actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.MoneyRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}
