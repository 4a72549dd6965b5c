package http

import (
	"net/http"

	"arenahub-backend/internal/security"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Wallet       *WalletHandler
	Friend       *FriendHandler
	Notification *NotificationHandler
	Message      *MessageHandler
	WS           http.Handler
}

// NewRouter builds the full route table under /api/v1. Auth routes and the
// operational endpoints stay public; everything else requires a bearer token.
func NewRouter(tokens security.TokenManager, h Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(MetricsMiddleware, LoggingMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/team-wallet/{teamId}/balance", h.Wallet.GetBalance).Methods(http.MethodGet)
	authed.HandleFunc("/team-wallet/{teamId}/transactions", h.Wallet.ListTransactions).Methods(http.MethodGet)
	authed.HandleFunc("/team-wallet/{teamId}/request-money", h.Wallet.RequestMoney).Methods(http.MethodPost)
	authed.HandleFunc("/team-wallet/{teamId}/requests", h.Wallet.ListTeamRequests).Methods(http.MethodGet)
	authed.HandleFunc("/team-wallet/requests/pending", h.Wallet.ListPending).Methods(http.MethodGet)
	authed.HandleFunc("/team-wallet/requests/{id}/respond", h.Wallet.Respond).Methods(http.MethodPost)
	authed.HandleFunc("/team-wallet/requests/{id}/cancel", h.Wallet.Cancel).Methods(http.MethodPost)

	authed.HandleFunc("/friends", h.Friend.ListFriends).Methods(http.MethodGet)
	authed.HandleFunc("/friends/request", h.Friend.Request).Methods(http.MethodPost)
	authed.HandleFunc("/friends/requests", h.Friend.ListRequests).Methods(http.MethodGet)
	authed.HandleFunc("/friends/accept/{id}", h.Friend.Accept).Methods(http.MethodPost)
	authed.HandleFunc("/friends/reject/{id}", h.Friend.Reject).Methods(http.MethodPost)
	authed.HandleFunc("/friends/status/{userId}", h.Friend.Status).Methods(http.MethodGet)
	authed.HandleFunc("/friends/{userId}", h.Friend.Remove).Methods(http.MethodDelete)

	authed.HandleFunc("/notifications", h.Notification.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/read-all", h.Notification.MarkAllRead).Methods(http.MethodPost)
	authed.HandleFunc("/notifications/read", h.Notification.ClearRead).Methods(http.MethodDelete)
	authed.HandleFunc("/notifications/{id}/read", h.Notification.MarkRead).Methods(http.MethodPost)
	authed.HandleFunc("/notifications/{id}", h.Notification.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/messages", h.Message.Send).Methods(http.MethodPost)
	authed.HandleFunc("/messages/{id}/read", h.Message.MarkRead).Methods(http.MethodPost)
	authed.HandleFunc("/conversations", h.Message.ListConversations).Methods(http.MethodGet)
	authed.HandleFunc("/conversations/{peerId}/read", h.Message.MarkConversationRead).Methods(http.MethodPost)

	if h.WS != nil {
		authed.Handle("/ws", h.WS).Methods(http.MethodGet)
	}

	return r
}
