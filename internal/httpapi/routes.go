package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/x-ordo/WPaymentManager-sub006/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Actions Actions
	Refresh *service.RefreshHub
	Logger  *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	h := &ActionHandlers{Svc: services.Actions}

	mux.HandleFunc("GET /api/balance", h.Balance)
	mux.HandleFunc("GET /api/limits", h.WithdrawalLimits)
	mux.HandleFunc("GET /api/deposits/applications", h.DepositApplications)
	mux.HandleFunc("GET /api/deposits/notifications", h.DepositNotifications)
	mux.HandleFunc("GET /api/withdrawals", h.WithdrawalList)
	mux.HandleFunc("GET /api/withdrawals/notifications", h.WithdrawalNotifications)
	mux.HandleFunc("GET /api/withdrawals/search", h.SearchWithdrawals)
	mux.HandleFunc("POST /api/withdrawals", h.SubmitWithdrawal)
	mux.HandleFunc("POST /api/withdrawals/approve", h.ApproveWithdrawal)
	mux.HandleFunc("POST /api/withdrawals/cancel", h.CancelWithdrawal)

	if services.Refresh != nil {
		refresh := &RefreshHandlers{Hub: services.Refresh, Logger: services.Logger}
		mux.HandleFunc("GET /api/refresh", refresh.Stream)
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}
