package httpapi

import (
	"net/http"

	"github.com/x-ordo/WPaymentManager-sub006/internal/domain/model"
)

// ActionHandlers provides HTTP handlers for the dashboard actions.
type ActionHandlers struct {
	Svc Actions
}

// Balance handles HTTP requests for the current account balance.
func (h *ActionHandlers) Balance(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, h.Svc.Balance(r.Context()))
}

// WithdrawalLimits handles HTTP requests for the configured withdrawal limits.
func (h *ActionHandlers) WithdrawalLimits(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, h.Svc.WithdrawalLimits(r.Context()))
}

// DepositApplications lists deposit applications within a date range.
func (h *ActionHandlers) DepositApplications(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, h.Svc.DepositApplications(r.Context(), rangeFromQuery(r)))
}

// WithdrawalNotifications lists withdrawal notifications within a date range.
func (h *ActionHandlers) WithdrawalNotifications(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, h.Svc.WithdrawalNotifications(r.Context(), rangeFromQuery(r)))
}

// DepositNotifications lists deposit notifications within a date range.
func (h *ActionHandlers) DepositNotifications(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, h.Svc.DepositNotifications(r.Context(), rangeFromQuery(r)))
}

// WithdrawalList lists withdrawals within a date range.
func (h *ActionHandlers) WithdrawalList(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, h.Svc.WithdrawalList(r.Context(), rangeFromQuery(r)))
}

// SearchWithdrawals searches withdrawals, optionally narrowed by payee name.
func (h *ActionHandlers) SearchWithdrawals(w http.ResponseWriter, r *http.Request) {
	req := model.SearchWithdrawalsRequest{
		SDate:     r.URL.Query().Get("sdate"),
		EDate:     r.URL.Query().Get("edate"),
		PayeeName: r.URL.Query().Get("name"),
	}
	WriteResult(w, h.Svc.SearchWithdrawals(r.Context(), req))
}

// SubmitWithdrawal submits a new withdrawal request.
func (h *ActionHandlers) SubmitWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitWithdrawalRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	WriteResult(w, h.Svc.SubmitWithdrawal(r.Context(), req))
}

// ApproveWithdrawal approves a pending withdrawal by its id.
func (h *ActionHandlers) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req model.WithdrawalActionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	WriteResult(w, h.Svc.ApproveWithdrawal(r.Context(), req))
}

// CancelWithdrawal cancels a pending withdrawal by its id.
func (h *ActionHandlers) CancelWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req model.WithdrawalActionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	WriteResult(w, h.Svc.CancelWithdrawal(r.Context(), req))
}

func rangeFromQuery(r *http.Request) model.DateRangeQuery {
	q := r.URL.Query()
	return model.DateRangeQuery{SDate: q.Get("sdate"), EDate: q.Get("edate")}
}
