// Package httpapi exposes the dashboard actions over a small JSON API.
// Every endpoint returns a model.ActionResult verbatim so the frontend
// renders success and failure from one shape.
package httpapi

import (
	"context"

	"github.com/x-ordo/WPaymentManager-sub006/internal/domain/model"
)

// Actions is the surface the HTTP layer depends on. The concrete
// implementation lives in internal/service; tests substitute a mock.
type Actions interface {
	Balance(ctx context.Context) model.ActionResult
	WithdrawalLimits(ctx context.Context) model.ActionResult
	DepositApplications(ctx context.Context, q model.DateRangeQuery) model.ActionResult
	WithdrawalNotifications(ctx context.Context, q model.DateRangeQuery) model.ActionResult
	DepositNotifications(ctx context.Context, q model.DateRangeQuery) model.ActionResult
	WithdrawalList(ctx context.Context, q model.DateRangeQuery) model.ActionResult
	SearchWithdrawals(ctx context.Context, req model.SearchWithdrawalsRequest) model.ActionResult
	SubmitWithdrawal(ctx context.Context, req model.SubmitWithdrawalRequest) model.ActionResult
	ApproveWithdrawal(ctx context.Context, req model.WithdrawalActionRequest) model.ActionResult
	CancelWithdrawal(ctx context.Context, req model.WithdrawalActionRequest) model.ActionResult
}
