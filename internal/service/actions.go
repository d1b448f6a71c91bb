// Package service exposes the named operations the dashboard calls. Every
// action validates its input first, dispatches through the gateway client,
// and folds any failure into the ActionResult shape: errors cross this
// boundary as data, never as panics.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/x-ordo/WPaymentManager-sub006/internal/domain/model"
	apperrors "github.com/x-ordo/WPaymentManager-sub006/internal/errors"
	"github.com/x-ordo/WPaymentManager-sub006/internal/gateway"
	"github.com/x-ordo/WPaymentManager-sub006/internal/validation"
	"github.com/x-ordo/WPaymentManager-sub006/internal/viewcache"
)

// Dispatcher is the slice of the gateway client the facade needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, path string, params map[string]string) (map[string]any, error)
}

// ActionServiceOptions groups dependencies for ActionService.
type ActionServiceOptions struct {
	Dispatcher Dispatcher      // Required: gateway request dispatcher
	Views      viewcache.Store // Optional: list-view cache
	Refresh    *RefreshHub     // Optional: view refresh signals
	Logger     *slog.Logger    // Optional: structured logger
	CacheTTL   time.Duration   // TTL for cached list views; defaults to 30s
}

// ActionService is the facade between the dashboard and the gateway client.
type ActionService struct {
	dispatcher Dispatcher
	views      viewcache.Store
	refresh    *RefreshHub
	logger     *slog.Logger
	cacheTTL   time.Duration
}

// NewActionService constructs an ActionService.
func NewActionService(opts ActionServiceOptions) *ActionService {
	if opts.Dispatcher == nil {
		panic("Dispatcher is required")
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &ActionService{
		dispatcher: opts.Dispatcher,
		views:      opts.Views,
		refresh:    opts.Refresh,
		logger:     opts.Logger,
		cacheTTL:   ttl,
	}
}

// Balance fetches the account balance and fee information.
func (s *ActionService) Balance(ctx context.Context) model.ActionResult {
	return s.dispatch(ctx, gateway.PathBalance, nil)
}

// WithdrawalLimits fetches the configured withdrawal limits.
func (s *ActionService) WithdrawalLimits(ctx context.Context) model.ActionResult {
	return s.dispatch(ctx, gateway.PathWithdrawalLimits, nil)
}

// DepositApplications lists deposit applications within a date range.
func (s *ActionService) DepositApplications(ctx context.Context, q model.DateRangeQuery) model.ActionResult {
	return s.rangeQuery(ctx, gateway.PathDepositApplyList, viewcache.ViewDepositApplyList, q)
}

// WithdrawalNotifications lists withdrawal notifications within a date range.
func (s *ActionService) WithdrawalNotifications(ctx context.Context, q model.DateRangeQuery) model.ActionResult {
	return s.rangeQuery(ctx, gateway.PathWithdrawalNotify, viewcache.ViewWithdrawalNotify, q)
}

// DepositNotifications lists deposit notifications within a date range.
func (s *ActionService) DepositNotifications(ctx context.Context, q model.DateRangeQuery) model.ActionResult {
	return s.rangeQuery(ctx, gateway.PathDepositNotify, viewcache.ViewDepositNotify, q)
}

// WithdrawalList lists withdrawals within a date range.
func (s *ActionService) WithdrawalList(ctx context.Context, q model.DateRangeQuery) model.ActionResult {
	return s.rangeQuery(ctx, gateway.PathWithdrawalList, viewcache.ViewWithdrawalList, q)
}

// SearchWithdrawals searches withdrawals within a date range, optionally by
// payee name.
func (s *ActionService) SearchWithdrawals(ctx context.Context, req model.SearchWithdrawalsRequest) model.ActionResult {
	if msg := validation.DateRange(req.SDate, req.EDate); msg != "" {
		return model.Fail(msg, "")
	}
	if req.PayeeName != "" {
		if msg := validation.PayeeName(req.PayeeName); msg != "" {
			return model.Fail(msg, "")
		}
	}

	params := map[string]string{"sdate": req.SDate, "edate": req.EDate}
	if req.PayeeName != "" {
		params["name"] = req.PayeeName
	}
	return s.cachedDispatch(ctx, gateway.PathSearchWithdrawal, viewcache.ViewWithdrawalSearch, params)
}

// SubmitWithdrawal submits a new withdrawal. Resubmitting a duplicate is not
// deduplicated client-side: the gateway answers with its own domain code.
func (s *ActionService) SubmitWithdrawal(ctx context.Context, req model.SubmitWithdrawalRequest) model.ActionResult {
	fv := validation.New().
		Validate("money", req.Money, validation.Money).
		Validate("name", req.PayeeName, validation.PayeeName).
		Validate("bankcode", req.BankCode, validation.BankCode).
		Validate("account", req.AccountNumber, validation.AccountNumber).
		Validate("phone", req.PhoneNumber, validation.PhoneNumber)
	if !fv.Valid() {
		_, msg := fv.First()
		return model.Fail(msg, "")
	}

	return s.mutate(ctx, gateway.PathSubmitWithdrawal, map[string]string{
		"money":    req.Money,
		"name":     req.PayeeName,
		"bankcode": req.BankCode,
		"account":  req.AccountNumber,
		"phone":    req.PhoneNumber,
	})
}

// ApproveWithdrawal approves a submitted withdrawal by id.
func (s *ActionService) ApproveWithdrawal(ctx context.Context, req model.WithdrawalActionRequest) model.ActionResult {
	if msg := validation.OpaqueID(req.ID); msg != "" {
		return model.Fail(msg, "")
	}
	return s.mutate(ctx, gateway.PathApproveWithdrawal, map[string]string{"idx": req.ID})
}

// CancelWithdrawal cancels a submitted withdrawal by id.
func (s *ActionService) CancelWithdrawal(ctx context.Context, req model.WithdrawalActionRequest) model.ActionResult {
	if msg := validation.OpaqueID(req.ID); msg != "" {
		return model.Fail(msg, "")
	}
	return s.mutate(ctx, gateway.PathCancelWithdrawal, map[string]string{"idx": req.ID})
}

// withdrawalViews are the cached views a withdrawal mutation staleness-kills.
var withdrawalViews = []string{
	viewcache.ViewWithdrawalList,
	viewcache.ViewWithdrawalSearch,
	viewcache.ViewWithdrawalNotify,
}

func (s *ActionService) rangeQuery(ctx context.Context, path, view string, q model.DateRangeQuery) model.ActionResult {
	if msg := validation.DateRange(q.SDate, q.EDate); msg != "" {
		return model.Fail(msg, "")
	}
	return s.cachedDispatch(ctx, path, view, map[string]string{
		"sdate": q.SDate,
		"edate": q.EDate,
	})
}

func (s *ActionService) dispatch(ctx context.Context, path string, params map[string]string) model.ActionResult {
	payload, err := s.dispatcher.Dispatch(ctx, path, params)
	if err != nil {
		return failureResult(err)
	}
	return model.OK(payload)
}

func (s *ActionService) cachedDispatch(ctx context.Context, path, view string, params map[string]string) model.ActionResult {
	key := cacheKey(params)

	if s.views != nil {
		if cached, ok, err := s.views.Get(ctx, view, key); err == nil && ok {
			var data map[string]any
			if unmarshalErr := json.Unmarshal(cached, &data); unmarshalErr == nil {
				return model.OK(data)
			}
		}
	}

	result := s.dispatch(ctx, path, params)
	if result.Success && s.views != nil {
		if encoded, err := json.Marshal(result.Data); err == nil {
			// Best-effort caching; a store failure never fails the action.
			_ = s.views.Set(ctx, view, key, encoded, s.cacheTTL)
		}
	}
	return result
}

func (s *ActionService) mutate(ctx context.Context, path string, params map[string]string) model.ActionResult {
	result := s.dispatch(ctx, path, params)
	if !result.Success {
		// No optimistic update was made, so there is nothing to roll back.
		return result
	}

	for _, view := range withdrawalViews {
		if s.views != nil {
			if err := s.views.InvalidateView(ctx, view); err != nil && s.logger != nil {
				s.logger.Warn("view invalidation failed", "view", view, "error", err)
			}
		}
		if s.refresh != nil {
			s.refresh.Notify(view)
		}
	}

	if s.logger != nil {
		s.logger.Info("mutation applied", "path", path)
	}
	return result
}

// cacheKey canonicalizes query parameters into a stable key.
func cacheKey(params map[string]string) string {
	if len(params) == 0 {
		return "all"
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		return "all"
	}
	return string(encoded)
}

// failureResult folds a dispatch error into the ActionResult shape. Gateway
// originated failures keep their raw response code; local failures carry
// their taxonomy category so the dashboard can distinguish them.
func failureResult(err error) model.ActionResult {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return model.Fail("요청을 처리하지 못했습니다", string(apperrors.ErrCodeInternal))
	}

	code := appErr.GatewayCode
	if code == "" && appErr.Code != apperrors.ErrCodeValidation {
		code = string(appErr.Code)
	}
	return model.Fail(appErr.Message, code)
}
