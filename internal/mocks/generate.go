// Package mocks provides mock implementations for testing the payment
// manager's interfaces.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks.
// The mocks are generated using go:generate directives and provide a fluent
// API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockActions := mocks.NewMockActions(ctrl)
//	mockActions.EXPECT().Balance(gomock.Any()).Return(model.OK(nil))
package mocks

// Generate mock for the Actions interface from internal/httpapi.
// This creates MockActions with methods for every dashboard action:
// Balance, WithdrawalLimits, DepositApplications, WithdrawalNotifications,
// DepositNotifications, WithdrawalList, SearchWithdrawals, SubmitWithdrawal,
// ApproveWithdrawal, CancelWithdrawal
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=actions_mock.go github.com/x-ordo/WPaymentManager-sub006/internal/httpapi Actions
