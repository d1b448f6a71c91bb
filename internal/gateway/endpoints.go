// Package gateway implements the client for the legacy payment-gateway HTTP
// API: envelope decoding, the login handshake, and the response-code-driven
// retry and recovery policy.
package gateway

// One fixed gateway path per logical operation. The gateway is a legacy CGI
// surface: every operation is a GET with query-string parameters.
const (
	PathLogin             = "/login.php"
	PathBalance           = "/get_balance.php"
	PathWithdrawalLimits  = "/get_limit.php"
	PathDepositApplyList  = "/deposit_apply_list.php"
	PathWithdrawalNotify  = "/with_alim_list.php"
	PathDepositNotify     = "/deposit_alim_list.php"
	PathSubmitWithdrawal  = "/with_submit.php"
	PathWithdrawalList    = "/with_list.php"
	PathSearchWithdrawal  = "/with_search.php"
	PathApproveWithdrawal = "/with_approval.php"
	PathCancelWithdrawal  = "/with_cancel.php"
)

// Response codes with protocol-level meaning. Anything else is a
// domain-specific error resolved through the per-endpoint message tables.
const (
	CodeSuccess      = "1"
	CodeSuccessEmpty = "3"
	CodeThrottled    = "401"
	CodeSessionDrop  = "402"
)
