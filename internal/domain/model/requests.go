package model

// Request types for the actions the dashboard can invoke. Field values stay
// strings end to end: the gateway speaks query-string pairs, and validation
// operates on the exact text the operator entered.

// DateRangeQuery bounds a list or search query with gateway-format
// "YYYY-MM-DD HH:mm:ss" timestamps.
type DateRangeQuery struct {
	SDate string `json:"sdate"`
	EDate string `json:"edate"`
}

// SearchWithdrawalsRequest searches withdrawals within a date range,
// optionally narrowed to a payee name.
type SearchWithdrawalsRequest struct {
	SDate     string `json:"sdate"`
	EDate     string `json:"edate"`
	PayeeName string `json:"name,omitempty"`
}

// SubmitWithdrawalRequest submits a new withdrawal to the gateway.
type SubmitWithdrawalRequest struct {
	Money         string `json:"money"`
	PayeeName     string `json:"name"`
	BankCode      string `json:"bankcode"`
	AccountNumber string `json:"account"`
	PhoneNumber   string `json:"phone"`
}

// WithdrawalActionRequest targets an existing withdrawal by its opaque id,
// used by both approve and cancel.
type WithdrawalActionRequest struct {
	ID string `json:"idx"`
}
