// Package validation provides pure, I/O-free checks that gate every gateway
// call. A failing validator prevents the request from being attempted at all,
// so guaranteed-invalid input never consumes the gateway's own rate limits.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

// dateTimeLayout is the only timestamp format the gateway accepts.
const dateTimeLayout = "2006-01-02 15:04:05"

// Gateway-accepted bounds for a single withdrawal amount, in KRW.
const (
	minMoney = 1
	maxMoney = 1_000_000_000
)

var (
	accountNumberRe = regexp.MustCompile(`^[0-9]{6,20}$`)
	phoneDashedRe   = regexp.MustCompile(`^0[0-9]{1,2}-[0-9]{3,4}-[0-9]{4}$`)
	phonePlainRe    = regexp.MustCompile(`^0[0-9]{9,10}$`)
	opaqueIDRe      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	digitsRe        = regexp.MustCompile(`^[0-9]+$`)
)

// DateTime validates a "YYYY-MM-DD HH:mm:ss" timestamp string.
func DateTime(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "날짜를 입력해주세요"
	}
	if _, err := time.Parse(dateTimeLayout, v); err != nil {
		return "유효하지 않은 날짜 형식입니다"
	}
	return ""
}

// Money validates an amount string: digits only, positive, within the
// gateway-accepted bounds. Signs, separators and decimals are all rejected.
func Money(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || !digitsRe.MatchString(v) {
		return "유효하지 않은 금액입니다"
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < minMoney || n > maxMoney {
		return "유효하지 않은 금액입니다"
	}
	return ""
}

// PayeeName validates a person or payee name: non-empty, bounded, and free of
// control characters.
func PayeeName(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "이름을 입력해주세요"
	}
	if utf8.RuneCountInString(v) > 50 {
		return "이름은 50자를 초과할 수 없습니다"
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return "유효하지 않은 이름입니다"
		}
	}
	return ""
}

// BankCode validates that the value exists in the known bank-code table.
func BankCode(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "은행을 선택해주세요"
	}
	if _, ok := bankNames[v]; !ok {
		return "유효하지 않은 은행코드입니다"
	}
	return ""
}

// AccountNumber validates a bank account number: digits only, 6 to 20 digits.
func AccountNumber(v string) string {
	if !accountNumberRe.MatchString(strings.TrimSpace(v)) {
		return "유효하지 않은 계좌번호입니다"
	}
	return ""
}

// PhoneNumber validates a Korean phone number, dashed or digits-only.
func PhoneNumber(v string) string {
	v = strings.TrimSpace(v)
	if phoneDashedRe.MatchString(v) || phonePlainRe.MatchString(v) {
		return ""
	}
	return "유효하지 않은 전화번호입니다"
}

// OpaqueID validates an opaque gateway identifier (withdrawal id, approval id).
func OpaqueID(v string) string {
	if !opaqueIDRe.MatchString(strings.TrimSpace(v)) {
		return "유효하지 않은 번호입니다"
	}
	return ""
}

// DateRange validates a start/end timestamp pair: both well-formed and start
// not after end.
func DateRange(sdate, edate string) string {
	if msg := DateTime(sdate); msg != "" {
		return msg
	}
	if msg := DateTime(edate); msg != "" {
		return msg
	}
	s, _ := time.Parse(dateTimeLayout, strings.TrimSpace(sdate))
	e, _ := time.Parse(dateTimeLayout, strings.TrimSpace(edate))
	if s.After(e) {
		return "시작일이 종료일보다 늦을 수 없습니다"
	}
	return ""
}

// FieldValidator provides a fluent API for validating multiple fields.
type FieldValidator struct {
	errors map[string]string
	order  []string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate validates a field with one or more validators.
// It stops at the first error for each field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	for _, v := range validators {
		if msg := v(value); msg != "" {
			if _, dup := fv.errors[field]; !dup {
				fv.order = append(fv.order, field)
			}
			fv.errors[field] = msg
			break // Stop at first error per field
		}
	}
	return fv
}

// Errors returns the accumulated validation errors.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}

// First returns the field and message of the first recorded error, or empty
// strings when everything validated.
func (fv *FieldValidator) First() (field, message string) {
	if len(fv.order) == 0 {
		return "", ""
	}
	field = fv.order[0]
	return field, fv.errors[field]
}

// Valid reports whether no validator recorded an error.
func (fv *FieldValidator) Valid() bool {
	return len(fv.errors) == 0
}
