package validation

// bankNames maps the gateway's bank codes to display names. The gateway
// rejects submissions carrying a code outside this table, so membership is
// checked locally before any request is built.
var bankNames = map[string]string{
	"002": "산업은행",
	"003": "기업은행",
	"004": "국민은행",
	"007": "수협은행",
	"011": "농협은행",
	"012": "지역농축협",
	"020": "우리은행",
	"023": "SC제일은행",
	"027": "한국씨티은행",
	"031": "대구은행",
	"032": "부산은행",
	"034": "광주은행",
	"035": "제주은행",
	"037": "전북은행",
	"039": "경남은행",
	"045": "새마을금고",
	"048": "신협",
	"050": "저축은행",
	"064": "산림조합",
	"071": "우체국",
	"081": "하나은행",
	"088": "신한은행",
	"089": "케이뱅크",
	"090": "카카오뱅크",
	"092": "토스뱅크",
}

// BankName resolves a bank code to its display name. The second return value
// reports whether the code is known.
func BankName(code string) (string, bool) {
	name, ok := bankNames[code]
	return name, ok
}
