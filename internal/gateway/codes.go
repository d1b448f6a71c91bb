package gateway

// Domain error codes resolve to operator-facing messages through per-endpoint
// tables, with shared fallbacks for codes the whole gateway emits. The tables
// mirror the legacy gateway's own wording; unknown codes fall back to the
// envelope message and finally to a generic line.

var commonMessages = map[string]string{
	CodeThrottled:   "요청이 많아 잠시 후 다시 시도해주세요",
	CodeSessionDrop: "세션이 만료되었습니다. 다시 로그인해주세요",
	"500":           "게이트웨이 내부 오류가 발생했습니다",
}

var endpointMessages = map[string]map[string]string{
	PathLogin: {
		"201": "아이디 또는 비밀번호가 올바르지 않습니다",
		"202": "사용이 정지된 계정입니다",
		"203": "접속이 허용되지 않은 IP입니다",
	},
	PathSubmitWithdrawal: {
		"501": "출금 한도를 초과했습니다",
		"502": "잔액이 부족합니다",
		"503": "등록되지 않은 계좌입니다",
		"510": "이미 접수된 출금 요청입니다",
	},
	PathApproveWithdrawal: {
		"511": "이미 처리된 출금 건입니다",
		"512": "취소된 출금 건은 승인할 수 없습니다",
		"513": "존재하지 않는 출금 건입니다",
	},
	PathCancelWithdrawal: {
		"511": "이미 처리된 출금 건입니다",
		"513": "존재하지 않는 출금 건입니다",
	},
	PathSearchWithdrawal: {
		"520": "조회 기간은 최대 31일까지 가능합니다",
	},
	PathWithdrawalList: {
		"520": "조회 기간은 최대 31일까지 가능합니다",
	},
}

const genericErrorMessage = "요청을 처리하지 못했습니다"

// ResolveMessage maps a gateway response code for a given path to its
// operator-facing message. The envelope's own message is used when the code
// is not in any table, so new gateway codes still surface something useful.
func ResolveMessage(path, code, envelopeMessage string) string {
	if table, ok := endpointMessages[path]; ok {
		if msg, ok := table[code]; ok {
			return msg
		}
	}
	if msg, ok := commonMessages[code]; ok {
		return msg
	}
	if envelopeMessage != "" {
		return envelopeMessage
	}
	return genericErrorMessage
}
