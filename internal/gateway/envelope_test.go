package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	t.Run("string code", func(t *testing.T) {
		env, err := DecodeEnvelope([]byte(`{"code":"1","message":"success","_MONEY":"1000000"}`))
		require.NoError(t, err)
		assert.Equal(t, "1", env.Code)
		assert.Equal(t, "success", env.Message)
		assert.Equal(t, "1000000", env.Raw["_MONEY"])
	})

	t.Run("numeric code is normalized", func(t *testing.T) {
		env, err := DecodeEnvelope([]byte(`{"code":401,"message":"busy"}`))
		require.NoError(t, err)
		assert.Equal(t, "401", env.Code)
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte(`{"message":"?"}`))
		assert.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte(`<html>backend error</html>`))
		assert.Error(t, err)
	})
}

func TestEnvelope_IsSuccess(t *testing.T) {
	assert.True(t, CodeEnvelope("1", "").IsSuccess())
	assert.True(t, CodeEnvelope("3", "").IsSuccess())
	assert.False(t, CodeEnvelope("401", "").IsSuccess())
	assert.False(t, CodeEnvelope("510", "").IsSuccess())
}

func TestExtractPayload_FlattenedLegacyFields(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"code":"1","message":"success","_MONEY":"1000000","_APROVALUE":"12"}`))
	require.NoError(t, err)

	payload, err := ExtractPayload(PathBalance, env)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"_MONEY": "1000000", "_APROVALUE": "12"}, payload)
}

func TestExtractPayload_NestedData(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"code":"1","message":"ok","data":{"_MIN_MONEY":"10000"}}`))
	require.NoError(t, err)

	payload, err := ExtractPayload(PathWithdrawalLimits, env)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"_MIN_MONEY": "10000"}, payload)
}

func TestExtractPayload_ListEndpointFlattened(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"code":"1","message":"ok","list":[{"_IDX":"7"}],"total":"1"}`))
	require.NoError(t, err)

	payload, err := ExtractPayload(PathWithdrawalList, env)
	require.NoError(t, err)
	assert.Equal(t, "1", payload["total"])
	list, ok := payload["list"].([]any)
	require.True(t, ok)
	assert.Len(t, list, 1)
}

func TestExtractPayload_EmptySuccess(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"code":"3","message":"no rows"}`))
	require.NoError(t, err)

	payload, err := ExtractPayload(PathWithdrawalList, env)
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestValidatePayloadExprs(t *testing.T) {
	assert.NoError(t, ValidatePayloadExprs())
}

func TestResolveMessage(t *testing.T) {
	assert.Equal(t, "이미 접수된 출금 요청입니다", ResolveMessage(PathSubmitWithdrawal, "510", ""))
	assert.Equal(t, "이미 처리된 출금 건입니다", ResolveMessage(PathApproveWithdrawal, "511", ""))
	assert.Equal(t, "세션이 만료되었습니다. 다시 로그인해주세요", ResolveMessage(PathBalance, "402", ""))
	assert.Equal(t, "요청이 많아 잠시 후 다시 시도해주세요", ResolveMessage(PathBalance, "401", ""))

	// Unknown code falls back to the envelope message, then to the generic line.
	assert.Equal(t, "from gateway", ResolveMessage(PathBalance, "777", "from gateway"))
	assert.Equal(t, genericErrorMessage, ResolveMessage(PathBalance, "777", ""))
}
