package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/x-ordo/WPaymentManager-sub006/internal/domain/model"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteResult(w, model.Fail("요청 본문을 해석할 수 없습니다", "invalid_json"))
		return false
	}

	return true
}

// WriteResult writes an ActionResult as the response body. The HTTP status is
// always 200: success and failure travel inside the result, matching how the
// dashboard consumes it.
func WriteResult(w http.ResponseWriter, res model.ActionResult) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(res); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}
