package errors

import (
	"encoding/json"
	"net/http"
)

// httpBody is the JSON shape written for error responses.
type httpBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// WriteHTTP renders an error as a JSON response using the code's HTTP
// status mapping. Non-Error values are reported as internal errors without
// leaking their message to the client.
func WriteHTTP(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	body := httpBody{
		Code:    string(CodeInternal),
		Message: "internal error",
	}
	status := CodeInternal.HTTPStatus()

	var customErr *Error
	if As(err, &customErr) {
		body.Code = string(customErr.Code)
		body.Message = customErr.Message
		body.Meta = customErr.Meta
		status = customErr.Code.HTTPStatus()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
