package httputil

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Failure is the error envelope every endpoint of this service answers with.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Marshal encodes v compactly: no indentation, no trailing newline, non-ASCII kept
// as UTF-8 and HTML characters left unescaped so clients comparing bytes see
// exactly what the upstream services produced.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteJSON writes v as compact JSON with the given status code.
// Encoding failures are reported as a 500 with an empty body.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// WriteFailure writes the {"success":false,"error":...} envelope.
func WriteFailure(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Failure{Success: false, Error: message})
}
