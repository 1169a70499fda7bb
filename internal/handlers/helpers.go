package handlers

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes bounds request bodies; cashier requests are tiny
const maxBodyBytes = 1 << 16

// decodeJSON reads a JSON request body into dst, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
