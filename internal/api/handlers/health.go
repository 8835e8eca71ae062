package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint. Other instances of the
// app probe it when resolving which backend host to use.
func Health(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	res := map[string]string{"status": "ok"}
	writeJSON(w, r, http.StatusOK, res)
}
