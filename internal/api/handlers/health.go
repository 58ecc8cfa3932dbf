package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint. It deliberately skips
// the catalog so a storage outage does not take the process out of rotation.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{"status": "ok", "service": "parking-search"}
	writeJSON(w, r, http.StatusOK, res)
}
