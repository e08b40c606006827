package http

import "net/http"

// notFound answers unknown paths and unsupported methods on known paths
// alike, so a caller cannot probe which routes exist.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, msgNotFound, http.StatusNotFound)
}
