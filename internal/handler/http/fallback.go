package http

import (
	"net/http"

	"github.com/MKhiriev/go-patient-registry/internal/app"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
)

// notFound replaces chi's plain-text 404 with the JSON error body.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgResourceNotFound, http.StatusNotFound)
}

// methodNotAllowed replaces chi's plain-text 405.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
