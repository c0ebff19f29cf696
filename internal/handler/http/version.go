package http

import (
	"net/http"

	"github.com/MKhiriev/go-patient-registry/internal/utils"
)

// getServerVersion answers with the build info as JSON. Clients that send
// "Accept: text/plain" get the bare version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Accept") == "text/plain" {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
		return
	}

	utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}
