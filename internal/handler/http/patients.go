package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-patient-registry/internal/app"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
	"github.com/MKhiriev/go-patient-registry/models"
	"github.com/go-chi/chi/v5"
)

// patientRequest is the body of POST and PUT /api/pacientes. Only the
// editable fields are read; id, activo and fechaRegistro are ignored.
type patientRequest struct {
	Name    string `json:"nombre"`
	Cedula  string `json:"cedula"`
	Email   string `json:"correo"`
	Age     int    `json:"edad"`
	Address string `json:"direccion"`
}

func (p patientRequest) candidate() models.PatientCandidate {
	return models.PatientCandidate{
		Name:    p.Name,
		Cedula:  p.Cedula,
		Email:   p.Email,
		Age:     p.Age,
		Address: p.Address,
	}
}

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := filterFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPatients").Msg("bad listing filter")
		h.writeError(w, err, 0, "")
		return
	}

	patients, err := h.services.PatientService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPatients").Msg("error listing patients")
		h.writeError(w, err, 0, app.MsgListPatientsFailed)
		return
	}

	if patients == nil {
		patients = []models.Patient{}
	}

	utils.WriteJSON(w, models.PatientListResponse{Patients: patients, Length: len(patients)}, http.StatusOK)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := patientIDFromPath(r)
	if err != nil {
		h.writeError(w, err, 0, "")
		return
	}

	patient, err := h.services.PatientService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPatient").Int64("id", id).Msg("error getting patient")
		h.writeError(w, err, id, app.MsgGetPatientFailed)
		return
	}

	utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) createPatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req patientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createPatient").Msg("invalid JSON was passed")
		h.writeError(w, ErrInvalidJSON, 0, "")
		return
	}

	created, err := h.services.PatientService.Create(r.Context(), req.candidate())
	if err != nil {
		h.writeError(w, err, 0, app.MsgCreatePatientFailed)
		return
	}

	w.Header().Set("Location", "/api/pacientes/"+strconv.FormatInt(created.ID, 10))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := patientIDFromPath(r)
	if err != nil {
		h.writeError(w, err, 0, "")
		return
	}

	var req patientRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updatePatient").Msg("invalid JSON was passed")
		h.writeError(w, ErrInvalidJSON, id, "")
		return
	}

	updated, err := h.services.PatientService.Update(r.Context(), id, req.candidate())
	if err != nil {
		h.writeError(w, err, id, app.MsgUpdatePatientFailed)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) togglePatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := patientIDFromPath(r)
	if err != nil {
		h.writeError(w, err, 0, "")
		return
	}

	toggled, err := h.services.PatientService.ToggleActive(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.togglePatient").Int64("id", id).Msg("error toggling patient")
		h.writeError(w, err, id, app.MsgTogglePatientFailed)
		return
	}

	utils.WriteJSON(w, toggled, http.StatusOK)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := patientIDFromPath(r)
	if err != nil {
		h.writeError(w, err, 0, "")
		return
	}

	if err = h.services.PatientService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deletePatient").Int64("id", id).Msg("error deleting patient")
		h.writeError(w, err, id, app.MsgDeletePatientFailed)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkCedula(w http.ResponseWriter, r *http.Request) {
	result := h.services.CedulaService.Check(r.Context(), chi.URLParam(r, "cedula"))
	utils.WriteJSON(w, result, http.StatusOK)
}

// writeError answers with the status and message mapped from err.
func (h *Handler) writeError(w http.ResponseWriter, err error, id int64, failure string) {
	if failure == "" {
		failure = http.StatusText(http.StatusInternalServerError)
	}
	utils.WriteError(w, messageFromError(err, id, failure), statusFromError(err))
}

func patientIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPatientID
	}
	return id, nil
}

// filterFromQuery reads activo, q, limit and offset.
func filterFromQuery(r *http.Request) (models.PatientFilter, error) {
	query := r.URL.Query()
	filter := models.PatientFilter{Query: query.Get("q")}

	if raw := query.Get("activo"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return models.PatientFilter{}, ErrInvalidFilter
		}
		filter.Active = &active
	}

	for name, dst := range map[string]*uint64{"limit": &filter.Limit, "offset": &filter.Offset} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.PatientFilter{}, ErrInvalidFilter
		}
		*dst = n
	}

	return filter, nil
}
