package tui

import (
	"github.com/MKhiriev/go-patient-registry/models"
)

type patientsLoadedMsg struct {
	patients []models.Patient
	err      error
}

type patientSavedMsg struct {
	patient models.Patient
	created bool
	err     error
}

type patientToggledMsg struct {
	patient models.Patient
	err     error
}

type patientDeletedMsg struct {
	id  int64
	err error
}

type serverInfoMsg struct {
	info models.AppBuildInfo
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
