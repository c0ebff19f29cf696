package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	// Message is the human-readable diagnostic shown to the end user.
	// For validation failures it is the exact pipeline message.
	Message string `json:"error"`
}

// PatientListResponse is returned by the patient listing endpoint.
type PatientListResponse struct {
	Patients []Patient `json:"pacientes"`

	// Length is the number of entries in Patients.
	Length int `json:"length"`
}

// CedulaCheckResponse describes the outcome of a standalone cédula check.
type CedulaCheckResponse struct {
	Cedula string `json:"cedula"`
	Valid  bool   `json:"valid"`

	// Message is the rejection diagnostic. Empty when Valid is true.
	Message string `json:"message,omitempty"`

	// Province is the name of the region encoded in the first two digits.
	// Set only for valid numbers.
	Province string `json:"province,omitempty"`
}
