package service

// PatientServiceWrapper defines middleware composition for PatientService.
// Implementations wrap an existing PatientService to add behavior such as
// logging or validating.
//
// It lives apart from interfaces.go so the generated mocks do not import
// this package.
type PatientServiceWrapper interface {
	Wrap(PatientService) PatientService // returns a decorated PatientService applying additional behavior
}
