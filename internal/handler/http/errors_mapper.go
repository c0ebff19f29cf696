package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-patient-registry/internal/app"
	"github.com/MKhiriev/go-patient-registry/internal/service"
	"github.com/MKhiriev/go-patient-registry/internal/store"
	"github.com/MKhiriev/go-patient-registry/internal/utils"
	"github.com/MKhiriev/go-patient-registry/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrDuplicateCedula:       http.StatusConflict,
	validators.ErrUniquenessCheckFailed: http.StatusInternalServerError,

	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,

	ErrInvalidPatientID: http.StatusBadRequest,
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidFilter:    http.StatusBadRequest,
	ErrTooManyRequests:  http.StatusTooManyRequests,

	store.ErrCedulaAlreadyExists: http.StatusConflict,
	store.ErrPatientNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing text of transport and storage
// errors. Validation failures carry their own message.
var errorMessageMap = map[error]string{
	service.ErrTokenIsExpiredOrInvalid:  app.MsgTokenIsExpiredOrInvalid,
	utils.ErrInvalidAuthorizationHeader: app.MsgInvalidAuthorizationHeader,
	ErrEmptyAuthorizationHeader:         app.MsgAuthorizationRequired,

	ErrInvalidPatientID: app.MsgInvalidPatientID,
	ErrInvalidJSON:      app.MsgInvalidJSON,
	ErrInvalidFilter:    app.MsgInvalidFilter,
	ErrTooManyRequests:  app.MsgTooManyRequests,

	store.ErrCedulaAlreadyExists: app.MsgDuplicateCedula,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// messageFromError picks the text sent to the client. id is only used by
// the not-found message; failure is the generic text of server errors.
func messageFromError(err error, id int64, failure string) string {
	if msg, ok := validators.Message(err); ok {
		return msg
	}

	if errors.Is(err, store.ErrPatientNotFound) {
		return fmt.Sprintf(app.MsgPatientNotFound, id)
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}

	return failure
}
