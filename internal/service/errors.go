package service

import (
	"errors"

	"github.com/MKhiriev/go-patient-registry/internal/auth"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = auth.ErrTokenCreationFailed
	ErrTokenIsExpiredOrInvalid = auth.ErrTokenIsExpiredOrInvalid
	ErrAuthDisabled            = auth.ErrAuthDisabled
	ErrNoOperator              = auth.ErrNoOperator
)
