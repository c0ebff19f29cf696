// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// registry server handlers and middleware.
//
// All Msg* constants are human-readable Spanish message strings that are
// written into the "error" field of HTTP response bodies. Validation
// messages live with the validators; these cover transport, auth and
// storage outcomes.
package app

const (
	// MsgPatientNotFound is a format string taking the requested patient ID.
	MsgPatientNotFound = "Paciente no encontrado con ID: %d"

	// MsgDuplicateCedula is returned when the store rejects an insert on the
	// unique cédula constraint.
	MsgDuplicateCedula = "Ya existe un paciente con esa cédula"

	// MsgInvalidPatientID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidPatientID = "El ID del paciente no es válido"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "El cuerpo de la solicitud no es un JSON válido"

	// MsgInvalidFilter is returned for malformed listing query parameters.
	MsgInvalidFilter = "Los parámetros de búsqueda no son válidos"

	// MsgTooManyRequests is returned by the write-route limiter.
	MsgTooManyRequests = "Demasiadas solicitudes, intente más tarde"

	// MsgAuthorizationRequired is returned when a mutating request carries
	// no Authorization header.
	MsgAuthorizationRequired = "Se requiere autorización"

	// MsgInvalidAuthorizationHeader is returned when the header is not
	// "Bearer <token>".
	MsgInvalidAuthorizationHeader = "Encabezado Authorization inválido"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "Token inválido o expirado"

	// MsgResourceNotFound answers unknown routes.
	MsgResourceNotFound = "Recurso no encontrado"

	// MsgMethodNotAllowed answers known routes with an unsupported method.
	MsgMethodNotAllowed = "Método no permitido"
)

// Generic texts of 500 answers, one per operation. The underlying error is
// logged but never sent to the client.
const (
	MsgListPatientsFailed  = "Error al obtener pacientes"
	MsgGetPatientFailed    = "Error al obtener paciente"
	MsgCreatePatientFailed = "Error al crear paciente"
	MsgUpdatePatientFailed = "Error al actualizar paciente"
	MsgTogglePatientFailed = "Error al cambiar estado del paciente"
	MsgDeletePatientFailed = "Error al eliminar paciente"
)
