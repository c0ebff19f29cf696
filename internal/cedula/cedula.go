// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cedula validates Ecuadorian national identity numbers ("cédula").
//
// A cédula is a string of exactly 10 ASCII digits with positional structure:
//
//	RR T PPPPPP C
//	│  │ │      └─ check digit (mod-10, coefficients 2,1,2,1,2,1,2,1,2)
//	│  │ └──────── sequence
//	│  └────────── third digit, must be < 6
//	└───────────── region (province) code, 01-24 or 30
//
// [Explain] evaluates the checks in a fixed order and reports the first one
// that fails as a [*Reason]. [IsValid] is defined on top of Explain so the two
// can never disagree. Both functions are pure and safe for concurrent use.
package cedula

import (
	"strings"
	"unicode/utf8"
)

// Length is the exact number of digits in a cédula.
const Length = 10

// payloadLength is the number of leading digits covered by the check digit.
const payloadLength = Length - 1

// maxThirdDigit is the exclusive upper bound of the third digit.
const maxThirdDigit = 6

// coefficients are applied positionally to the payload digits.
var coefficients = [payloadLength]int{2, 1, 2, 1, 2, 1, 2, 1, 2}

// IsValid reports whether candidate is a structurally valid cédula with a
// matching check digit.
func IsValid(candidate string) bool {
	return Explain(candidate) == nil
}

// Explain returns nil when candidate is valid. Otherwise it returns the
// first failing check, evaluated in this order:
//
//  1. presence (blank after trimming)    → [CodeRequired]
//  2. length (not 10 characters)         → [CodeWrongLength]
//  3. charset (not only ASCII digits)    → [CodeNonNumeric]
//  4. region code (not 01-24 or 30)      → [CodeInvalidRegion]
//  5. third digit (6 or greater)         → [CodeInvalidThirdDigit]
//  6. check digit mismatch               → [CodeChecksumMismatch]
//
// Later checks are not evaluated once one fails. Any input is accepted,
// including empty, very long and non-UTF-8 strings.
func Explain(candidate string) *Reason {
	if strings.TrimSpace(candidate) == "" {
		return &Reason{Code: CodeRequired}
	}

	if utf8.RuneCountInString(candidate) != Length {
		return &Reason{Code: CodeWrongLength}
	}

	if !onlyDigits(candidate) {
		return &Reason{Code: CodeNonNumeric}
	}

	// from here on candidate is exactly 10 ASCII bytes
	region := digit(candidate[0])*10 + digit(candidate[1])
	if !validRegion(region) {
		return &Reason{Code: CodeInvalidRegion, Region: region}
	}

	third := digit(candidate[2])
	if third >= maxThirdDigit {
		return &Reason{Code: CodeInvalidThirdDigit, ThirdDigit: third}
	}

	if checkDigit(candidate[:payloadLength]) != digit(candidate[payloadLength]) {
		return &Reason{Code: CodeChecksumMismatch}
	}

	return nil
}

// CheckDigit computes the expected check digit for a 9-digit payload.
// It returns [ErrInvalidPayload] when payload is not exactly 9 ASCII digits.
func CheckDigit(payload string) (int, error) {
	if len(payload) != payloadLength || !onlyDigits(payload) {
		return 0, ErrInvalidPayload
	}

	return checkDigit(payload), nil
}

// checkDigit expects exactly payloadLength ASCII digits.
func checkDigit(payload string) int {
	sum := 0
	for i := 0; i < payloadLength; i++ {
		product := digit(payload[i]) * coefficients[i]
		if product >= 10 {
			product -= 9
		}
		sum += product
	}

	if m := sum % 10; m != 0 {
		return 10 - m
	}

	return 0
}

func validRegion(code int) bool {
	return (code >= minRegion && code <= maxRegion) || code == abroadRegion
}

// onlyDigits ranges over bytes, so multi-byte runes and invalid UTF-8 fail.
func onlyDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func digit(b byte) int {
	return int(b - '0')
}
