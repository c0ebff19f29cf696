package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-patient-registry/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "abcdefg", fitText("abcdefg", 0))
	assert.Equal(t, "ab", fitText("abcdefg", 2))
	assert.Equal(t, "Mar...", fitText("María José", 6))
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"refused", errors.New(`Get "http://localhost:8080": dial tcp 127.0.0.1:8080: connect: connection refused`), "Sin conexión o servidor no disponible"},
		{"timeout", errors.New("context deadline exceeded"), "Sin conexión o servidor no disponible"},
		{"server message", &adapter.ServerError{Kind: adapter.ErrBadRequest, Message: "La edad debe ser mayor a 0"}, "La edad debe ser mayor a 0"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestProvinceLabel(t *testing.T) {
	assert.Equal(t, "Pichincha", provinceLabel("1710034065"))
	assert.Equal(t, "Guayas", provinceLabel("0926687856"))
	assert.Equal(t, "-", provinceLabel("1710034064"))
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash("  "))
	assert.Equal(t, "x", valueOrDash("x"))
}
