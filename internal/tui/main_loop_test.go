package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-patient-registry/internal/adapter"
	"github.com/MKhiriev/go-patient-registry/internal/cedula"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/internal/mock"
	"github.com/MKhiriev/go-patient-registry/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	adapter *mock.MockServerAdapter
	copied  []string
}

func newTestModel(t *testing.T) (mainLoopModel, *fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{adapter: mock.NewMockServerAdapter(ctrl)}

	m := newMainLoopModel(context.Background(), f.adapter, models.NewAppBuildInfo("0.9.0", "", ""), logger.Nop())
	m.copyToClipboard = func(s string) error {
		f.copied = append(f.copied, s)
		return nil
	}
	return m, f
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(mainLoopModel)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func samplePatients() []models.Patient {
	return []models.Patient{
		{ID: 1, Name: "María Pérez", Cedula: "1710034065", Email: "maria@example.ec", Age: 34, Address: "Quito", Active: true},
		{ID: 2, Name: "Luis Andrade", Cedula: "0926687856", Email: "luis@example.ec", Age: 51, Address: "Guayaquil", Active: true},
	}
}

// loaded returns a model whose list already holds samplePatients.
func loaded(t *testing.T) (mainLoopModel, *fixture) {
	t.Helper()
	m, f := newTestModel(t)
	m, _ = update(t, m, patientsLoadedMsg{patients: samplePatients()})
	return m, f
}

func fillForm(t *testing.T, m mainLoopModel, values ...string) mainLoopModel {
	t.Helper()
	for i, v := range values {
		m, _ = update(t, m, runes(v))
		if i < len(values)-1 {
			m, _ = update(t, m, keyOf(tea.KeyTab))
		}
	}
	return m
}

func TestMainLoop_LoadPatients(t *testing.T) {
	m, f := newTestModel(t)
	f.adapter.EXPECT().ListPatients(gomock.Any(), models.PatientFilter{}).Return(samplePatients(), nil)

	msg := m.cmdLoadPatients()()
	m, _ = update(t, m, msg)

	assert.False(t, m.list.loading)
	assert.Len(t, m.list.patients, 2)
	assert.Contains(t, m.View(), "Luis Andrade")
}

func TestMainLoop_LoadError_ShowsOverlay(t *testing.T) {
	m, _ := newTestModel(t)

	serverErr := &adapter.ServerError{Kind: adapter.ErrInternalServerError, Message: "Error al obtener pacientes"}
	m, _ = update(t, m, patientsLoadedMsg{err: serverErr})

	require.NotNil(t, m.overlay)
	assert.Equal(t, "Error al obtener pacientes", m.overlay.message)
	assert.Contains(t, m.View(), "Error al obtener pacientes")

	m, _ = update(t, m, keyOf(tea.KeyEnter))
	assert.Nil(t, m.overlay)
}

func TestMainLoop_CreatePatient(t *testing.T) {
	m, f := loaded(t)

	m, _ = update(t, m, runes("n"))
	require.Equal(t, screenForm, m.screen)
	assert.False(t, m.form.editing)

	m = fillForm(t, m, "Ana Vera", "1710034065", "ana@example.ec", "29", "Cuenca")

	want := models.PatientCandidate{Name: "Ana Vera", Cedula: "1710034065", Email: "ana@example.ec", Age: 29, Address: "Cuenca"}
	f.adapter.EXPECT().CreatePatient(gomock.Any(), want).Return(models.Patient{ID: 3, Name: "Ana Vera"}, nil)

	m, cmd := update(t, m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	m, _ = update(t, m, cmd())
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Paciente creado", m.status)
	assert.True(t, m.list.loading)
}

func TestMainLoop_FormRejectsLocally(t *testing.T) {
	m, _ := loaded(t)
	m, _ = update(t, m, runes("n"))

	// checksum off by one
	m = fillForm(t, m, "Ana Vera", "1710034064", "ana@example.ec", "29", "Cuenca")
	reason := cedula.Explain("1710034064")
	require.NotNil(t, reason)

	assert.Contains(t, m.View(), reason.Message())
	assert.Contains(t, m.View(), "(se esperaba 5)")

	m, cmd := update(t, m, keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, reason.Message(), m.form.err)
	assert.Equal(t, screenForm, m.screen)
}

func TestMainLoop_FormRejectsMissingName(t *testing.T) {
	m, _ := loaded(t)
	m, _ = update(t, m, runes("n"))

	m, cmd := update(t, m, keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, "El nombre es requerido", m.form.err)
}

func TestMainLoop_CreateDuplicate_KeepsForm(t *testing.T) {
	m, f := loaded(t)
	m, _ = update(t, m, runes("n"))
	m = fillForm(t, m, "Ana Vera", "1710034065", "ana@example.ec", "29", "Cuenca")

	f.adapter.EXPECT().CreatePatient(gomock.Any(), gomock.Any()).
		Return(models.Patient{}, &adapter.ServerError{Kind: adapter.ErrConflict, Message: "Ya existe un paciente con esa cédula"})

	m, cmd := update(t, m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenForm, m.screen)
	assert.False(t, m.form.submitting)
	assert.Equal(t, "Ya existe un paciente con esa cédula", m.form.err)
}

func TestMainLoop_EditPatient(t *testing.T) {
	m, f := loaded(t)

	m, _ = update(t, m, keyOf(tea.KeyDown))
	m, _ = update(t, m, runes("e"))
	require.Equal(t, screenForm, m.screen)
	require.True(t, m.form.editing)
	assert.Equal(t, int64(2), m.form.id)
	assert.Equal(t, "0926687856", m.form.inputs[fieldCedula].Value())

	want := samplePatients()[1].Candidate()
	f.adapter.EXPECT().UpdatePatient(gomock.Any(), int64(2), want).Return(samplePatients()[1], nil)

	m, cmd := update(t, m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Paciente actualizado", m.status)
}

func TestMainLoop_FormEscCancels(t *testing.T) {
	m, _ := loaded(t)
	m, _ = update(t, m, runes("n"))
	m, _ = update(t, m, keyOf(tea.KeyEsc))

	assert.Equal(t, screenList, m.screen)
}

func TestMainLoop_DetailShowsProvince(t *testing.T) {
	m, _ := loaded(t)

	m, _ = update(t, m, keyOf(tea.KeyEnter))
	require.Equal(t, screenDetail, m.screen)

	view := m.View()
	assert.Contains(t, view, "María Pérez")
	assert.Contains(t, view, "Pichincha")

	m, _ = update(t, m, keyOf(tea.KeyEsc))
	assert.Equal(t, screenList, m.screen)
}

func TestMainLoop_ToggleWithConfirm(t *testing.T) {
	m, f := loaded(t)

	m, _ = update(t, m, runes("a"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Desactivar")

	toggled := samplePatients()[0]
	toggled.Active = false
	f.adapter.EXPECT().TogglePatientActive(gomock.Any(), int64(1)).Return(toggled, nil)

	m, cmd := update(t, m, runes("y"))
	assert.Nil(t, m.confirm)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.False(t, m.list.patients[0].Active)
	assert.Equal(t, "Estado cambiado a inactivo", m.status)
}

func TestMainLoop_DeleteCancelled(t *testing.T) {
	m, _ := loaded(t)

	m, _ = update(t, m, runes("d"))
	require.NotNil(t, m.confirm)

	m, cmd := update(t, m, runes("n"))
	assert.Nil(t, m.confirm)
	assert.Nil(t, cmd)
	assert.Len(t, m.list.patients, 2)
}

func TestMainLoop_DeleteFromDetail(t *testing.T) {
	m, f := loaded(t)
	m, _ = update(t, m, keyOf(tea.KeyEnter))
	m, _ = update(t, m, runes("d"))
	require.NotNil(t, m.confirm)

	f.adapter.EXPECT().DeletePatient(gomock.Any(), int64(1)).Return(nil)

	m, cmd := update(t, m, runes("y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenList, m.screen)
	require.Len(t, m.list.patients, 1)
	assert.Equal(t, int64(2), m.list.patients[0].ID)
	assert.Equal(t, "Paciente eliminado", m.status)
}

func TestMainLoop_DeleteNotFound(t *testing.T) {
	m, f := loaded(t)
	m, _ = update(t, m, runes("d"))

	f.adapter.EXPECT().DeletePatient(gomock.Any(), int64(1)).
		Return(&adapter.ServerError{Kind: adapter.ErrNotFound, Message: "Paciente no encontrado con ID: 1"})

	m, cmd := update(t, m, runes("y"))
	m, _ = update(t, m, cmd())

	require.NotNil(t, m.overlay)
	assert.Equal(t, "Paciente no encontrado con ID: 1", m.overlay.message)
	assert.Len(t, m.list.patients, 2)
}

func TestMainLoop_CopyCedula(t *testing.T) {
	m, f := loaded(t)

	m, cmd := update(t, m, runes("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, []string{"1710034065"}, f.copied)
	assert.Equal(t, "Cédula copiada", m.status)
}

func TestMainLoop_CopyFailure(t *testing.T) {
	m, _ := loaded(t)
	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }

	m, cmd := update(t, m, runes("c"))
	m, _ = update(t, m, cmd())

	assert.Equal(t, "No se pudo copiar al portapapeles", m.status)
}

func TestMainLoop_Filter(t *testing.T) {
	m, f := loaded(t)

	m, _ = update(t, m, runes("f"))
	require.True(t, m.filtering)

	m, _ = update(t, m, runes("171"))
	m, cmd := update(t, m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.False(t, m.filtering)
	assert.Equal(t, "171", m.list.query)

	f.adapter.EXPECT().ListPatients(gomock.Any(), models.PatientFilter{Query: "171"}).Return(samplePatients()[:1], nil)
	m, _ = update(t, m, m.cmdLoadPatients()())

	assert.Len(t, m.list.patients, 1)
	assert.Contains(t, m.View(), `Filtro: "171"`)
}

func TestMainLoop_BuildInfo(t *testing.T) {
	m, f := loaded(t)
	f.adapter.EXPECT().GetServerBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), nil)

	m, cmd := update(t, m, runes("v"))
	require.True(t, m.showInfo)
	m, _ = update(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "0.9.0")
	assert.Contains(t, view, "1.4.0")

	m, _ = update(t, m, keyOf(tea.KeyEsc))
	assert.False(t, m.showInfo)
}

func TestMainLoop_ClearStatus(t *testing.T) {
	m, _ := loaded(t)
	m.status = "Paciente creado"

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestMainLoop_Quit(t *testing.T) {
	m, _ := loaded(t)

	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
