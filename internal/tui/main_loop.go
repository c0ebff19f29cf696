package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-patient-registry/internal/adapter"
	"github.com/MKhiriev/go-patient-registry/internal/logger"
	"github.com/MKhiriev/go-patient-registry/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
)

type mainLoopModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	screen  screen
	list    listModel
	detail  detailModel
	form    formPatientModel
	confirm *confirmModel
	overlay *errorOverlayModel

	filtering   bool
	filterInput textinput.Model

	showInfo      bool
	clientInfo    models.AppBuildInfo
	serverInfo    models.AppBuildInfo
	serverInfoErr string

	status string

	copyToClipboard func(string) error
}

func newMainLoopModel(ctx context.Context, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) mainLoopModel {
	filter := textinput.New()
	filter.Placeholder = "nombre o cédula"
	filter.Width = 30

	return mainLoopModel{
		ctx:             ctx,
		adapter:         serverAdapter,
		logger:          logger,
		list:            newListModel(),
		filterInput:     filter,
		clientInfo:      buildInfo,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadPatients())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd

	case patientsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "mainLoopModel.Update").Msg("error listing patients")
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.list.setPatients(msg.patients)
		return m, nil

	case patientSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "mainLoopModel.Update").Msg("error saving patient")
			m.form.err = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.list.loading = true
		if msg.created {
			return m.withStatus("Paciente creado", m.cmdLoadPatients())
		}
		return m.withStatus("Paciente actualizado", m.cmdLoadPatients())

	case patientToggledMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.list.replace(msg.patient)
		if m.screen == screenDetail && m.detail.patient.ID == msg.patient.ID {
			m.detail.patient = msg.patient
		}
		return m.withStatus("Estado cambiado a "+activeLabel(msg.patient.Active), nil)

	case patientDeletedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.list.remove(msg.id)
		m.screen = screenList
		return m.withStatus("Paciente eliminado", nil)

	case serverInfoMsg:
		m.serverInfoErr = ""
		if msg.err != nil {
			m.serverInfoErr = humanizeError(msg.err)
			return m, nil
		}
		m.serverInfo = msg.info
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "mainLoopModel.Update").Msg("clipboard write failed")
			return m.withStatus("No se pudo copiar al portapapeles", nil)
		}
		return m.withStatus("Cédula copiada", nil)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenForm {
			var cmd tea.Cmd
			m.form, cmd = m.form.updateInput(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.overlay != nil:
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	case m.confirm != nil:
		return m.updateConfirm(keyMsg)
	case m.showInfo:
		if key.Matches(keyMsg, keys.esc, keys.info) {
			m.showInfo = false
		}
		return m, nil
	case m.filtering:
		return m.updateFilter(keyMsg)
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list.move(1)
	case key.Matches(msg, keys.enter):
		if p, ok := m.list.current(); ok {
			m.detail = detailModel{patient: p}
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.newItem):
		m.form = newFormPatientModel(nil)
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		if p, ok := m.list.current(); ok {
			m.form = newFormPatientModel(&p)
			m.screen = screenForm
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.reload):
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadPatients())
	case key.Matches(msg, keys.filter):
		m.filtering = true
		m.filterInput.SetValue(m.list.query)
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.toggle):
		if p, ok := m.list.current(); ok {
			m.confirm = &confirmModel{action: confirmToggle, id: p.ID, name: p.Name, active: p.Active}
		}
	case key.Matches(msg, keys.delete):
		if p, ok := m.list.current(); ok {
			m.confirm = &confirmModel{action: confirmDelete, id: p.ID, name: p.Name}
		}
	case key.Matches(msg, keys.copy):
		if p, ok := m.list.current(); ok {
			return m, m.cmdCopy(p.Cedula)
		}
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, m.cmdServerInfo()
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.detail.patient

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.screen = screenList
	case key.Matches(msg, keys.edit):
		m.form = newFormPatientModel(&p)
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(msg, keys.toggle):
		m.confirm = &confirmModel{action: confirmToggle, id: p.ID, name: p.Name, active: p.Active}
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{action: confirmDelete, id: p.ID, name: p.Name}
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(p.Cedula)
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenList
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case tea.KeyEnter:
		if msgText := m.form.check(m.ctx); msgText != "" {
			m.form.err = msgText
			return m, nil
		}
		m.form.err = ""
		m.form.submitting = true
		return m, m.cmdSave(m.form)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateInput(msg)
	m.form.err = ""
	return m, cmd
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := *m.confirm

	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = nil
		if c.action == confirmDelete {
			return m, m.cmdDelete(c.id)
		}
		return m, m.cmdToggle(c.id)
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}

	return m, nil
}

func (m mainLoopModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		m.list.query = m.filterInput.Value()
		m.list.idx = 0
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadPatients())
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) withStatus(status string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.status = status
	clearCmd := tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	if cmd == nil {
		return m, clearCmd
	}
	return m, tea.Batch(cmd, clearCmd)
}

func (m mainLoopModel) cmdLoadPatients() tea.Cmd {
	ctx, serverAdapter, query := m.ctx, m.adapter, m.list.query
	return func() tea.Msg {
		patients, err := serverAdapter.ListPatients(ctx, models.PatientFilter{Query: query})
		return patientsLoadedMsg{patients: patients, err: err}
	}
}

func (m mainLoopModel) cmdSave(form formPatientModel) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	candidate := form.candidate()
	return func() tea.Msg {
		if form.editing {
			updated, err := serverAdapter.UpdatePatient(ctx, form.id, candidate)
			return patientSavedMsg{patient: updated, err: err}
		}
		created, err := serverAdapter.CreatePatient(ctx, candidate)
		return patientSavedMsg{patient: created, created: true, err: err}
	}
}

func (m mainLoopModel) cmdToggle(id int64) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		toggled, err := serverAdapter.TogglePatientActive(ctx, id)
		return patientToggledMsg{patient: toggled, err: err}
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		return patientDeletedMsg{id: id, err: serverAdapter.DeletePatient(ctx, id)}
	}
}

func (m mainLoopModel) cmdServerInfo() tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		info, err := serverAdapter.GetServerBuildInfo(ctx)
		return serverInfoMsg{info: info, err: err}
	}
}

func (m mainLoopModel) cmdCopy(value string) tea.Cmd {
	write := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{err: write(value)}
	}
}

func (m mainLoopModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.clientInfo, m.serverInfo, m.serverInfoErr))
	}

	var page string
	switch m.screen {
	case screenForm:
		page = renderPage(m.form.title(), m.form.View(),
			"tab/↓ siguiente  shift+tab/↑ anterior  enter guardar  esc cancelar")
	case screenDetail:
		page = renderPage(fmt.Sprintf("PACIENTE #%d", m.detail.patient.ID), m.detail.View(),
			"e editar  a activar/desactivar  d eliminar  c copiar cédula  esc volver")
	default:
		data := m.list.View()
		if m.filtering {
			data = "Buscar: " + m.filterInput.View() + "\n\n" + data
		}
		page = renderPage("REGISTRO DE PACIENTES", data,
			"enter ver  n nuevo  e editar  a activar/desactivar  d eliminar  c copiar  f buscar  r recargar  v acerca de  q salir")
	}

	if m.status != "" {
		page += "\n\n  " + okStyle.Render(m.status)
	}
	if m.confirm != nil {
		page += "\n\n" + m.confirm.View()
	}
	if m.overlay != nil {
		page += "\n\n" + m.overlay.View()
	}

	return appStyle.Render(page)
}
