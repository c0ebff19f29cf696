package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-patient-registry/internal/cedula"
	"github.com/MKhiriev/go-patient-registry/internal/validators"
	"github.com/MKhiriev/go-patient-registry/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldCedula
	fieldEmail
	fieldAge
	fieldAddress
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:    "Nombre:    ",
	fieldCedula:  "Cédula:    ",
	fieldEmail:   "Correo:    ",
	fieldAge:     "Edad:      ",
	fieldAddress: "Dirección: ",
}

// localValidator runs every rule except the uniqueness probe, which only the
// server can answer.
var localValidator = validators.NewPatientValidator(nil)

type formPatientModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	id         int64
	submitting bool
	err        string
}

func newFormPatientModel(p *models.Patient) formPatientModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Prompt = ""
	}
	inputs[fieldCedula].CharLimit = 16
	inputs[fieldAge].CharLimit = 3
	inputs[fieldName].Focus()

	m := formPatientModel{inputs: inputs}
	if p == nil {
		return m
	}

	m.editing = true
	m.id = p.ID
	m.inputs[fieldName].SetValue(p.Name)
	m.inputs[fieldCedula].SetValue(p.Cedula)
	m.inputs[fieldEmail].SetValue(p.Email)
	m.inputs[fieldAge].SetValue(strconv.Itoa(p.Age))
	m.inputs[fieldAddress].SetValue(p.Address)
	return m
}

// candidate reads the inputs. A non-numeric age becomes 0 and is then
// rejected by the age rule.
func (m formPatientModel) candidate() models.PatientCandidate {
	age, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldAge].Value()))
	if err != nil {
		age = 0
	}

	return models.PatientCandidate{
		Name:    m.inputs[fieldName].Value(),
		Cedula:  m.inputs[fieldCedula].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Age:     age,
		Address: m.inputs[fieldAddress].Value(),
	}
}

// check returns the first local validation message, or "" when the form
// can be sent.
func (m formPatientModel) check(ctx context.Context) string {
	err := localValidator.ValidateCandidate(ctx, m.candidate(), validators.ModeUpdate)
	if err == nil {
		return ""
	}
	if msg, ok := validators.Message(err); ok {
		return msg
	}
	return err.Error()
}

// cedulaHint is the live diagnostic shown under the cédula input.
func (m formPatientModel) cedulaHint() string {
	value := m.inputs[fieldCedula].Value()
	if value == "" {
		return ""
	}

	if reason := cedula.Explain(value); reason != nil {
		hint := reason.Message()
		if reason.Code == cedula.CodeChecksumMismatch {
			if want, err := cedula.CheckDigit(value[:len(value)-1]); err == nil {
				hint += " (se esperaba " + strconv.Itoa(want) + ")"
			}
		}
		return errorStyle.Render(hint)
	}
	return okStyle.Render("✓ " + provinceLabel(value))
}

func (m *formPatientModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
}

func (m formPatientModel) updateInput(msg tea.Msg) (formPatientModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formPatientModel) title() string {
	if m.editing {
		return "EDITAR PACIENTE #" + strconv.FormatInt(m.id, 10)
	}
	return "NUEVO PACIENTE"
}

func (m formPatientModel) View() string {
	var b strings.Builder

	for i := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor + fieldLabels[i] + "[" + m.inputs[i].View() + "]\n")
		if i == fieldCedula {
			if hint := m.cedulaHint(); hint != "" {
				b.WriteString("             " + hint + "\n")
			}
		}
	}

	if m.submitting {
		b.WriteString("\nGuardando...")
	} else if m.err != "" {
		b.WriteString("\n" + errorStyle.Render(m.err))
	}

	return b.String()
}
