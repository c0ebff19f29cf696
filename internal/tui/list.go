package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-patient-registry/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	patients []models.Patient
	idx      int
	loading  bool
	spinner  spinner.Model
	query    string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Patient, bool) {
	if len(m.patients) == 0 || m.idx < 0 || m.idx >= len(m.patients) {
		return models.Patient{}, false
	}
	return m.patients[m.idx], true
}

// setPatients replaces the rows and keeps the cursor in range.
func (m *listModel) setPatients(patients []models.Patient) {
	m.patients = patients
	if m.idx >= len(m.patients) {
		m.idx = len(m.patients) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// replace swaps the row with p.ID for p.
func (m *listModel) replace(p models.Patient) {
	for i := range m.patients {
		if m.patients[i].ID == p.ID {
			m.patients[i] = p
			return
		}
	}
}

func (m *listModel) remove(id int64) {
	for i := range m.patients {
		if m.patients[i].ID == id {
			m.patients = append(m.patients[:i], m.patients[i+1:]...)
			break
		}
	}
	m.setPatients(m.patients)
}

func (m *listModel) move(delta int) {
	if len(m.patients) == 0 {
		return
	}
	m.idx = (m.idx + delta + len(m.patients)) % len(m.patients)
}

func activeLabel(active bool) string {
	if active {
		return "activo"
	}
	return "inactivo"
}

func (m listModel) View() string {
	var b strings.Builder

	if m.query != "" {
		b.WriteString(fmt.Sprintf("Filtro: %q\n\n", m.query))
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Cargando...\n")
	case len(m.patients) == 0:
		b.WriteString("No hay pacientes\n")
	default:
		b.WriteString(fmt.Sprintf("   %-5s %-28s %-11s %s\n", "ID", "Nombre", "Cédula", "Estado"))
		for i, p := range m.patients {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			row := fmt.Sprintf("%s %-5d %-28s %-11s %s", cursor, p.ID, fitText(p.Name, 28), p.Cedula, activeLabel(p.Active))
			if !p.Active {
				row = inactiveStyle.Render(row)
			}
			b.WriteString(row + "\n")
		}
	}

	return b.String()
}
